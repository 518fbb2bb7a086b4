/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package source

import (
	"dirpx.dev/envx/apis"
)

// NewFuncSource adapts a plain function into an apis.Source.
// A nil fn yields a source that never resolves.
func NewFuncSource(fn func(ref string) (apis.Constructor, bool)) apis.Source {
	return funcSource{fn: fn}
}

// funcSource lets callers plug arbitrary resolution logic into a chain
// without defining a type.
type funcSource struct {
	fn func(ref string) (apis.Constructor, bool)
}

// Ensure funcSource implements apis.Source.
var _ apis.Source = funcSource{}

// TryResolve delegates to the wrapped function.
func (s funcSource) TryResolve(ref string) (apis.Constructor, bool) {
	if s.fn == nil {
		return nil, false
	}
	return s.fn(ref)
}
