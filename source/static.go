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

// NewStaticSource creates an apis.Source over a fixed table.
// The table is copied; later mutation of the argument has no effect.
func NewStaticSource(table map[string]apis.Constructor) apis.Source {
	m := make(map[string]apis.Constructor, len(table))
	for ref, ctor := range table {
		if ctor != nil {
			m[ref] = ctor
		}
	}
	return staticSource{m: m}
}

// staticSource is an immutable reference table, handy for tests and for
// binaries that know their full constructor set at startup.
type staticSource struct {
	m map[string]apis.Constructor
}

// Ensure staticSource implements apis.Source.
var _ apis.Source = staticSource{}

// TryResolve looks ref up in the fixed table.
func (s staticSource) TryResolve(ref string) (apis.Constructor, bool) {
	ctor, ok := s.m[ref]
	return ctor, ok
}
