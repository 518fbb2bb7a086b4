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

package apis

// Source is a pluggable resolution step. A Resolver can chain multiple
// sources in order (e.g., Catalog -> Static -> Func).
type Source interface {
	// TryResolve attempts to resolve an entry-point reference.
	// It returns (ctor, true) if handled; otherwise (nil, false) to
	// fall through to the next source.
	TryResolve(ref string) (ctor Constructor, handled bool)
}
