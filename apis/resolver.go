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

// Resolver turns an opaque entry-point reference into a Constructor.
// Typical chain: CatalogSource -> StaticSource -> FuncSource.
//
// # Contract
//
//   - ref is conventionally "module:attr"; the exact format is owned by
//     the resolver implementation, not by the registry.
//   - Resolution MUST be side-effect free: resolving a reference twice
//     yields equivalent constructors and constructs nothing.
//   - Resolve MUST be safe for concurrent use.
//   - On failure, Resolve returns a non-nil error and callers MUST NOT
//     use the returned Constructor. The registry propagates such errors
//     to its caller without wrapping.
type Resolver interface {
	// Resolve returns the Constructor for an entry-point reference.
	Resolve(ref string) (Constructor, error)
}
