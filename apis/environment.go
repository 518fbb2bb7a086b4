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

// Environment is whatever a resolved constructor returns.
//
// # Overview
//
// The registry imposes no interface requirement on the objects it
// produces. From its point of view an environment is a capability-typed
// value: "constructible with positional and keyword arguments". Any
// behavioral contract (stepping, resetting, rendering, ...) belongs to
// the embedding application, which is expected to type-assert the
// returned value to its own environment interface.
//
// Environment is an alias for any rather than an interface so that the
// core stays free of domain assumptions.
type Environment = any

// Constructor produces an Environment from positional args and keyword
// kwargs.
//
// # Contract
//
//   - A Constructor MUST treat kwargs as read-only; the caller may reuse
//     the map for diagnostics after the call.
//   - A Constructor SHOULD validate its arguments and return an error
//     rather than panic on bad input; errors are propagated to the Make
//     caller unwrapped.
//   - A Constructor MAY be invoked concurrently from multiple goroutines
//     and MUST be safe for such use (it typically closes over no mutable
//     state).
//   - A nil args slice and a nil kwargs map are both valid and mean
//     "no arguments of that kind".
type Constructor func(args []any, kwargs Kwargs) (Environment, error)
