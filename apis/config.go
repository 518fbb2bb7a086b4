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

// Config carries read-only registration knobs that influence validation.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// StrictVersionOrder requires versions of a name to be registered
	// gap-free: registering version V>0 demands versions 0..V-1 already
	// present. If false, only the first version of a new name must be 0;
	// later versions may skip numbers.
	StrictVersionOrder bool

	// ListLimit caps how many registered ids an unregistered-environment
	// error enumerates. Zero means no cap.
	ListLimit int
}
