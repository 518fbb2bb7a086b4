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

// Kwargs is a set of named construction arguments for an environment.
// Keys are unique; order is irrelevant. A nil Kwargs is treated as empty.
type Kwargs map[string]any

// Clone returns a shallow copy of k. Values are shared; the map is not.
// Clone of a nil or empty Kwargs returns nil.
func (k Kwargs) Clone() Kwargs {
	if len(k) == 0 {
		return nil
	}
	out := make(Kwargs, len(k))
	for key, v := range k {
		out[key] = v
	}
	return out
}

// Merge returns a new Kwargs holding k overlaid with override.
// Keys present in override win key-by-key; neither input is mutated.
// No deep merge is performed on values.
func (k Kwargs) Merge(override Kwargs) Kwargs {
	if len(k) == 0 && len(override) == 0 {
		return nil
	}
	out := make(Kwargs, len(k)+len(override))
	for key, v := range k {
		out[key] = v
	}
	for key, v := range override {
		out[key] = v
	}
	return out
}
