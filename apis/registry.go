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

// Registry stores environment registrations keyed by canonical id.
// Keep it minimal so implementations can pick their own locking scheme.
type Registry interface {
	// Register canonicalizes id and stores a Spec built from
	// (canonical id, entryPoint, kwargs). kwargs are cloned on insert.
	// Re-registering an existing canonical id is an error.
	Register(id, entryPoint string, kwargs Kwargs) error
	// Lookup canonicalizes id and returns the matching Spec.
	// The returned Spec carries its own kwargs copy.
	Lookup(id string) (Spec, error)
	// IDs returns all canonical ids in registration order.
	IDs() []string
	// Specs returns a snapshot of all records in registration order
	// (for diagnostics/docs).
	Specs() []Spec
	// Count returns the number of registered environments.
	Count() int
	// Reset clears all registrations.
	Reset()
}

// Spec is a single environment registration record.
// Name and Version are derived from ID when the record is built and are
// never recomputed afterwards.
type Spec struct {
	// ID is the canonical identifier ("{name}-v{version}").
	ID string
	// Name is the identifier without its version suffix.
	Name string
	// Version is the non-negative environment version (0 when omitted).
	Version int
	// EntryPoint is an opaque reference resolvable to a Constructor,
	// conventionally "module:attr".
	EntryPoint string
	// Kwargs are default construction arguments, merged with (and
	// overridden by) call-time kwargs on instantiation.
	Kwargs Kwargs
}
