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

package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"dirpx.dev/envx/apis"
	"dirpx.dev/envx/envid"
)

var (
	// ErrDuplicateRegistration indicates an attempt to re-register an
	// already registered canonical id.
	ErrDuplicateRegistration = errors.New("envx(registry): environment already registered")
	// ErrVersionGap indicates a version that violates the registration
	// order for its name (first version not 0, or a skipped version in
	// strict mode).
	ErrVersionGap = errors.New("envx(registry): version gap in registration order")
	// ErrUnregisteredEnvironment is returned when looking up an id with
	// no matching registration. The error message enumerates the
	// currently registered ids.
	ErrUnregisteredEnvironment = errors.New("envx(registry): unregistered environment")
)

// New constructs an empty Registry validating against cfg.
// Only StrictVersionOrder and ListLimit are used here.
func New(cfg apis.Config) apis.Registry {
	return &registry{cfg: cfg, specs: make(map[string]apis.Spec)}
}

// registry is a mutex-guarded Registry implementation that preserves
// registration order.
type registry struct {
	// cfg is the configuration used for registration validation.
	cfg apis.Config
	// mu guards specs and order; Register is a check-then-insert
	// sequence and must not race.
	mu sync.Mutex
	// specs maps canonical id to its registration record.
	specs map[string]apis.Spec
	// order holds canonical ids in registration order.
	order []string
}

// Register canonicalizes id and inserts a record for it.
// A failed registration leaves the registry unchanged.
func (r *registry) Register(id, entryPoint string, kwargs apis.Kwargs) error {
	// Validate the id against the grammar before touching state.
	name, version, err := envid.Parse(id)
	if err != nil {
		return err
	}
	canonical := envid.Format(name, version)

	spec := apis.Spec{
		ID:         canonical,
		Name:       name,
		Version:    version,
		EntryPoint: entryPoint,
		Kwargs:     kwargs.Clone(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.specs[canonical]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRegistration, canonical)
	}
	if err := r.checkVersionOrderLocked(name, version); err != nil {
		return err
	}

	r.specs[canonical] = spec
	r.order = append(r.order, canonical)
	return nil
}

// checkVersionOrderLocked enforces the per-name version ordering rules.
// Weak mode only requires that the first version of a new name is 0;
// strict mode additionally requires versions 0..version-1 to be present.
func (r *registry) checkVersionOrderLocked(name string, version int) error {
	if version == 0 {
		return nil
	}
	if r.cfg.StrictVersionOrder {
		for v := 0; v < version; v++ {
			if _, ok := r.specs[envid.Format(name, v)]; !ok {
				return fmt.Errorf("%w: %s version %d requires version %d first",
					ErrVersionGap, name, version, v)
			}
		}
		return nil
	}
	for _, s := range r.specs {
		if s.Name == name {
			return nil
		}
	}
	return fmt.Errorf("%w: first version of %s must be 0, got %d", ErrVersionGap, name, version)
}

// Lookup canonicalizes id and returns its record with a private kwargs copy.
func (r *registry) Lookup(id string) (apis.Spec, error) {
	name, version, err := envid.Parse(id)
	if err != nil {
		return apis.Spec{}, err
	}
	canonical := envid.Format(name, version)

	r.mu.Lock()
	defer r.mu.Unlock()

	spec, ok := r.specs[canonical]
	if !ok {
		return apis.Spec{}, fmt.Errorf("%w: %s; registered environments: %s",
			ErrUnregisteredEnvironment, canonical, r.listLocked())
	}
	spec.Kwargs = spec.Kwargs.Clone()
	return spec, nil
}

// listLocked renders the registered ids for the unregistered error,
// honoring the ListLimit cap.
func (r *registry) listLocked() string {
	if len(r.order) == 0 {
		return "none"
	}
	ids := r.order
	omitted := 0
	if limit := r.cfg.ListLimit; limit > 0 && len(ids) > limit {
		omitted = len(ids) - limit
		ids = ids[:limit]
	}
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(strings.Join(ids, " "))
	if omitted > 0 {
		fmt.Fprintf(&b, " ... +%d more", omitted)
	}
	b.WriteByte(']')
	return b.String()
}

// IDs returns all canonical ids in registration order.
func (r *registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Specs returns a snapshot of all records in registration order.
func (r *registry) Specs() []apis.Spec {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]apis.Spec, 0, len(r.order))
	for _, id := range r.order {
		spec := r.specs[id]
		spec.Kwargs = spec.Kwargs.Clone()
		out = append(out, spec)
	}
	return out
}

// Count returns the number of registered environments.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Reset clears all registrations.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs = make(map[string]apis.Spec)
	r.order = nil
}
