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

// Package catalog maps entry-point references to constructors.
//
// A Catalog is the in-process answer to "where do I find the constructor
// for this reference string": code that owns an environment constructor
// provides it under a reference, and resolution later looks the
// reference up. It is the usual backing store for a CatalogSource.
package catalog

import (
	"errors"
	"sort"
	"sync"

	"dirpx.dev/envx/apis"
)

var (
	// ErrEmptyRef is returned when an empty reference is provided.
	ErrEmptyRef = errors.New("envx(catalog): empty entry-point reference")
	// ErrNilConstructor is returned when a nil constructor is provided.
	ErrNilConstructor = errors.New("envx(catalog): nil constructor provided")
	// ErrDuplicateEntryPoint indicates an attempt to provide a reference
	// that already has a constructor. Constructors are not comparable, so
	// re-providing is never treated as idempotent.
	ErrDuplicateEntryPoint = errors.New("envx(catalog): entry point already provided")
)

// New constructs an empty Catalog.
func New() *Catalog {
	return &Catalog{}
}

// Catalog is a concurrency-safe reference-to-constructor table.
// Lookups are lock-free; writes are mutex-guarded.
type Catalog struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reference strings to apis.Constructor values.
	m sync.Map // map[string]apis.Constructor
	// count tracks the number of provided entries.
	count int
}

// Provide associates ref with a constructor.
func (c *Catalog) Provide(ref string, ctor apis.Constructor) error {
	// Validate inputs early.
	if ref == "" {
		return ErrEmptyRef
	}
	if ctor == nil {
		return ErrNilConstructor
	}

	// Fast read path: duplicate check without locking.
	if _, ok := c.m.Load(ref); ok {
		return ErrDuplicateEntryPoint
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if _, ok := c.m.Load(ref); ok {
		return ErrDuplicateEntryPoint
	}

	c.m.Store(ref, ctor)
	c.count++
	return nil
}

// Lookup returns the constructor for ref if present.
func (c *Catalog) Lookup(ref string) (apis.Constructor, bool) {
	if v, ok := c.m.Load(ref); ok {
		return v.(apis.Constructor), true
	}
	return nil, false
}

// Refs returns all provided references, sorted (for diagnostics/docs).
func (c *Catalog) Refs() []string {
	refs := make([]string, 0, c.Count())
	c.m.Range(func(key, _ any) bool {
		refs = append(refs, key.(string))
		return true
	})
	sort.Strings(refs)
	return refs
}

// Count returns the number of provided entries.
func (c *Catalog) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Reset clears all provided entries.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = sync.Map{}
	c.count = 0
}
