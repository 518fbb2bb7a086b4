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

package registry_test

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	apis "dirpx.dev/envx/apis"
	"dirpx.dev/envx/config"
	"dirpx.dev/envx/envid"
	"dirpx.dev/envx/registry"
)

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/IDs/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	ids := []string{
		"env0-v0", "env1-v0", "env2-v0", "env3-v0", "env4-v0",
		"env5-v0", "env6-v0", "env7-v0", "env8-v0", "env9-v0",
	}

	// Register once (sequential) to establish baseline.
	for _, id := range ids {
		if err := reg.Register(id, "mod:attr", apis.Kwargs{"id": id}); err != nil {
			t.Fatalf("register %s: %v", id, err)
		}
	}

	// Hammer with concurrent lookups and duplicate registrations.
	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				id := ids[i%len(ids)]
				if spec, err := reg.Lookup(id); err != nil || spec.ID != id {
					t.Errorf("lookup %s: spec=%+v err=%v", id, spec, err)
					return
				}
				_ = reg.Count()
				_ = reg.IDs()
			}
		}()
	}

	// Writers (duplicate re-register; must fail cleanly, never corrupt)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % len(ids)
				err := reg.Register(ids[j], "mod:attr", nil)
				if !errors.Is(err, registry.ErrDuplicateRegistration) {
					t.Errorf("re-register %s: want ErrDuplicateRegistration, got %v", ids[j], err)
					return
				}
			}
		}(w)
	}

	wg.Wait()

	// Final consistency checks.
	if reg.Count() != len(ids) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(ids))
	}
	got := reg.IDs()
	for i, id := range ids {
		if got[i] != id {
			t.Fatalf("order mismatch at %d: got %q want %q", i, got[i], id)
		}
	}
}

// TestConcurrentFreshRegistration races distinct ids from many goroutines;
// each must be registered exactly once.
func TestConcurrentFreshRegistration(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	const n = 64
	wg := sync.WaitGroup{}
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			id := envid.Format("worker"+string(rune('a'+i%26))+string(rune('a'+i/26)), 0)
			// Two goroutines per id would collide; ids here are unique,
			// so every Register must succeed.
			if err := reg.Register(id, "mod:attr", nil); err != nil {
				t.Errorf("register %s: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	if reg.Count() != n {
		t.Fatalf("count = %d, want %d", reg.Count(), n)
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Registry = registry.New(config.DefaultConfig())
