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

package envid_test

import (
	"errors"
	"testing"

	"dirpx.dev/envx/envid"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		id      string
		name    string
		version int
	}{
		{"cartpole-v0", "cartpole", 0},
		{"cartpole-v12", "cartpole", 12},
		{"cartpole", "cartpole", 0},
		{"my-env-v3", "my-env", 3},
		{"ns:env.variant-v1", "ns:env.variant", 1},
		{"snake_case-v0", "snake_case", 0},
		// "-v<non-digit>" runs are part of the name, not a version suffix.
		{"foo-vx", "foo-vx", 0},
		{"foo-vx-v2", "foo-vx", 2},
		// Leading zeros are canonicalized away by the round trip.
		{"cartpole-v007", "cartpole", 7},
	}
	for _, c := range cases {
		name, version, err := envid.Parse(c.id)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", c.id, err)
		}
		if name != c.name || version != c.version {
			t.Fatalf("Parse(%q) = (%q,%d), want (%q,%d)", c.id, name, version, c.name, c.version)
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, id := range []string{
		"",
		"foo-v",
		"foo-v-1",
		"foo-v-12",
		"foo bar-v0",
		"foo/bar-v0",
		"env@home",
	} {
		if _, _, err := envid.Parse(id); !errors.Is(err, envid.ErrMalformedID) {
			t.Fatalf("Parse(%q): want ErrMalformedID, got %v", id, err)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := envid.Format("cartpole", 0); got != "cartpole-v0" {
		t.Fatalf("Format(cartpole,0) = %q, want cartpole-v0", got)
	}
	if got := envid.Format("my-env", 7); got != "my-env-v7" {
		t.Fatalf("Format(my-env,7) = %q, want my-env-v7", got)
	}
	// Format is total: no validation of name or version here.
	if got := envid.Format("weird name", -1); got != "weird name-v-1" {
		t.Fatalf("Format(weird name,-1) = %q, want weird name-v-1", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []struct {
		name    string
		version int
	}{
		{"cartpole", 0},
		{"my-env", 4},
		{"ns:env.variant", 11},
	} {
		id := envid.Format(c.name, c.version)
		name, version, err := envid.Parse(id)
		if err != nil {
			t.Fatalf("Parse(Format(%q,%d)): %v", c.name, c.version, err)
		}
		if name != c.name || version != c.version {
			t.Fatalf("round trip (%q,%d) -> %q -> (%q,%d)", c.name, c.version, id, name, version)
		}
	}
}
