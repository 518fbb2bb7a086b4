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

// Package envid implements the environment identifier grammar.
//
// An identifier has the form "name[-vN]": a name over the charset
// [\w:.-] with an optional trailing version suffix "-v" followed by one
// or more digits. The version defaults to 0 when the suffix is absent.
// Parse and Format are pure functions and form a round trip:
// Parse(Format(n, v)) == (n, v) for any grammar-legal n and v >= 0.
package envid

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformedID is returned when an identifier does not match the
// "name[-vN]" grammar.
var ErrMalformedID = errors.New("envx(envid): malformed environment id")

// idRE matches the full identifier grammar. The name is lazy so that a
// trailing "-v<digits>" is always consumed by the version group.
var idRE = regexp.MustCompile(`\A([\w:.-]+?)(?:-v(\d+))?\z`)

// danglingRE rejects names that end in a bare version marker: "foo-v"
// and "foo-v-1" are malformed, while "foo-vx" is a plain name.
var danglingRE = regexp.MustCompile(`-v(-\d+)?\z`)

// Parse decomposes id into (name, version).
//
// The version suffix is recognized only as a literal trailing "-v"
// followed by digits; any other "-v<word>" run is part of the name.
// Malformed inputs (empty string, disallowed characters, dangling
// version markers) return an error wrapping ErrMalformedID.
func Parse(id string) (name string, version int, err error) {
	m := idRE.FindStringSubmatch(id)
	if m == nil {
		return "", 0, fmt.Errorf("%w: %q (expected (name)[-v(version)])", ErrMalformedID, id)
	}
	name = m[1]
	if danglingRE.MatchString(name) {
		return "", 0, fmt.Errorf("%w: %q (dangling version marker)", ErrMalformedID, id)
	}
	if m[2] == "" {
		return name, 0, nil
	}
	version, err = strconv.Atoi(m[2])
	if err != nil {
		// Digits too large for int; treat as malformed rather than overflow.
		return "", 0, fmt.Errorf("%w: %q (version out of range)", ErrMalformedID, id)
	}
	return name, version, nil
}

// Format returns the canonical identifier "{name}-v{version}".
//
// Format is total: it performs no charset validation and accepts any
// integer version. Validation happens when the result is parsed again.
func Format(name string, version int) string {
	return name + "-v" + strconv.Itoa(version)
}
