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

package resolver

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/envx/apis"
)

var (
	// ErrMalformedEntryPoint is returned when a reference does not have
	// the conventional "module:attr" shape.
	ErrMalformedEntryPoint = errors.New("envx(resolver): malformed entry point")
	// ErrUnresolvedEntryPoint is returned when no source handles a reference.
	ErrUnresolvedEntryPoint = errors.New("envx(resolver): unresolved entry point")
)

// New constructs an apis.Resolver that tries the given sources in order.
// Nil sources are ignored. The returned resolver is safe for concurrent use
// provided sources themselves are safe for concurrent TryResolve calls.
func New(sources ...apis.Source) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Source, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{sources: out}
}

// chain is an immutable, order-preserving resolver over a set of sources.
type chain struct {
	sources []apis.Source
}

// Resolve validates the reference shape and runs sources in order until
// one handles it.
func (r chain) Resolve(ref string) (apis.Constructor, error) {
	if err := checkRef(ref); err != nil {
		return nil, err
	}
	for _, s := range r.sources {
		if ctor, ok := s.TryResolve(ref); ok {
			return ctor, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnresolvedEntryPoint, ref)
}

// checkRef enforces the conventional "module:attr" reference shape:
// exactly one colon, with non-empty parts on both sides.
func checkRef(ref string) error {
	mod, attr, ok := strings.Cut(ref, ":")
	if !ok || mod == "" || attr == "" || strings.Contains(attr, ":") {
		return fmt.Errorf("%w: %q (expected \"module:attr\")", ErrMalformedEntryPoint, ref)
	}
	return nil
}
