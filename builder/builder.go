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

package builder

import (
	"log/slog"

	"dirpx.dev/envx/apis"
	"dirpx.dev/envx/registry"
	"dirpx.dev/envx/resolver"
)

// New creates an apis.Builder whose resolvers chain the given sources.
// The extension context is not interpreted by this builder; custom
// builders may use it for their own policy.
func New(sources ...apis.Source) apis.Builder {
	return &builder{sources: sources}
}

// builder is the default Builder implementation.
type builder struct {
	sources []apis.Source
}

// BuildRegistry builds and returns a new apis.Registry based on the provided
// configuration and pre-existing registry. If a pre-existing registry is
// provided, its records are replayed into the new registry in registration
// order, so per-name version ordering stays valid under the new config's
// weak check. A record that the new configuration rejects (a version gap
// under a stricter check) is dropped from the rebuilt registry and logged.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if prev != nil {
		for _, s := range prev.Specs() {
			if err := nreg.Register(s.ID, s.EntryPoint, s.Kwargs); err != nil {
				slog.Warn("registration dropped during registry rebuild",
					"id", s.ID, "entry_point", s.EntryPoint, "err", err)
			}
		}
	}
	return nreg
}

// BuildResolver builds and returns a new apis.Resolver over the builder's
// source chain. The previous resolver is not reused; sources carry all
// resolution state.
func (b *builder) BuildResolver(_ apis.Config, _ apis.Registry, _ apis.Resolver, _ any) apis.Resolver {
	return resolver.New(b.sources...)
}
