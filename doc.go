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

// Package envx provides a global, process-wide versioned environment registry.
//
// envx is responsible for turning a versioned environment identifier such as
// "cartpole-v1" into a live environment instance. A binary registers its
// environments once (id, entry point, default kwargs), then any component in
// the process can instantiate them by id:
//
//	env, err := envx.Make("cartpole-v1", nil, envx.Kwargs{"size": 8})
//
// Identifiers follow the "name[-vN]" grammar: a name made of word characters
// plus ':', '.' and '-', optionally suffixed by an explicit version "-vN".
// An id without a version suffix means version 0, so "cartpole" and
// "cartpole-v0" refer to the same registration.
//
// # Design
//
// The core of envx is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: rules that control registration and diagnostics (strict
//     version-order checking, how many known ids an error message lists).
//
//   - Registry: a process-wide mapping from canonical ids to registration
//     records (entry point + default kwargs). The registry can be written
//     to at runtime (Register).
//
//   - Resolver: a read-only object that answers "what constructor does this
//     entry point reference name?". The resolver tries a chain of sources
//     in priority order; the default chain consults the process catalog fed
//     by Provide. Resolver is expected to be concurrency-safe for reads.
//
//   - Builder: a pluggable factory that knows how to construct Registry
//     and Resolver instances for a given Config (and optional extension
//     data). The Builder is also allowed to reuse/migrate state from
//     previous Registry/Resolver instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means envx lookups are lock-free on the hot path:
//
//	env, err := envx.Make("cartpole-v1", nil, nil)
//	ids := envx.RegisteredEnvironments()
//
// and concurrent callers always see a consistent snapshot.
//
// # Global API
//
//  1. Read helpers:
//
//     Make(id string, args []any, kwargs apis.Kwargs) (apis.Environment, error)
//     RegisteredEnvironments() []string
//     Registry() apis.Registry
//     Resolver() apis.Resolver
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     Register(id, entryPoint string, kwargs apis.Kwargs) error
//     Provide(ref string, ctor apis.Constructor) error
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetRegistry(reg apis.Registry)
//     SetResolver(res apis.Resolver)
//     UnpinRegistry()
//     UnpinResolver()
//     SetAll(...)
//
//     Register and Provide write through the snapshot's registry and the
//     process catalog. The Set* helpers acquire an internal build lock,
//     derive a new snapshot (rebuilding or reusing Registry / Resolver as
//     needed), and then atomically publish that snapshot. Rebuilt
//     registries migrate existing registrations in registration order;
//     a record the new configuration rejects (a version gap under a
//     stricter check) is dropped from the rebuilt registry with a
//     logged warning.
//
//  3. Introspection:
//
//     ExtAs[T]() (T, bool)
//     // plus Registry().Specs(), etc.
//
// # Concurrency model
//
// Reads (Make, RegisteredEnvironments, Registry, Resolver) are wait-free:
// they load the current *state atomically and never take locks. The
// Resolver and Registry returned by that state must themselves be
// concurrency-safe.
//
// Writes (SetConfig, SetBuilder, SetExt, SetRegistry, SetResolver, etc.)
// take a short build mutex, assemble a brand-new state struct, and then
// publish it via an atomic pointer swap. This gives the calling binary
// a predictable "last write wins" behavior without forcing per-lookup
// locking.
//
// # Pinning
//
// envx supports the concept of "pinning" a layer:
//
//   - When you call SetRegistry(reg), that exact Registry becomes the
//     process-wide registry and is considered pinned. Further calls to
//     SetConfig() will not attempt to rebuild a new Registry until you
//     explicitly UnpinRegistry().
//
//   - When you call SetResolver(res), that Resolver is pinned and will
//     not be rebuilt automatically until UnpinResolver().
//
// Pinning is there for advanced scenarios where you want full control
// over one layer while still letting other layers evolve: for example a
// test may pin a stub Resolver while exercising Config changes.
//
// # Usage pattern in a binary
//
// A typical component does:
//
//  1. Let envx init with the default builder/config.
//
//  2. Provide constructors for its entry points, typically from init():
//
//     envx.Provide("classic:NewCartpole", NewCartpole)
//
//  3. Register its environments:
//
//     envx.Register("cartpole-v0", "classic:NewCartpole", envx.Kwargs{"size": 4})
//     envx.Register("cartpole-v1", "classic:NewCartpole", envx.Kwargs{"size": 8})
//
//  4. Instantiate by id anywhere in the process with envx.Make.
//
//  5. In tests, call envx.SetAll(...) to get deterministic snapshots
//     and to inject a mock Builder.
//
// Bulk registration from configuration files is handled by the manifest
// subpackage, which loads YAML or HCL manifests and applies them to a
// Registry.
//
// # Scope
//
// envx is intentionally small. It does not define what an environment IS:
// apis.Environment is deliberately opaque, and constructors decide what
// they return. envx only solves one job:
//
//	"Given a versioned environment id, find its registration and build
//	 an instance from its entry point and merged kwargs."
//
// Everything else (stepping, rendering, vectorization, lifecycle) belongs
// to the environments themselves.
package envx
