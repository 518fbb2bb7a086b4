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

// Package manifest loads environment registrations from configuration
// files (YAML or HCL) and applies them to a registry in bulk.
//
// A manifest is a flat list of registrations, each carrying an id, an
// entry-point reference and optional default kwargs. Loading a manifest
// does not touch any registry; Apply performs the registrations, so a
// caller can load once and apply to several registries (or validate a
// file without side effects).
package manifest

import (
	"errors"
	"fmt"
	"log/slog"

	"dirpx.dev/envx/apis"
)

// ErrNoEntries is returned when a manifest declares no environments.
var ErrNoEntries = errors.New("envx(manifest): no environments declared")

// Entry is a single environment registration read from a manifest.
type Entry struct {
	// ID is the environment identifier, "name[-vN]".
	ID string `yaml:"id"`
	// EntryPoint is the constructor reference, conventionally "module:attr".
	EntryPoint string `yaml:"entry_point"`
	// Kwargs are default construction arguments.
	Kwargs map[string]any `yaml:"kwargs"`
}

// File is a parsed manifest: an ordered list of registrations.
type File struct {
	Environments []Entry `yaml:"environments"`
}

// Apply registers every entry into reg, in file order.
// It stops at the first failure; entries registered before the failure
// remain registered. Registration errors are wrapped with the failing
// entry's id.
func (f *File) Apply(reg apis.Registry) error {
	for _, e := range f.Environments {
		if err := reg.Register(e.ID, e.EntryPoint, apis.Kwargs(e.Kwargs)); err != nil {
			return fmt.Errorf("envx(manifest): entry %q: %w", e.ID, err)
		}
		slog.Debug("manifest entry applied", "id", e.ID, "entry_point", e.EntryPoint)
	}
	return nil
}
