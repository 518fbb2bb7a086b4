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

package manifest

import (
	"fmt"
	"io/fs"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads and parses a YAML manifest from fsys at path.
//
// Expected shape:
//
//	environments:
//	  - id: cartpole-v0
//	    entry_point: "classic:NewCartpole"
//	    kwargs:
//	      size: 4
//
// A manifest with no environments is an error; a silently empty file is
// almost always a mistake in the deployment bundle.
func LoadYAML(fsys fs.FS, path string) (*File, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("envx(manifest): read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("envx(manifest): parse %s: %w", path, err)
	}
	if len(f.Environments) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoEntries, path)
	}

	slog.Debug("yaml manifest loaded", "path", path, "entries", len(f.Environments))
	return &f, nil
}
