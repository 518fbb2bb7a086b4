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

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclRoot decodes the top-level blocks of an HCL manifest.
type hclRoot struct {
	Environments []*hclEnvBlock `hcl:"environment,block"`
}

// hclEnvBlock is a single environment block:
//
//	environment "cartpole-v0" {
//	  entry_point = "classic:NewCartpole"
//	  kwargs = {
//	    size = 4
//	  }
//	}
type hclEnvBlock struct {
	ID         string         `hcl:"id,label"`
	EntryPoint string         `hcl:"entry_point"`
	Kwargs     hcl.Expression `hcl:"kwargs,optional"`
}

// LoadHCL parses an HCL manifest from src. filename is used in
// diagnostics only. Kwargs values must be literal (no variable
// references); they are evaluated with a nil context.
func LoadHCL(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("envx(manifest): parse %s: %w", filename, diags)
	}

	var root hclRoot
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("envx(manifest): decode %s: %w", filename, diags)
	}
	if len(root.Environments) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoEntries, filename)
	}

	f := &File{Environments: make([]Entry, 0, len(root.Environments))}
	for _, block := range root.Environments {
		kwargs, err := evalKwargs(block.Kwargs)
		if err != nil {
			return nil, fmt.Errorf("envx(manifest): environment %q in %s: %w", block.ID, filename, err)
		}
		f.Environments = append(f.Environments, Entry{
			ID:         block.ID,
			EntryPoint: block.EntryPoint,
			Kwargs:     kwargs,
		})
	}

	slog.Debug("hcl manifest loaded", "path", filename, "entries", len(f.Environments))
	return f, nil
}

// LoadHCLFile reads path from fsys and parses it with LoadHCL.
func LoadHCLFile(fsys fs.FS, path string) (*File, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("envx(manifest): read %s: %w", path, err)
	}
	return LoadHCL(content, path)
}

// evalKwargs evaluates an optional kwargs attribute into a Go map.
func evalKwargs(expr hcl.Expression) (map[string]any, error) {
	if !exprDefined(expr) {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluate kwargs: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("kwargs must be an object, got %s", val.Type().FriendlyName())
	}

	goVal, err := ctyToGo(val)
	if err != nil {
		return nil, fmt.Errorf("convert kwargs: %w", err)
	}
	kwargs, ok := goVal.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("kwargs converted to %T, want map", goVal)
	}
	return kwargs, nil
}

// exprDefined reports whether an HCL expression was actually present in
// the source. The decoder populates omitted optional attributes with
// non-nil, zero-width expression objects, so a nil check alone is not
// enough; a real attribute occupies bytes in the file.
func exprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	return r.End.Byte > r.Start.Byte
}
