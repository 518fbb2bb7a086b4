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

package manifest_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/envx/config"
	"dirpx.dev/envx/manifest"
	"dirpx.dev/envx/registry"
)

const yamlManifest = `
environments:
  - id: cartpole-v0
    entry_point: "classic:NewCartpole"
    kwargs:
      size: 4
      render: true
  - id: snake
    entry_point: "games:NewSnake"
`

func TestLoadYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"manifests/envs.yaml": {Data: []byte(yamlManifest)},
	}

	f, err := manifest.LoadYAML(fsys, "manifests/envs.yaml")
	require.NoError(t, err)
	require.Len(t, f.Environments, 2)

	assert.Equal(t, "cartpole-v0", f.Environments[0].ID)
	assert.Equal(t, "classic:NewCartpole", f.Environments[0].EntryPoint)
	assert.Equal(t, 4, f.Environments[0].Kwargs["size"])
	assert.Equal(t, true, f.Environments[0].Kwargs["render"])

	assert.Equal(t, "snake", f.Environments[1].ID)
	assert.Nil(t, f.Environments[1].Kwargs)
}

func TestLoadYAML_MissingFile(t *testing.T) {
	_, err := manifest.LoadYAML(fstest.MapFS{}, "nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadYAML_Malformed(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yaml": {Data: []byte("environments: [unclosed")},
	}

	_, err := manifest.LoadYAML(fsys, "bad.yaml")
	require.Error(t, err)
}

func TestLoadYAML_Empty(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.yaml": {Data: []byte("environments: []")},
	}

	_, err := manifest.LoadYAML(fsys, "empty.yaml")
	require.ErrorIs(t, err, manifest.ErrNoEntries)
}

func TestApply(t *testing.T) {
	fsys := fstest.MapFS{
		"envs.yaml": {Data: []byte(yamlManifest)},
	}
	f, err := manifest.LoadYAML(fsys, "envs.yaml")
	require.NoError(t, err)

	reg := registry.New(config.DefaultConfig())
	require.NoError(t, f.Apply(reg))

	assert.Equal(t, []string{"cartpole-v0", "snake-v0"}, reg.IDs())

	spec, err := reg.Lookup("cartpole")
	require.NoError(t, err)
	assert.Equal(t, "classic:NewCartpole", spec.EntryPoint)
	assert.Equal(t, 4, spec.Kwargs["size"])
}

func TestApply_DuplicateNamesEntry(t *testing.T) {
	f := &manifest.File{Environments: []manifest.Entry{
		{ID: "dup-v0", EntryPoint: "mod:New"},
		{ID: "dup", EntryPoint: "mod:New"},
	}}

	reg := registry.New(config.DefaultConfig())
	err := f.Apply(reg)
	require.ErrorIs(t, err, registry.ErrDuplicateRegistration)
	assert.Contains(t, err.Error(), `"dup"`)

	// The first entry stays registered.
	assert.Equal(t, 1, reg.Count())
}

const hclManifest = `
environment "cartpole-v0" {
  entry_point = "classic:NewCartpole"
  kwargs = {
    size   = 4
    name   = "pole"
    fast   = true
    shape  = [3, 4]
    nested = { depth = 2 }
  }
}

environment "snake" {
  entry_point = "games:NewSnake"
}
`

func TestLoadHCL(t *testing.T) {
	f, err := manifest.LoadHCL([]byte(hclManifest), "envs.hcl")
	require.NoError(t, err)
	require.Len(t, f.Environments, 2)

	e := f.Environments[0]
	assert.Equal(t, "cartpole-v0", e.ID)
	assert.Equal(t, "classic:NewCartpole", e.EntryPoint)
	assert.Equal(t, float64(4), e.Kwargs["size"])
	assert.Equal(t, "pole", e.Kwargs["name"])
	assert.Equal(t, true, e.Kwargs["fast"])
	assert.Equal(t, []any{float64(3), float64(4)}, e.Kwargs["shape"])
	assert.Equal(t, map[string]any{"depth": float64(2)}, e.Kwargs["nested"])

	// No kwargs attribute means no kwargs, not an empty map.
	assert.Nil(t, f.Environments[1].Kwargs)
}

func TestLoadHCL_Malformed(t *testing.T) {
	_, err := manifest.LoadHCL([]byte(`environment "x" {`), "broken.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.hcl")
}

func TestLoadHCL_KwargsNotObject(t *testing.T) {
	src := `
environment "x-v0" {
  entry_point = "mod:New"
  kwargs      = 4
}
`
	_, err := manifest.LoadHCL([]byte(src), "envs.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kwargs must be an object")
}

func TestLoadHCL_Empty(t *testing.T) {
	_, err := manifest.LoadHCL([]byte("\n"), "empty.hcl")
	require.ErrorIs(t, err, manifest.ErrNoEntries)
}

func TestLoadHCLFile(t *testing.T) {
	fsys := fstest.MapFS{
		"manifests/envs.hcl": {Data: []byte(hclManifest)},
	}

	f, err := manifest.LoadHCLFile(fsys, "manifests/envs.hcl")
	require.NoError(t, err)
	assert.Len(t, f.Environments, 2)

	reg := registry.New(config.DefaultConfig())
	require.NoError(t, f.Apply(reg))
	assert.Equal(t, []string{"cartpole-v0", "snake-v0"}, reg.IDs())
}
