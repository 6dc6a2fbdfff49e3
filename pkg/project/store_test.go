// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pepbump/pepbump/pkg/version"
)

const samplePyProject = `[project]
name = "demo"
version = "1.2.3"
description = "demo project"

[build-system]
requires = ["pdm-backend"]
build-backend = "pdm.backend"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileStoreReadWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, PyProjectFile, samplePyProject)

	store := NewPyProjectStore(path, dir)

	current, err := store.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", current.String())

	require.NoError(t, store.SaveVersion(version.MustParse("1.3.0")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `version = "1.3.0"`)
	// Everything else stays untouched.
	assert.Contains(t, string(content), `description = "demo project"`)
	assert.Contains(t, string(content), `build-backend = "pdm.backend"`)

	current, err = store.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", current.String())
}

func TestFileStoreVersionLineForms(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		wantErr bool
	}{
		{"double quotes", `version = "1.0.0"`, "1.0.0", false},
		{"single quotes", `version = '2.0.0a1'`, "2.0.0a1", false},
		{"no spaces", `version="3.0"`, "3.0", false},
		{"trailing comment", `version = "1.0.0"  # managed by pepbump`, "1.0.0", false},
		{"missing line", `name = "demo"`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeFile(t, dir, PyProjectFile, "[project]\n"+tt.line+"\n")

			store := NewPyProjectStore(path, dir)
			got, err := store.CurrentVersion()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrVersionNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDynamicStore(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "__init__.py", "\"\"\"demo\"\"\"\n\n__version__ = \"0.4.1\"\n")

	store := NewDynamicStore(path, dir)

	current, err := store.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, "0.4.1", current.String())

	require.NoError(t, store.SaveVersion(version.MustParse("0.5.0")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "__version__ = \"0.5.0\"")
}

func TestChangeHunks(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, PyProjectFile, samplePyProject)

	store := NewPyProjectStore(path, dir)

	hunks, err := store.ChangeHunks()
	require.NoError(t, err)
	assert.Empty(t, hunks, "no hunks before any save")

	require.NoError(t, store.SaveVersion(version.MustParse("1.3.0")))

	hunks, err = store.ChangeHunks()
	require.NoError(t, err)
	require.NotEmpty(t, hunks)
	assert.Equal(t, "--- a/pyproject.toml", hunks[0])
	assert.Equal(t, "+++ b/pyproject.toml", hunks[1])
	joined := strings.Join(hunks, "\n")
	assert.Contains(t, joined, `-version = "1.2.3"`)
	assert.Contains(t, joined, `+version = "1.3.0"`)
}

func TestChangeHunksMerge(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, PyProjectFile, samplePyProject)

	store := NewPyProjectStore(path, dir)
	require.NoError(t, store.SaveVersion(version.MustParse("1.3.0")))
	require.NoError(t, store.SaveVersion(version.MustParse("2.0.0")))

	hunks, err := store.ChangeHunks()
	require.NoError(t, err)
	joined := strings.Join(hunks, "\n")
	// Diff runs from the first original to the latest result, the
	// intermediate version never shows up.
	assert.Contains(t, joined, `-version = "1.2.3"`)
	assert.Contains(t, joined, `+version = "2.0.0"`)
	assert.NotContains(t, joined, "1.3.0")
}

func TestSaveVersionMissingFile(t *testing.T) {
	store := NewPyProjectStore(filepath.Join(t.TempDir(), "nope.toml"), t.TempDir())
	err := store.SaveVersion(version.MustParse("1.0.0"))
	require.Error(t, err)
}

func TestReadMetadata(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, PyProjectFile, samplePyProject)

	meta, err := ReadMetadata(filepath.Join(dir, PyProjectFile))
	require.NoError(t, err)
	assert.Equal(t, "demo", meta.Project.Name)
	assert.True(t, meta.HasStaticVersion())
	assert.False(t, meta.HasDynamicVersion())
	assert.Equal(t, "pdm.backend", meta.BuildSystem.Backend)
}

func TestOpenStore(t *testing.T) {
	t.Run("static version", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, PyProjectFile, samplePyProject)

		store, err := OpenStore(dir, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, PyProjectFile), store.Path())
	})

	t.Run("dynamic version", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, PyProjectFile, "[project]\nname = \"demo\"\ndynamic = [\"version\"]\n")
		writeFile(t, dir, "version.py", "__version__ = \"0.1.0\"\n")

		store, err := OpenStore(dir, "version.py")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "version.py"), store.Path())

		v, err := store.CurrentVersion()
		require.NoError(t, err)
		assert.Equal(t, "0.1.0", v.String())
	})

	t.Run("no source", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, PyProjectFile, "[project]\nname = \"demo\"\n")

		_, err := OpenStore(dir, "")
		require.ErrorIs(t, err, ErrNoVersionSource)
	})
}
