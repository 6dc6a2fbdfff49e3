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
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// PyProjectFile is the manifest file name every Python project carries.
const PyProjectFile = "pyproject.toml"

// Metadata is the subset of pyproject.toml the tool reads.
type Metadata struct {
	Project struct {
		Name    string   `toml:"name"`
		Version string   `toml:"version"`
		Dynamic []string `toml:"dynamic"`
	} `toml:"project"`
	BuildSystem struct {
		Backend  string   `toml:"build-backend"`
		Requires []string `toml:"requires"`
	} `toml:"build-system"`
}

// ReadMetadata parses the pyproject.toml at path.
func ReadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var meta Metadata
	if err := toml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &meta, nil
}

// HasStaticVersion reports whether the project declares its version
// directly in pyproject.toml.
func (m *Metadata) HasStaticVersion() bool {
	return m.Project.Version != ""
}

// HasDynamicVersion reports whether the version is declared dynamic and
// lives in a source file instead.
func (m *Metadata) HasDynamicVersion() bool {
	return slices.Contains(m.Project.Dynamic, "version")
}

// OpenStore resolves the version store for the project rooted at root.
// A static project.version wins; a dynamic version falls back to the
// configured source file, resolved relative to root.
func OpenStore(root, dynamicVersionFile string) (Store, error) {
	pyproject := filepath.Join(root, PyProjectFile)

	meta, err := ReadMetadata(pyproject)
	if err != nil {
		return nil, err
	}

	switch {
	case meta.HasStaticVersion():
		return NewPyProjectStore(pyproject, root), nil
	case meta.HasDynamicVersion() && dynamicVersionFile != "":
		return NewDynamicStore(filepath.Join(root, dynamicVersionFile), root), nil
	default:
		return nil, fmt.Errorf("%s: %w", pyproject, ErrNoVersionSource)
	}
}
