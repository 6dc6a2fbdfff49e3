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
	"errors"

	"github.com/pepbump/pepbump/pkg/version"
)

var (
	// ErrVersionNotFound indicates the version line could not be located
	// in the source file.
	ErrVersionNotFound = errors.New("version not found in source file")

	// ErrNoVersionSource indicates the project declares neither a static
	// project.version nor a usable dynamic version file.
	ErrNoVersionSource = errors.New("project has no usable version source")
)

// Source reads the project's current version.
type Source interface {
	CurrentVersion() (version.Version, error)
}

// Persister writes a new version back to the project.
type Persister interface {
	SaveVersion(v version.Version) error
}

// HunkSource reports the pending source file changes as unified-diff
// lines, suitable for a commit body or a dry-run preview.
type HunkSource interface {
	ChangeHunks() ([]string, error)
}

// Store combines reading, writing, and change reporting over one version
// source file.
type Store interface {
	Source
	Persister
	HunkSource

	// Path returns the backing file.
	Path() string
}
