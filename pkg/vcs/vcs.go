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

package vcs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/pepbump/pepbump/pkg/commit"
	"github.com/pepbump/pepbump/pkg/version"
)

var (
	// ErrNoRepository indicates no version-control repository was found
	// at or above the given path.
	ErrNoRepository = errors.New("no repository found")

	// ErrNoTag indicates the repository has no release tag yet.
	ErrNoTag = errors.New("repository has no tag")
)

// Provider is the version-control backend the tool talks to. All calls run
// against the repository the provider was opened on.
type Provider interface {
	// Root returns the repository root directory.
	Root() string

	// IsClean reports whether the working tree has no modified tracked
	// files. Untracked files do not count as dirty.
	IsClean(ctx context.Context) (bool, error)

	// History returns the commit headers since the most recent tag, or
	// the full history when no tag exists, newest first.
	History(ctx context.Context) (*commit.History, error)

	// MostRecentTag returns the version of the most recent tag. The bool
	// is false when the repository has no tag.
	MostRecentTag(ctx context.Context) (version.Version, bool, error)

	// CommitsSinceLastTag counts the commits after the most recent tag.
	CommitsSinceLastTag(ctx context.Context) (int, error)

	// CreateTag tags HEAD with the version, optionally prefixed with "v".
	CreateTag(ctx context.Context, v version.Version, prependV bool) error

	// CheckIn stages the given paths and commits them with message.
	CheckIn(ctx context.Context, message string, paths ...string) error
}

// FindRepositoryRoot walks up from start until it finds a directory
// containing a .git entry. Both a .git directory and a .git worktree file
// qualify.
func FindRepositoryRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoRepository
		}
		dir = parent
	}
}
