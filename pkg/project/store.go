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
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/pepbump/pepbump/pkg/version"
)

// FileStore locates the version assignment line in one file and rewrites
// only the quoted version string, leaving the rest of the file byte for
// byte intact. It backs both the pyproject.toml `version = "..."` field
// and dynamic `__version__ = "..."` source files.
type FileStore struct {
	path     string
	repoRoot string
	pattern  *regexp.Regexp

	current *version.Version
	hunk    *diffData
}

// versionLinePattern matches a `<prefix> = "..."` assignment at the start
// of a line, tolerating single quotes and a trailing comment. The version
// itself is the first capture group.
func versionLinePattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(prefix) + `\s*=\s*["'](.+?)["'][ \t]*(?:#.*)?$`)
}

// NewPyProjectStore returns a store over the `version` field of a
// pyproject.toml file. repoRoot anchors the relative paths in change hunks.
func NewPyProjectStore(pyprojectPath, repoRoot string) *FileStore {
	return &FileStore{
		path:     pyprojectPath,
		repoRoot: repoRoot,
		pattern:  versionLinePattern("version"),
	}
}

// NewDynamicStore returns a store over a `__version__` assignment in a
// project source file, the shape dynamic-version build backends expect.
func NewDynamicStore(sourcePath, repoRoot string) *FileStore {
	return &FileStore{
		path:     sourcePath,
		repoRoot: repoRoot,
		pattern:  versionLinePattern("__version__"),
	}
}

// Path implements Store.
func (s *FileStore) Path() string {
	return s.path
}

// CurrentVersion implements Source. The parsed version is cached until the
// next save.
func (s *FileStore) CurrentVersion() (version.Version, error) {
	if s.current != nil {
		return *s.current, nil
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return version.Version{}, fmt.Errorf("reading %s: %w", s.path, err)
	}

	m := s.pattern.FindSubmatch(content)
	if m == nil {
		return version.Version{}, fmt.Errorf("%s: %w", s.path, ErrVersionNotFound)
	}

	v, err := version.Parse(string(m[1]))
	if err != nil {
		return version.Version{}, err
	}

	s.current = &v
	return v, nil
}

// SaveVersion implements Persister. Only the quoted version string is
// replaced; the write goes through a temporary file in the same directory
// followed by a rename so a crash never leaves a truncated file behind.
func (s *FileStore) SaveVersion(v version.Version) error {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", s.path, err)
	}

	loc := s.pattern.FindSubmatchIndex(content)
	if loc == nil {
		return fmt.Errorf("%s: %w", s.path, ErrVersionNotFound)
	}

	// loc[2]:loc[3] spans the first capture group.
	next := make([]byte, 0, len(content)+16)
	next = append(next, content[:loc[2]]...)
	next = append(next, v.String()...)
	next = append(next, content[loc[3]:]...)

	if err := s.writeAtomic(next); err != nil {
		return err
	}

	hunk := &diffData{original: string(content), updated: string(next)}
	if s.hunk != nil {
		hunk.original = s.hunk.original
	}
	s.hunk = hunk
	s.current = &v

	return nil
}

func (s *FileStore) writeAtomic(content []byte) error {
	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(info.Mode()); err != nil {
		tmp.Close()
		return fmt.Errorf("restoring mode on %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// ChangeHunks implements HunkSource. Successive saves merge into one diff
// from the first original content to the latest result.
func (s *FileStore) ChangeHunks() ([]string, error) {
	if s.hunk == nil {
		return nil, nil
	}

	rel, err := filepath.Rel(s.repoRoot, s.path)
	if err != nil {
		rel = filepath.Base(s.path)
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(s.hunk.original),
		B:        difflib.SplitLines(s.hunk.updated),
		FromFile: filepath.Join("a", rel),
		ToFile:   filepath.Join("b", rel),
		Context:  3,
	})
	if err != nil {
		return nil, fmt.Errorf("diffing %s: %w", s.path, err)
	}

	return strings.Split(strings.TrimRight(text, "\n"), "\n"), nil
}

type diffData struct {
	original string
	updated  string
}
