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
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pepbump/pepbump/pkg/commit"
	"github.com/pepbump/pepbump/pkg/version"
)

// runner executes one git invocation in dir and returns its stdout.
type runner interface {
	run(ctx context.Context, dir string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s: %w", args[0], msg, err)
	}

	return stdout.String(), nil
}

// GitCLI implements Provider by shelling out to the git command line.
type GitCLI struct {
	root   string
	parser commit.Parser
	run    runner
}

// OpenGit locates the repository containing path and returns a provider
// over it. A nil parser falls back to the default conventional-commit
// parser.
func OpenGit(path string, parser commit.Parser) (*GitCLI, error) {
	root, err := FindRepositoryRoot(path)
	if err != nil {
		return nil, err
	}
	return &GitCLI{root: root, parser: parser, run: execRunner{}}, nil
}

// Root implements Provider.
func (g *GitCLI) Root() string {
	return g.root
}

// IsClean implements Provider. Untracked files ("??" status lines) are
// ignored.
func (g *GitCLI) IsClean(ctx context.Context) (bool, error) {
	out, err := g.run.run(ctx, g.root, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("checking working tree in %s: %w", g.root, err)
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "??") {
			return false, nil
		}
	}
	return true, nil
}

// MostRecentTag implements Provider.
func (g *GitCLI) MostRecentTag(ctx context.Context) (version.Version, bool, error) {
	tag, ok, err := g.lastTag(ctx)
	if err != nil || !ok {
		return version.Version{}, false, err
	}

	v, err := version.Parse(strings.TrimPrefix(tag, "v"))
	if err != nil {
		return version.Version{}, false, fmt.Errorf("tag %q: %w", tag, err)
	}
	return v, true, nil
}

// History implements Provider.
func (g *GitCLI) History(ctx context.Context) (*commit.History, error) {
	tag, ok, err := g.lastTag(ctx)
	if err != nil {
		return nil, err
	}

	args := []string{"log", "--format=%s"}
	if ok {
		args = append(args, tag+"..HEAD")
	} else {
		args = append(args, "HEAD")
	}

	out, err := g.run.run(ctx, g.root, args...)
	if err != nil {
		return nil, fmt.Errorf("reading history in %s: %w", g.root, err)
	}

	var headers []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			headers = append(headers, line)
		}
	}

	return commit.NewHistoryFromHeaders(headers, g.parser), nil
}

// CommitsSinceLastTag implements Provider.
func (g *GitCLI) CommitsSinceLastTag(ctx context.Context) (int, error) {
	tag, ok, err := g.lastTag(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNoTag
	}

	out, err := g.run.run(ctx, g.root, "rev-list", tag+"..HEAD", "--count")
	if err != nil {
		return 0, fmt.Errorf("counting commits since %s: %w", tag, err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", out, err)
	}
	return n, nil
}

// CreateTag implements Provider.
func (g *GitCLI) CreateTag(ctx context.Context, v version.Version, prependV bool) error {
	tag := v.String()
	if prependV {
		tag = "v" + tag
	}

	if _, err := g.run.run(ctx, g.root, "tag", tag); err != nil {
		return fmt.Errorf("creating tag %s in %s: %w", tag, g.root, err)
	}
	return nil
}

// CheckIn implements Provider.
func (g *GitCLI) CheckIn(ctx context.Context, message string, paths ...string) error {
	args := append([]string{"add", "--update"}, paths...)
	if _, err := g.run.run(ctx, g.root, args...); err != nil {
		return fmt.Errorf("staging %s in %s: %w", strings.Join(paths, ", "), g.root, err)
	}

	if _, err := g.run.run(ctx, g.root, "commit", "-m", message); err != nil {
		return fmt.Errorf("committing in %s: %w", g.root, err)
	}
	return nil
}

// lastTag returns the most recent tag reachable from HEAD. The bool is
// false when the repository has no tag at all.
func (g *GitCLI) lastTag(ctx context.Context) (string, bool, error) {
	out, err := g.run.run(ctx, g.root, "describe", "--tags", "--abbrev=0")
	if err != nil {
		// A repository without any tag is a normal state, not a failure.
		if strings.Contains(err.Error(), "cannot describe") ||
			strings.Contains(err.Error(), "No names found") {
			return "", false, nil
		}
		return "", false, fmt.Errorf("describing tags in %s: %w", g.root, err)
	}

	tag := strings.TrimSpace(out)
	return tag, tag != "", nil
}
