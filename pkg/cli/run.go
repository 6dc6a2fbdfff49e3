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

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	conv "github.com/pepbump/pepbump/pkg/commit"
	"github.com/pepbump/pepbump/pkg/config"
	"github.com/pepbump/pepbump/pkg/errors"
	"github.com/pepbump/pepbump/pkg/modifier"
	"github.com/pepbump/pepbump/pkg/project"
	"github.com/pepbump/pepbump/pkg/vcs"
	ver "github.com/pepbump/pepbump/pkg/version"
)

// openRepository is swapped out in tests.
var openRepository = func(path string, parser conv.Parser) (vcs.Provider, error) {
	return vcs.OpenGit(path, parser)
}

// resolveModifier builds the named action from the registry. A miss is a
// wiring bug, not user input.
func resolveModifier(reg modifier.Registry, action string, opts modifier.Options) (modifier.Modifier, error) {
	mod, ok := reg.New(action, opts)
	if !ok {
		return nil, errors.New(errors.ErrCodeInternal,
			fmt.Sprintf("no modifier registered for action %q", action))
	}
	return mod, nil
}

// projectFlag locates the project root. Flag instances carry parse state,
// so every command gets its own.
func projectFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "Project root directory containing pyproject.toml",
		Sources: cli.EnvVars("PEPBUMP_PROJECT"),
		Value:   ".",
	}
}

// bumpFlags returns the shared bump flag set plus any command-specific ones.
func bumpFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "Print the resulting version without writing anything",
		},
		&cli.BoolFlag{
			Name:    "commit",
			Aliases: []string{"c"},
			Usage:   "Commit the changed version file after bumping",
		},
		&cli.StringFlag{
			Name:    "message",
			Aliases: []string{"m"},
			Usage:   "Commit message template with {from} and {to} placeholders",
		},
		&cli.BoolFlag{
			Name:    "tag",
			Aliases: []string{"t"},
			Usage:   "Tag the repository with the new version after bumping",
		},
		projectFlag(),
	}
	return append(flags, extra...)
}

// bumpOptions carries everything a bump needs once flags and configuration
// are folded together. Flags win over configuration files.
type bumpOptions struct {
	root   string
	dryRun bool
	cfg    config.Config
	store  project.Store
	out    io.Writer
}

// parseBumpOptions resolves the project root, loads the layered
// configuration, applies flag overrides, and opens the version store.
func parseBumpOptions(cmd *cli.Command) (*bumpOptions, error) {
	root, err := filepath.Abs(cmd.String("project"))
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, "loading configuration", err)
	}

	if msg := cmd.String("message"); msg != "" {
		cfg.CommitMessageTemplate = msg
	}
	if cmd.Bool("commit") {
		cfg.PerformCommit = true
	}
	if cmd.Bool("tag") {
		cfg.AutoTag = true
	}

	store, err := project.OpenStore(root, cfg.VersionSourceFile)
	if err != nil {
		return nil, err
	}

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}

	return &bumpOptions{
		root:   root,
		dryRun: cmd.Bool("dry-run"),
		cfg:    cfg,
		store:  store,
		out:    out,
	}, nil
}

// runBump is the shared action body of every bump command: parse options,
// apply the modifier, persist, then run the commit and tag hooks.
func runBump(ctx context.Context, cmd *cli.Command, mod modifier.Modifier) error {
	opts, err := parseBumpOptions(cmd)
	if err != nil {
		return err
	}
	return opts.run(ctx, mod)
}

func (o *bumpOptions) run(ctx context.Context, mod modifier.Modifier) error {
	current, err := o.store.CurrentVersion()
	if err != nil {
		return err
	}

	next, err := mod.Apply(current)
	if err != nil {
		return err
	}

	if o.dryRun {
		slog.Info("dry run, nothing written", "from", current.String(), "to", next.String())
		fmt.Fprintln(o.out, next.String())
		return nil
	}

	if err := o.store.SaveVersion(next); err != nil {
		return err
	}
	slog.Info("version bumped",
		"from", current.String(),
		"to", next.String(),
		"file", o.store.Path())
	fmt.Fprintln(o.out, next.String())

	if !o.cfg.PerformCommit && !o.cfg.AutoTag {
		return nil
	}

	repo, err := openRepository(o.root, conv.NewConventionalParser())
	if err != nil {
		return errors.Wrap(errors.ErrCodeVcs, "opening repository", err)
	}

	if o.cfg.PerformCommit {
		if err := o.checkIn(ctx, repo, current.String(), next.String()); err != nil {
			return err
		}
	}
	if o.cfg.AutoTag {
		if err := createTag(ctx, repo, next, o.cfg.TagAddPrefix, o.cfg.AllowDirty); err != nil {
			return err
		}
	}
	return nil
}

func (o *bumpOptions) checkIn(ctx context.Context, repo vcs.Provider, from, to string) error {
	if hunks, err := o.store.ChangeHunks(); err == nil && len(hunks) > 0 {
		slog.Debug("pending change", "hunks", hunks)
	}

	message := o.cfg.CommitMessage(from, to)
	if err := repo.CheckIn(ctx, message, o.store.Path()); err != nil {
		return errors.Wrap(errors.ErrCodeVcs, "committing version change", err)
	}
	slog.Info("committed version change", "file", o.store.Path())
	return nil
}

// createTag tags HEAD with the version after verifying the working tree is
// clean, unless dirty trees are explicitly allowed.
func createTag(ctx context.Context, repo vcs.Provider, v ver.Version, prependV, allowDirty bool) error {
	if !allowDirty {
		clean, err := repo.IsClean(ctx)
		if err != nil {
			return errors.Wrap(errors.ErrCodeVcs, "checking working tree", err)
		}
		if !clean {
			return errors.New(errors.ErrCodeDirtyRepository,
				"refusing to tag a dirty working tree (set allow_dirty or pass --dirty)")
		}
	}

	if err := repo.CreateTag(ctx, v, prependV); err != nil {
		return errors.Wrap(errors.ErrCodeVcs, "creating tag", err)
	}
	slog.Info("created tag", "version", v.String(), "prefixed", prependV)
	return nil
}
