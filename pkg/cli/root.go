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
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/pepbump/pepbump/pkg/errors"
	"github.com/pepbump/pepbump/pkg/logging"
	"github.com/pepbump/pepbump/pkg/modifier"
	"github.com/pepbump/pepbump/pkg/policy"
	"github.com/pepbump/pepbump/pkg/project"
	"github.com/pepbump/pepbump/pkg/vcs"
	ver "github.com/pepbump/pepbump/pkg/version"
)

const (
	name           = "pepbump"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd assembles the full command tree.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		EnableShellCompletion: true,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Usage:                 "Bump PEP 440 versions of Python projects",
		Description: `pepbump reads the current version from pyproject.toml (or the dynamic
version source it points at), applies the requested increment following
the PEP 440 grammar, and writes the result back, touching only the quoted
version string.

# Version Sources

The version is read from the [project] table of pyproject.toml. When the
project declares "version" in project.dynamic, the lookup falls back to
the __version__ assignment in the file named by version_source_file
(configured under [tool.pepbump] or via PEPBUMP_VERSION_SOURCE_FILE).

# Commit and Tag Hooks

Every bump command can commit the changed file (--commit) and tag the
repository with the new version (--tag). Tagging requires a clean working
tree unless allow_dirty is configured. The commit message template accepts
{from} and {to} placeholders.

# Examples

Bump the minor version:
  pepbump minor

Preview a major bump without writing anything:
  pepbump major --dry-run

Move 2.1.0a2 to the next beta and commit the change:
  pepbump pre-release --pre beta --commit

Let the commit history since the last tag pick the increment:
  pepbump auto`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.LevelEnvVar),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: commands(modifier.DefaultRegistry()),
	}
}

// commands assembles the command set against one action registry, built
// once here and handed to each command by value.
func commands(reg modifier.Registry) []*cli.Command {
	return []*cli.Command{
		majorCmd(reg),
		minorCmd(reg),
		microCmd(reg),
		preReleaseCmd(reg),
		noPreReleaseCmd(reg),
		resetLocalsCmd(reg),
		epochCmd(reg),
		devCmd(reg),
		postCmd(reg),
		preMajorCmd(reg),
		preMinorCmd(reg),
		prePatchCmd(reg),
		poetryPreReleaseCmd(reg),
		toCmd(),
		tagCmd(),
		suggestCmd(),
		autoCmd(),
	}
}

// Execute runs the CLI. It is called once from main and owns process exit.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		reportError(err)
		stop()
		os.Exit(1)
	}
}

// reportError logs the failure with its structured attributes and prints a
// one-line summary for non-JSON consumers.
func reportError(err error) {
	serr := structured(err)
	slog.Error(serr.Message, serr.LogAttrs()...)
	fmt.Fprintf(os.Stderr, "%s: %s\n", name, serr.Error())
}

// structured normalizes any error into a StructuredError, classifying known
// sentinels into their boundary codes.
func structured(err error) *errors.StructuredError {
	var serr *errors.StructuredError
	if stderrors.As(err, &serr) {
		return serr
	}
	return errors.Wrap(classify(err), "command failed", err)
}

func classify(err error) errors.ErrorCode {
	switch {
	case stderrors.Is(err, ver.ErrInvalidVersion):
		return errors.ErrCodeInvalidVersion
	case stderrors.Is(err, modifier.ErrPreviewMismatch),
		stderrors.Is(err, modifier.ErrNotFinal):
		return errors.ErrCodeInvalidTransition
	case stderrors.Is(err, project.ErrNoVersionSource),
		stderrors.Is(err, project.ErrVersionNotFound):
		return errors.ErrCodeNoVersionSource
	case stderrors.Is(err, vcs.ErrNoRepository),
		stderrors.Is(err, vcs.ErrNoTag):
		return errors.ErrCodeVcs
	case stderrors.Is(err, policy.ErrUnsupportedRating):
		return errors.ErrCodeUnsupported
	default:
		return errors.ErrCodeInternal
	}
}
