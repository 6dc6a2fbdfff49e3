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
	"log/slog"

	"github.com/urfave/cli/v3"

	conv "github.com/pepbump/pepbump/pkg/commit"
	"github.com/pepbump/pepbump/pkg/errors"
	"github.com/pepbump/pepbump/pkg/modifier"
	"github.com/pepbump/pepbump/pkg/policy"
	"github.com/pepbump/pepbump/pkg/vcs"
)

// selectModifier inspects the repository and lets the semantic policy pick
// the increment for the commit history since the last tag.
func selectModifier(ctx context.Context, opts *bumpOptions) (modifier.Modifier, error) {
	repo, err := openRepository(opts.root, conv.NewConventionalParser())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeVcs, "opening repository", err)
	}

	inspection, err := vcs.Inspect(ctx, repo)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeVcs, "inspecting repository", err)
	}

	current, err := opts.store.CurrentVersion()
	if err != nil {
		return nil, err
	}

	stats := inspection.History.Stats()
	slog.Debug("commit history rated",
		"commits", inspection.History.Len(),
		"breaking", stats.ContainsBreakingChanges,
		"clean", inspection.Clean)

	return policy.Semantic().Modifier(stats, inspection.Clean, current)
}

func suggestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "suggest",
		EnableShellCompletion: true,
		Usage:                 "Print the next version suggested by the commit history",
		Description: `Read the conventional-commit history since the most recent tag, rate
it, and print the version the policy would bump to. Nothing is written.

Breaking changes suggest a major bump; feat, perf, and refactor commits a
minor bump; fix, chore, and docs commits a micro bump; build, style, ci,
and test commits a post release. An otherwise unrated history on a dirty
working tree is not suggestible and fails.

# Examples

  pepbump suggest
  pepbump suggest --project ./service`,
		Flags: []cli.Flag{projectFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseBumpOptions(cmd)
			if err != nil {
				return err
			}

			mod, err := selectModifier(ctx, opts)
			if err != nil {
				return err
			}

			current, err := opts.store.CurrentVersion()
			if err != nil {
				return err
			}
			next, err := mod.Apply(current)
			if err != nil {
				return err
			}

			fmt.Fprintln(opts.out, next.String())
			return nil
		},
	}
}

func autoCmd() *cli.Command {
	return &cli.Command{
		Name:                  "auto",
		EnableShellCompletion: true,
		Usage:                 "Bump to the version suggested by the commit history",
		Description: `Rate the conventional-commit history since the most recent tag and
apply the increment the policy selects, exactly as suggest would print
it. The usual commit and tag hooks apply.

# Examples

  pepbump auto
  pepbump auto --commit --tag`,
		Flags: bumpFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseBumpOptions(cmd)
			if err != nil {
				return err
			}

			mod, err := selectModifier(ctx, opts)
			if err != nil {
				return err
			}
			return opts.run(ctx, mod)
		},
	}
}
