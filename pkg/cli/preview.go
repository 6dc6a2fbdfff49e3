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

	"github.com/urfave/cli/v3"

	"github.com/pepbump/pepbump/pkg/modifier"
)

// previewActions maps the accepted --pre spellings to registry action names.
var previewActions = map[string]string{
	"a":     "alpha",
	"alpha": "alpha",
	"b":     "beta",
	"beta":  "beta",
	"rc":    "rc",
	"c":     "rc",
}

func preReleaseCmd(reg modifier.Registry) *cli.Command {
	return &cli.Command{
		Name:                  "pre-release",
		EnableShellCompletion: true,
		Usage:                 "Increment or start a pre-release segment",
		Description: `Move the version to the next pre-release of the given kind. A version
already carrying the same kind gets its number incremented; a lower kind
moves to number 1 of the new kind. Stepping backwards (for example rc to
alpha) is rejected. A final version starts at number 1, incrementing the
micro component first when --micro is given. Post, dev, and local
segments are dropped from the result.

# Examples

  pepbump pre-release --pre alpha    1.2.3a4 -> 1.2.3a5
  pepbump pre-release --pre beta     1.2.3a4 -> 1.2.3b1
  pepbump pre-release --pre rc       1.2.3b2 -> 1.2.3rc1
  pepbump pre-release --pre alpha --micro
                                     1.2.3   -> 1.2.4a1`,
		Flags: bumpFlags(
			&cli.StringFlag{
				Name:     "pre",
				Usage:    "Pre-release kind (alpha, beta, rc, c)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "micro",
				Usage: "Increment the micro component when starting a fresh pre-release",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			action, ok := previewActions[cmd.String("pre")]
			if !ok {
				return fmt.Errorf("unknown pre-release kind: %q (supported: alpha, beta, rc, c)",
					cmd.String("pre"))
			}

			mod, err := resolveModifier(reg, action,
				modifier.Options{IncrementMicro: cmd.Bool("micro")})
			if err != nil {
				return err
			}
			return runBump(ctx, cmd, mod)
		},
	}
}

func noPreReleaseCmd(reg modifier.Registry) *cli.Command {
	return &cli.Command{
		Name:                  "no-pre-release",
		EnableShellCompletion: true,
		Usage:                 "Finalize the version by dropping every non-release segment",
		Description: `Keep the release triple and drop pre-release, post, dev, and local
segments.

# Examples

  1.2.3rc2       -> 1.2.3
  1.2.3a1.dev2   -> 1.2.3
  1.2.3+ubuntu.1 -> 1.2.3`,
		Flags: bumpFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			mod, err := resolveModifier(reg, "no-pre-release", modifier.Options{})
			if err != nil {
				return err
			}
			return runBump(ctx, cmd, mod)
		},
	}
}

func resetLocalsCmd(reg modifier.Registry) *cli.Command {
	return &cli.Command{
		Name:                  "reset-locals",
		EnableShellCompletion: true,
		Usage:                 "Drop the post, dev, and local segments",
		Description: `Keep the release triple and any pre-release segment, and drop post,
dev, and local segments.

# Examples

  1.2.3a1.post2+local -> 1.2.3a1
  1.2.3.dev4          -> 1.2.3`,
		Flags: bumpFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			mod, err := resolveModifier(reg, "reset-locals", modifier.Options{})
			if err != nil {
				return err
			}
			return runBump(ctx, cmd, mod)
		},
	}
}

func epochCmd(reg modifier.Registry) *cli.Command {
	return &cli.Command{
		Name:                  "epoch",
		EnableShellCompletion: true,
		Usage:                 "Increment the version epoch",
		Description: `Increment the PEP 440 epoch. By default the release triple is kept and
pre-release, post, dev, and local segments are dropped. With --reset the
release restarts at 1.0.0. With --no-remove every segment is kept.

# Examples

  pepbump epoch            1.2.3a1 -> 1!1.2.3
  pepbump epoch --reset    1.2.3   -> 1!1.0.0`,
		Flags: bumpFlags(
			&cli.BoolFlag{
				Name:  "reset",
				Usage: "Restart the release at 1.0.0",
			},
			noRemoveFlag(),
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			mod, err := resolveModifier(reg, "epoch", modifier.Options{
				RemovePre:    !cmd.Bool("no-remove"),
				ResetVersion: cmd.Bool("reset"),
			})
			if err != nil {
				return err
			}
			return runBump(ctx, cmd, mod)
		},
	}
}

func devCmd(reg modifier.Registry) *cli.Command {
	return &cli.Command{
		Name:                  "dev",
		EnableShellCompletion: true,
		Usage:                 "Increment the dev segment",
		Description: `Increment the dev number when one exists. On a pre-release without a
dev segment the pre-release number is incremented instead. On a final
version the micro component is incremented and a .dev1 segment started.

# Examples

  1.2.3.dev4 -> 1.2.3.dev5
  1.2.3a1    -> 1.2.3a2
  1.2.3      -> 1.2.4.dev1`,
		Flags: bumpFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			mod, err := resolveModifier(reg, "dev", modifier.Options{})
			if err != nil {
				return err
			}
			return runBump(ctx, cmd, mod)
		},
	}
}

func postCmd(reg modifier.Registry) *cli.Command {
	return &cli.Command{
		Name:                  "post",
		EnableShellCompletion: true,
		Usage:                 "Increment the post segment",
		Description: `Increment the post number when one exists (dropping any dev segment),
or start at .post1 keeping everything else.

# Examples

  1.2.3       -> 1.2.3.post1
  1.2.3.post1 -> 1.2.3.post2`,
		Flags: bumpFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			mod, err := resolveModifier(reg, "post", modifier.Options{})
			if err != nil {
				return err
			}
			return runBump(ctx, cmd, mod)
		},
	}
}
