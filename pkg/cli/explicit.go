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

	"github.com/pepbump/pepbump/pkg/errors"
	"github.com/pepbump/pepbump/pkg/modifier"
	ver "github.com/pepbump/pepbump/pkg/version"
)

func toCmd() *cli.Command {
	return &cli.Command{
		Name:                  "to",
		EnableShellCompletion: true,
		Usage:                 "Set the version to an explicit value",
		ArgsUsage:             "<version>",
		Description: `Set the project version to the given PEP 440 version. The value is
normalized before it is written. Setting a version that sorts below the
current one is refused unless --force is given.

# Examples

  pepbump to 2.0.0
  pepbump to 1.0.0rc1 --force`,
		Flags: bumpFlags(
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Allow setting a version below the current one",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw := cmd.Args().First()
			if raw == "" {
				return fmt.Errorf("missing required argument: <version>")
			}

			target, err := ver.Parse(raw)
			if err != nil {
				return err
			}

			opts, err := parseBumpOptions(cmd)
			if err != nil {
				return err
			}

			current, err := opts.store.CurrentVersion()
			if err != nil {
				return err
			}

			if target.Less(current) && !cmd.Bool("force") {
				slog.Warn("target version sorts below current version",
					"current", current.String(),
					"target", target.String())
				return errors.New(errors.ErrCodeInvalidTransition,
					fmt.Sprintf("version %s sorts below current %s (use --force to override)",
						target, current))
			}

			return opts.run(ctx, modifier.SetExplicit{Target: target})
		},
	}
}
