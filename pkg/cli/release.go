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

	"github.com/urfave/cli/v3"

	"github.com/pepbump/pepbump/pkg/modifier"
)

// noRemoveFlag opts out of dropping the pre-release, post, dev, and local
// segments when a release component is incremented.
func noRemoveFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "no-remove",
		Usage: "Keep pre-release, post, dev, and local segments on the result",
	}
}

// releaseAction resolves one of the release-component actions with the
// shared --no-remove flag applied.
func releaseAction(reg modifier.Registry, action string) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		mod, err := resolveModifier(reg, action, modifier.Options{RemovePre: !cmd.Bool("no-remove")})
		if err != nil {
			return err
		}
		return runBump(ctx, cmd, mod)
	}
}

func majorCmd(reg modifier.Registry) *cli.Command {
	return &cli.Command{
		Name:                  "major",
		EnableShellCompletion: true,
		Usage:                 "Increment the major version",
		Description: `Increment the major component and zero minor and micro. Pre-release,
post, dev, and local segments are dropped unless --no-remove is given.

# Examples

  1.2.3       -> 2.0.0
  1.2.3a4     -> 2.0.0
  1.2.3+local -> 2.0.0`,
		Flags:  bumpFlags(noRemoveFlag()),
		Action: releaseAction(reg, "major"),
	}
}

func minorCmd(reg modifier.Registry) *cli.Command {
	return &cli.Command{
		Name:                  "minor",
		EnableShellCompletion: true,
		Usage:                 "Increment the minor version",
		Description: `Increment the minor component and zero micro. Pre-release, post, dev,
and local segments are dropped unless --no-remove is given.

# Examples

  1.2.3    -> 1.3.0
  1.2.3rc1 -> 1.3.0`,
		Flags:  bumpFlags(noRemoveFlag()),
		Action: releaseAction(reg, "minor"),
	}
}

func microCmd(reg modifier.Registry) *cli.Command {
	return &cli.Command{
		Name:                  "micro",
		Aliases:               []string{"patch"},
		EnableShellCompletion: true,
		Usage:                 "Increment the micro (patch) version",
		Description: `Increment the micro component. Pre-release, post, dev, and local
segments are dropped unless --no-remove is given.

# Examples

  1.2.3      -> 1.2.4
  1.2.3.dev1 -> 1.2.4`,
		Flags:  bumpFlags(noRemoveFlag()),
		Action: releaseAction(reg, "micro"),
	}
}
