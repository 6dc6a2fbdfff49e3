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

// The poetry-style commands mirror the "poetry version" increment rules:
// premajor/preminor/prepatch require a final version and open the next
// alpha of the bumped component; prerelease advances whatever pre-release
// is in flight.

// poetryAction resolves one of the parameterless poetry-style actions.
func poetryAction(reg modifier.Registry, action string) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		mod, err := resolveModifier(reg, action, modifier.Options{})
		if err != nil {
			return err
		}
		return runBump(ctx, cmd, mod)
	}
}

func preMajorCmd(reg modifier.Registry) *cli.Command {
	return &cli.Command{
		Name:                  "premajor",
		EnableShellCompletion: true,
		Usage:                 "Open the next major version as an alpha pre-release",
		Description: `Require a final version, increment major, and start an alpha
pre-release at number 0.

# Examples

  1.2.3 -> 2.0.0a0`,
		Flags:  bumpFlags(),
		Action: poetryAction(reg, "premajor"),
	}
}

func preMinorCmd(reg modifier.Registry) *cli.Command {
	return &cli.Command{
		Name:                  "preminor",
		EnableShellCompletion: true,
		Usage:                 "Open the next minor version as an alpha pre-release",
		Description: `Require a final version, increment minor, and start an alpha
pre-release at number 0.

# Examples

  1.2.3 -> 1.3.0a0`,
		Flags:  bumpFlags(),
		Action: poetryAction(reg, "preminor"),
	}
}

func prePatchCmd(reg modifier.Registry) *cli.Command {
	return &cli.Command{
		Name:                  "prepatch",
		EnableShellCompletion: true,
		Usage:                 "Open the next micro version as an alpha pre-release",
		Description: `Require a final version, increment micro, and start an alpha
pre-release at number 0.

# Examples

  1.2.3 -> 1.2.4a0`,
		Flags:  bumpFlags(),
		Action: poetryAction(reg, "prepatch"),
	}
}

func poetryPreReleaseCmd(reg modifier.Registry) *cli.Command {
	return &cli.Command{
		Name:                  "prerelease",
		EnableShellCompletion: true,
		Usage:                 "Advance the pre-release in flight, or open one",
		Description: `Increment the number of the current pre-release, keeping its kind. On
a final version the micro component is incremented and an alpha
pre-release started at number 0.

# Examples

  1.2.3a4 -> 1.2.3a5
  1.2.3   -> 1.2.4a0`,
		Flags:  bumpFlags(),
		Action: poetryAction(reg, "prerelease"),
	}
}
