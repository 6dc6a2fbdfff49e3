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

	conv "github.com/pepbump/pepbump/pkg/commit"
	"github.com/pepbump/pepbump/pkg/errors"
)

func tagCmd() *cli.Command {
	return &cli.Command{
		Name:                  "tag",
		EnableShellCompletion: true,
		Usage:                 "Tag the repository with the current project version",
		Description: `Create a git tag named after the current project version, prefixed
with "v" unless --no-prepend-v is given or tag_add_prefix is disabled.
A dirty working tree is refused unless --dirty or allow_dirty permits it.

# Examples

  pepbump tag
  pepbump tag --dirty --no-prepend-v`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dirty",
				Usage: "Allow tagging a working tree with uncommitted changes",
			},
			&cli.BoolFlag{
				Name:  "no-prepend-v",
				Usage: "Name the tag after the bare version, without the v prefix",
			},
			projectFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseBumpOptions(cmd)
			if err != nil {
				return err
			}

			current, err := opts.store.CurrentVersion()
			if err != nil {
				return err
			}

			repo, err := openRepository(opts.root, conv.NewConventionalParser())
			if err != nil {
				return errors.Wrap(errors.ErrCodeVcs, "opening repository", err)
			}

			prependV := opts.cfg.TagAddPrefix && !cmd.Bool("no-prepend-v")
			allowDirty := opts.cfg.AllowDirty || cmd.Bool("dirty")
			return createTag(ctx, repo, current, prependV, allowDirty)
		},
	}
}
