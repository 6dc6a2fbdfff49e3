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
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pepbump/pepbump/pkg/commit"
)

// Inspection bundles the repository facts the bump policy consumes.
type Inspection struct {
	Clean   bool
	History *commit.History
}

// Inspect gathers the working tree state and the commit history since the
// last tag. The two git queries are independent and run concurrently; the
// first failure cancels the other.
func Inspect(ctx context.Context, p Provider) (Inspection, error) {
	var result Inspection

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		clean, err := p.IsClean(ctx)
		result.Clean = clean
		return err
	})
	g.Go(func() error {
		history, err := p.History(ctx)
		result.History = history
		return err
	})

	if err := g.Wait(); err != nil {
		return Inspection{}, err
	}
	return result, nil
}
