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

package commit

import (
	"sync"
)

// Statistics aggregates a sequence of commits. TypeCount only carries
// the types that actually occurred.
type Statistics struct {
	TypeCount               map[Type]int
	ContainsBreakingChanges bool
}

// History is an ordered sequence of commits. Statistics are computed on
// first request and cached for the lifetime of the history.
type History struct {
	commits []*Commit

	tally sync.Once
	stats Statistics
}

// NewHistory returns a history over the given commits.
func NewHistory(commits ...*Commit) *History {
	return &History{commits: commits}
}

// NewHistoryFromHeaders builds a history by classifying each header line
// with parser. A nil parser falls back to the default conventional-commit
// parser.
func NewHistoryFromHeaders(headers []string, parser Parser) *History {
	commits := make([]*Commit, 0, len(headers))
	for _, h := range headers {
		commits = append(commits, New(h, parser))
	}
	return NewHistory(commits...)
}

// Commits returns the commits in order.
func (h *History) Commits() []*Commit {
	return h.commits
}

// Len returns the number of commits.
func (h *History) Len() int {
	return len(h.commits)
}

// Stats tallies the commit types and breaking-change markers in a single
// pass over all commits.
func (h *History) Stats() Statistics {
	h.tally.Do(func() {
		counts := make(map[Type]int)
		breaking := false
		for _, c := range h.commits {
			counts[c.Type()]++
			breaking = breaking || c.IsBreakingChange()
		}
		h.stats = Statistics{
			TypeCount:               counts,
			ContainsBreakingChanges: breaking,
		}
	})
	return h.stats
}
