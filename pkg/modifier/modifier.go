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

package modifier

import (
	"github.com/pepbump/pepbump/pkg/version"
)

// Modifier transforms a version into its successor under one fixed rule.
// Implementations are pure: they never mutate the input and either return
// a complete new version or an error describing why the transition is
// invalid for the current version state.
type Modifier interface {
	// Apply computes the new version from the current one.
	Apply(current version.Version) (version.Version, error)
}

// Noop returns the current version unchanged. The policy layer selects it
// when the commit history contains nothing actionable.
type Noop struct{}

// Apply implements Modifier.
func (Noop) Apply(current version.Version) (version.Version, error) {
	return current, nil
}

// SetExplicit replaces the current version with a fixed target, regardless
// of the current state. It backs the "to" command.
type SetExplicit struct {
	// Target is the version to set.
	Target version.Version
}

// Apply implements Modifier.
func (m SetExplicit) Apply(version.Version) (version.Version, error) {
	return m.Target, nil
}

// intPtr returns a pointer to n. Post and dev segments are modeled as
// optional integers.
func intPtr(n int) *int {
	return &n
}

// paddedRelease returns the release components of v padded to the three
// canonical positions (major, minor, micro).
func paddedRelease(v version.Version) []int {
	t := v.ReleaseTriple()
	return []int{t[0], t[1], t[2]}
}
