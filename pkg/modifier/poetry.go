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

// preRelease bumps the release component at index and marks the result
// as a fresh alpha, the way poetry's premajor, preminor, and prepatch
// commands behave. The current version must be final.
func preRelease(current version.Version, index int) (version.Version, error) {
	if !current.IsFinal() {
		return version.Version{}, &NotFinalError{Current: current}
	}

	release := paddedRelease(current)
	release[index]++
	for i := index + 1; i < len(release); i++ {
		release[i] = 0
	}

	return version.Version{
		Epoch:   current.Epoch,
		Release: release,
		Preview: &version.Segment{Kind: version.PreviewAlpha, Number: 0},
	}, nil
}

// PreMajor bumps the major component of a final version and starts a new
// alpha cycle at a0.
type PreMajor struct{}

// Apply implements Modifier.
func (PreMajor) Apply(current version.Version) (version.Version, error) {
	return preRelease(current, 0)
}

// PreMinor bumps the minor component of a final version and starts a new
// alpha cycle at a0.
type PreMinor struct{}

// Apply implements Modifier.
func (PreMinor) Apply(current version.Version) (version.Version, error) {
	return preRelease(current, 1)
}

// PrePatch bumps the micro component of a final version and starts a new
// alpha cycle at a0.
type PrePatch struct{}

// Apply implements Modifier.
func (PrePatch) Apply(current version.Version) (version.Version, error) {
	return preRelease(current, 2)
}

// PreRelease advances an ongoing pre-release cycle. A version already in
// pre-release keeps its kind and gets the next number. A version without
// a preview part gets micro+1 and a fresh a0.
type PreRelease struct{}

// Apply implements Modifier.
func (PreRelease) Apply(current version.Version) (version.Version, error) {
	release := paddedRelease(current)
	preview := &version.Segment{Kind: version.PreviewAlpha, Number: 0}

	if current.Preview != nil {
		preview = &version.Segment{
			Kind:   current.Preview.Kind,
			Number: current.Preview.Number + 1,
		}
	} else {
		release[2]++
	}

	return version.Version{
		Epoch:   current.Epoch,
		Release: release,
		Preview: preview,
	}, nil
}
