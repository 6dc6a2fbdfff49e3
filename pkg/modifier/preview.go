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
	"slices"

	"github.com/pepbump/pepbump/pkg/version"
)

// incrementPreview advances a version towards the given pre-release kind.
// The transition is valid only from no preview at all or from one of the
// allowed prior kinds. Staying on the same kind increments its number,
// moving up from a lower kind restarts the number at 1. Post, dev, and
// local parts do not survive a pre-release bump.
func incrementPreview(current version.Version, kind version.PreviewKind, allowed []version.PreviewKind, incrementMicro bool) (version.Version, error) {
	release := paddedRelease(current)
	number := 1

	switch {
	case current.Preview == nil:
		if incrementMicro {
			release[2]++
		}
	case slices.Contains(allowed, current.Preview.Kind):
		if current.Preview.Kind == kind {
			number = current.Preview.Number + 1
		}
	default:
		return version.Version{}, &PreviewMismatchError{Current: current, Allowed: allowed}
	}

	return version.Version{
		Epoch:   current.Epoch,
		Release: release,
		Preview: &version.Segment{Kind: kind, Number: number},
	}, nil
}

// AlphaIncrement moves a version to its next alpha pre-release. It is only
// valid when the version has no preview yet or is already an alpha.
type AlphaIncrement struct {
	// IncrementMicro bumps the micro component when entering pre-release
	// from a version that has no preview part.
	IncrementMicro bool
}

// Apply implements Modifier.
func (m AlphaIncrement) Apply(current version.Version) (version.Version, error) {
	return incrementPreview(current, version.PreviewAlpha,
		[]version.PreviewKind{version.PreviewAlpha}, m.IncrementMicro)
}

// BetaIncrement moves a version to its next beta pre-release. Valid prior
// states are no preview, alpha, or beta.
type BetaIncrement struct {
	IncrementMicro bool
}

// Apply implements Modifier.
func (m BetaIncrement) Apply(current version.Version) (version.Version, error) {
	return incrementPreview(current, version.PreviewBeta,
		[]version.PreviewKind{version.PreviewAlpha, version.PreviewBeta}, m.IncrementMicro)
}

// ReleaseCandidateIncrement moves a version to its next release candidate.
// Any pre-release stage may advance to a release candidate.
type ReleaseCandidateIncrement struct {
	IncrementMicro bool
}

// Apply implements Modifier.
func (m ReleaseCandidateIncrement) Apply(current version.Version) (version.Version, error) {
	return incrementPreview(current, version.PreviewReleaseCandidate,
		[]version.PreviewKind{version.PreviewAlpha, version.PreviewBeta, version.PreviewReleaseCandidate},
		m.IncrementMicro)
}

// PreviewIncrementFor returns the pre-release modifier matching kind.
func PreviewIncrementFor(kind version.PreviewKind, incrementMicro bool) (Modifier, bool) {
	switch kind {
	case version.PreviewAlpha:
		return AlphaIncrement{IncrementMicro: incrementMicro}, true
	case version.PreviewBeta:
		return BetaIncrement{IncrementMicro: incrementMicro}, true
	case version.PreviewReleaseCandidate:
		return ReleaseCandidateIncrement{IncrementMicro: incrementMicro}, true
	default:
		return nil, false
	}
}

// DevIncrement advances the development marker. A version that already has
// a dev part gets its number bumped. A pre-release without a dev part gets
// its preview number bumped instead. Anything else gets micro+1 together
// with a fresh dev1, dropping any stale post part.
type DevIncrement struct{}

// Apply implements Modifier.
func (DevIncrement) Apply(current version.Version) (version.Version, error) {
	next := current
	next.Release = paddedRelease(current)

	switch {
	case current.Dev != nil:
		next.Dev = intPtr(*current.Dev + 1)
	case current.Preview != nil:
		next.Preview = &version.Segment{
			Kind:   current.Preview.Kind,
			Number: current.Preview.Number + 1,
		}
	default:
		next.Release[2]++
		next.Dev = intPtr(1)
		next.Post = nil
	}

	return next, nil
}

// PostIncrement advances the post marker. Bumping an existing post part
// supersedes any dev part; attaching a first post part leaves the rest of
// the version untouched.
type PostIncrement struct{}

// Apply implements Modifier.
func (PostIncrement) Apply(current version.Version) (version.Version, error) {
	next := current
	next.Release = paddedRelease(current)

	if current.Post != nil {
		next.Post = intPtr(*current.Post + 1)
		next.Dev = nil
		return next, nil
	}

	next.Post = intPtr(1)
	return next, nil
}
