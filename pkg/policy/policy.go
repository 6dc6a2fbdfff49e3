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

package policy

import (
	"errors"
	"fmt"

	"github.com/pepbump/pepbump/pkg/commit"
	"github.com/pepbump/pepbump/pkg/modifier"
	"github.com/pepbump/pepbump/pkg/version"
)

// ErrUnsupportedRating indicates the policy resolved to a rating that has
// no modifier behind it yet.
var ErrUnsupportedRating = errors.New("rating has no modifier")

// UnsupportedRatingError carries the rating that could not be dispatched.
type UnsupportedRatingError struct {
	Rating Rating
}

// Error implements error.
func (e *UnsupportedRatingError) Error() string {
	return fmt.Sprintf("no version modifier implements the %s rating", e.Rating)
}

// Is reports whether target is ErrUnsupportedRating.
func (e *UnsupportedRatingError) Is(target error) bool {
	return target == ErrUnsupportedRating
}

// Policy selects the version modifier a commit history warrants.
type Policy interface {
	// Modifier maps commit statistics and the repository dirty state to
	// the modifier to apply to current.
	Modifier(stats commit.Statistics, isCleanRepository bool, current version.Version) (modifier.Modifier, error)
}

// TypeSet is a membership set over commit types.
type TypeSet map[commit.Type]bool

// NewTypeSet builds a set from the given types.
func NewTypeSet(types ...commit.Type) TypeSet {
	s := make(TypeSet, len(types))
	for _, t := range types {
		s[t] = true
	}
	return s
}

// SetPolicy is a rating-based policy configured through per-rating commit
// type sets. Each observed commit type is rated by the first set that
// contains it, checked from the highest rating down; types in no set rate
// as noop. The highest rating across the history wins, with breaking
// changes folding in a major rating and a dirty repository a local one.
type SetPolicy struct {
	EpochIncrements TypeSet
	MajorIncrements TypeSet
	MinorIncrements TypeSet
	MicroIncrements TypeSet
	PostIncrements  TypeSet
	DevIncrements   TypeSet
	LocalIncrements TypeSet
}

// Semantic returns the default policy: features and behavior-preserving
// rework rate minor, fixes and routine upkeep rate micro, build plumbing
// rates post, and unclassifiable commits rate development. Nothing rates
// epoch or major on its own; only breaking changes reach major.
func Semantic() *SetPolicy {
	return &SetPolicy{
		EpochIncrements: NewTypeSet(),
		MajorIncrements: NewTypeSet(),
		MinorIncrements: NewTypeSet(
			commit.TypeFeature,
			commit.TypePerformance,
			commit.TypeRefactoring,
		),
		MicroIncrements: NewTypeSet(
			commit.TypeBugfix,
			commit.TypeChore,
			commit.TypeDocumentation,
		),
		PostIncrements: NewTypeSet(
			commit.TypeBuild,
			commit.TypeCodeStyle,
			commit.TypeContinuousIntegration,
			commit.TypeTest,
		),
		DevIncrements:   NewTypeSet(commit.TypeUndefined),
		LocalIncrements: NewTypeSet(),
	}
}

func (p *SetPolicy) rate(t commit.Type) Rating {
	switch {
	case p.EpochIncrements[t]:
		return RatingEpoch
	case p.MajorIncrements[t]:
		return RatingMajor
	case p.MinorIncrements[t]:
		return RatingMinor
	case p.MicroIncrements[t]:
		return RatingMicro
	case p.PostIncrements[t]:
		return RatingPost
	case p.DevIncrements[t]:
		return RatingDevelopment
	case p.LocalIncrements[t]:
		return RatingLocal
	default:
		return RatingNoop
	}
}

func (p *SetPolicy) maxRating(stats commit.Statistics, isCleanRepository bool) Rating {
	rating := RatingUndefined
	for t := range stats.TypeCount {
		rating = max(rating, p.rate(t))
	}
	if stats.ContainsBreakingChanges {
		rating = max(rating, RatingMajor)
	}
	if !isCleanRepository {
		rating = max(rating, RatingLocal)
	}
	return rating
}

// Modifier implements Policy. An empty history maps to a noop; a rating
// that resolves to local is not supported and yields an
// UnsupportedRatingError.
func (p *SetPolicy) Modifier(stats commit.Statistics, isCleanRepository bool, current version.Version) (modifier.Modifier, error) {
	if len(stats.TypeCount) == 0 {
		return modifier.Noop{}, nil
	}

	rating := p.maxRating(stats, isCleanRepository)

	switch {
	case rating >= RatingEpoch:
		return modifier.EpochIncrement{RemovePre: true, ResetVersion: true}, nil
	case rating >= RatingMajor:
		return modifier.MajorIncrement{RemovePre: true}, nil
	case rating >= RatingMinor:
		return minorAwareModifier(current), nil
	case rating >= RatingMicro:
		return microAwareModifier(current), nil
	case rating >= RatingPreRelease:
		return modifier.PreRelease{}, nil
	case rating >= RatingPost:
		return modifier.PostIncrement{}, nil
	case rating >= RatingDevelopment:
		return modifier.DevIncrement{}, nil
	case rating >= RatingLocal:
		return nil, &UnsupportedRatingError{Rating: rating}
	default:
		return modifier.Noop{}, nil
	}
}

// minorAwareModifier keeps minor-rated changes inside an ongoing
// pre-release cycle: the pre-release kind shifts one stage forward
// (alpha turns into beta) and its number is bumped instead of the
// release tuple. Development versions graduate by shedding their
// non-semantic parts. Final versions take an ordinary minor bump.
func minorAwareModifier(current version.Version) modifier.Modifier {
	if !current.IsPreRelease() {
		return modifier.MinorIncrement{RemovePre: true}
	}
	if current.IsDevelopmentVersion() {
		return modifier.ResetNonSemanticParts{}
	}

	kind := shiftPreviewKind(previewKind(current))
	m, _ := modifier.PreviewIncrementFor(kind, false)
	return m
}

// microAwareModifier mirrors minorAwareModifier without shifting the
// pre-release kind.
func microAwareModifier(current version.Version) modifier.Modifier {
	if !current.IsPreRelease() {
		return modifier.MicroIncrement{RemovePre: true}
	}
	if current.IsDevelopmentVersion() {
		return modifier.ResetNonSemanticParts{}
	}

	m, _ := modifier.PreviewIncrementFor(previewKind(current), false)
	return m
}

func previewKind(v version.Version) version.PreviewKind {
	if v.Preview != nil {
		return v.Preview.Kind
	}
	return version.PreviewAlpha
}

func shiftPreviewKind(kind version.PreviewKind) version.PreviewKind {
	if kind == version.PreviewAlpha {
		return version.PreviewBeta
	}
	return kind
}
