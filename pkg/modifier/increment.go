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

// incrementRelease bumps the release component at index and zeroes every
// component after it. RemovePre controls whether the non-final parts
// (preview, post, dev, local) are dropped or carried over unchanged.
func incrementRelease(current version.Version, index int, removePre bool) version.Version {
	release := paddedRelease(current)
	release[index]++
	for i := index + 1; i < len(release); i++ {
		release[i] = 0
	}

	next := version.Version{
		Epoch:   current.Epoch,
		Release: release,
	}
	if !removePre {
		next.Preview = current.Preview
		next.Post = current.Post
		next.Dev = current.Dev
		next.Local = current.Local
	}

	return next
}

// MajorIncrement bumps the major release component and zeroes minor and
// micro.
type MajorIncrement struct {
	// RemovePre drops preview, post, dev, and local parts from the result.
	RemovePre bool
}

// Apply implements Modifier.
func (m MajorIncrement) Apply(current version.Version) (version.Version, error) {
	return incrementRelease(current, 0, m.RemovePre), nil
}

// MinorIncrement bumps the minor release component and zeroes micro.
type MinorIncrement struct {
	RemovePre bool
}

// Apply implements Modifier.
func (m MinorIncrement) Apply(current version.Version) (version.Version, error) {
	return incrementRelease(current, 1, m.RemovePre), nil
}

// MicroIncrement bumps the micro release component. The "patch" command
// is an alias for this modifier.
type MicroIncrement struct {
	RemovePre bool
}

// Apply implements Modifier.
func (m MicroIncrement) Apply(current version.Version) (version.Version, error) {
	return incrementRelease(current, 2, m.RemovePre), nil
}

// Finalize keeps the release untouched and drops the preview, post, dev,
// and local parts, forcing the version into its final form. Applying it
// twice yields the same result as applying it once.
type Finalize struct{}

// Apply implements Modifier.
func (Finalize) Apply(current version.Version) (version.Version, error) {
	return version.Version{
		Epoch:   current.Epoch,
		Release: paddedRelease(current),
	}, nil
}

// ResetNonSemanticParts clears the post, dev, and local parts while keeping
// the release and any pre-release marker. It backs the "reset-locals"
// command and graduates development versions during policy dispatch.
type ResetNonSemanticParts struct{}

// Apply implements Modifier.
func (ResetNonSemanticParts) Apply(current version.Version) (version.Version, error) {
	return version.Version{
		Epoch:   current.Epoch,
		Release: paddedRelease(current),
		Preview: current.Preview,
	}, nil
}

// EpochIncrement bumps the epoch. ResetVersion restarts the release at the
// default "1"; RemovePre keeps the release but drops the non-final parts.
// With neither flag set, only the epoch changes.
type EpochIncrement struct {
	RemovePre    bool
	ResetVersion bool
}

// Apply implements Modifier.
func (m EpochIncrement) Apply(current version.Version) (version.Version, error) {
	next := version.Version{
		Epoch: current.Epoch + 1,
	}

	switch {
	case m.ResetVersion:
		next.Release = paddedRelease(version.Default())
	case m.RemovePre:
		next.Release = paddedRelease(current)
	default:
		next.Release = paddedRelease(current)
		next.Preview = current.Preview
		next.Post = current.Post
		next.Dev = current.Dev
		next.Local = current.Local
	}

	return next, nil
}
