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
	"errors"
	"fmt"

	"github.com/pepbump/pepbump/pkg/version"
)

var (
	// ErrPreviewMismatch indicates a pre-release increment that is
	// incompatible with the current pre-release stage, such as asking
	// for an alpha bump while the version is already in beta.
	ErrPreviewMismatch = errors.New("pre-release kind mismatch")

	// ErrNotFinal indicates a modifier that requires a final version
	// was applied to one carrying pre-release, post, dev, or local parts.
	ErrNotFinal = errors.New("version is not a final release")
)

// PreviewMismatchError carries the current version and the pre-release
// kinds it would have to be in for the requested transition to be valid.
type PreviewMismatchError struct {
	Current version.Version
	Allowed []version.PreviewKind
}

// Error implements error.
func (e *PreviewMismatchError) Error() string {
	return fmt.Sprintf("version %s is not one of the allowed pre-release stages %v", e.Current, e.Allowed)
}

// Is reports whether target is ErrPreviewMismatch.
func (e *PreviewMismatchError) Is(target error) bool {
	return target == ErrPreviewMismatch
}

// NotFinalError carries the version that failed the finality precondition.
type NotFinalError struct {
	Current version.Version
}

// Error implements error.
func (e *NotFinalError) Error() string {
	return fmt.Sprintf("version %s carries pre-release, post, dev, or local parts", e.Current)
}

// Is reports whether target is ErrNotFinal.
func (e *NotFinalError) Is(target error) bool {
	return target == ErrNotFinal
}
