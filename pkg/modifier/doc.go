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

// Package modifier implements the version transformation rules.
//
// # Overview
//
// Every bump the tool can perform is a Modifier: a small value that takes
// a version and deterministically produces the next one. The set is closed
// and covers release increments (major, minor, micro, epoch), pre-release
// progression (alpha, beta, release candidate), development and post
// markers, finalization, and the poetry-style premajor, preminor,
// prepatch, and prerelease shortcuts.
//
// Modifiers are pure values. They carry their options as exported struct
// fields, never touch the version they are given, and report invalid
// transitions through typed errors instead of producing a partial result:
//
//	next, err := modifier.BetaIncrement{}.Apply(current)
//	if errors.Is(err, modifier.ErrPreviewMismatch) {
//		// current is past the beta stage already
//	}
//
// The policy package selects between modifiers based on commit history;
// the cli package maps each command to one of them directly.
package modifier
