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

// Package policy decides which version bump a commit history warrants.
//
// # Overview
//
// Every observed commit type is placed on an ordinal Rating scale and the
// highest rating wins. Breaking changes fold in a major rating, a dirty
// working tree a local one. The resulting rating is dispatched to a
// modifier from the highest threshold down, with the minor and micro
// thresholds adjusted when the current version is already in a pre-release
// cycle: instead of bumping the release tuple they advance the pre-release
// marker, keeping an ongoing alpha/beta/rc progression intact.
//
// The default Semantic policy mirrors semantic versioning: features rate
// minor, fixes rate micro, build plumbing rates post, and anything
// unclassifiable rates a development bump.
package policy
