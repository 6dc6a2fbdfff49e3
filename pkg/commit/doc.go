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

// Package commit classifies commit messages by the conventional-commit
// convention and aggregates them into per-type statistics.
//
// A Commit wraps one header line and computes its Type and breaking-change
// flag lazily through a pluggable Parser. A History tallies a sequence of
// commits into Statistics once and caches the result. The policy package
// consumes Statistics to decide which version bump the history warrants.
package commit
