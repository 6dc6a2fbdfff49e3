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

// Package vcs talks to the project's version-control system.
//
// The Provider interface covers the handful of repository facts and
// actions the tool needs: working tree cleanliness, commit history since
// the last tag, tag creation, and committing the bumped files. GitCLI
// implements it by shelling out to git. Inspect runs the read-only
// queries concurrently for the suggest and auto commands.
package vcs
