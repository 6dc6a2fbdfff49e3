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

// Package project reads and persists a Python project's version.
//
// The version either lives directly in pyproject.toml (`version = "..."`
// under [project]) or, when declared dynamic, in a source file carrying a
// `__version__ = "..."` assignment. Both are served by FileStore, which
// rewrites only the quoted version string and keeps the rest of the file
// untouched. Saves are atomic and every store can report its pending
// change as unified-diff hunks for the commit hook.
package project
