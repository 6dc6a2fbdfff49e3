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

// Package version implements the PEP 440 version model used throughout
// pepbump.
//
// # Overview
//
// A Version is an immutable value holding the five PEP 440 segments:
//
//	[N!]N(.N)*[{a|b|rc}N][.postN][.devN][+local]
//
// Parse accepts the full permissive grammar from the packaging project
// (including long pre-release spellings, "rev"/"r" post forms and mixed
// local separators) and normalizes it to the canonical form; String always
// renders canonically:
//
//	v, err := version.Parse("1.2.3-ALPHA.1+foo_bar")
//	// v.String() == "1.2.3a1+foo.bar"
//
// Compare implements the full PEP 440 ordering including the dev/pre/post
// interplay and local label segment rules. Release segments are padded with
// zeros for comparison, so "1.2" and "1.2.0" are equal.
//
// # Errors
//
// Parse failures are reported as *ParseError, matching ErrInvalidVersion
// via errors.Is. CanParse reports validity without surfacing the error.
package version
