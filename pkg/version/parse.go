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

package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidVersion indicates a string that does not conform to the PEP 440
// grammar. Returned errors match it via errors.Is.
var ErrInvalidVersion = errors.New("invalid PEP 440 version")

// ParseError carries the offending input of a failed parse.
type ParseError struct {
	Input string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not a valid version according to PEP 440", e.Input)
}

// Is makes ParseError match ErrInvalidVersion.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidVersion
}

// versionPattern is the permissive VERSION_PATTERN defined by the packaging
// project for PEP 440, covering the alternative spellings that normalize to
// the canonical form.
const versionPattern = `v?` +
	`(?:` +
	`(?:(?P<epoch>[0-9]+)!)?` + // epoch
	`(?P<release>[0-9]+(?:\.[0-9]+)*)` + // release segment
	`(?P<pre>[-_\.]?(?P<pre_l>a|b|c|rc|alpha|beta|pre|preview)[-_\.]?(?P<pre_n>[0-9]+)?)?` + // pre-release
	`(?P<post>(?:-(?P<post_n1>[0-9]+))|(?:[-_\.]?(?P<post_l>post|rev|r)[-_\.]?(?P<post_n2>[0-9]+)?))?` + // post release
	`(?P<dev>[-_\.]?(?P<dev_l>dev)[-_\.]?(?P<dev_n>[0-9]+)?)?` +
	`)` +
	`(?:\+(?P<local>[a-z0-9]+(?:[-_\.][a-z0-9]+)*))?` // local version

var versionRe = regexp.MustCompile(`(?i)^\s*` + versionPattern + `\s*$`)

// previewAliases maps the accepted pre-release spellings to the canonical
// three-kind set.
var previewAliases = map[string]PreviewKind{
	"a":       PreviewAlpha,
	"alpha":   PreviewAlpha,
	"b":       PreviewBeta,
	"beta":    PreviewBeta,
	"c":       PreviewReleaseCandidate,
	"rc":      PreviewReleaseCandidate,
	"pre":     PreviewReleaseCandidate,
	"preview": PreviewReleaseCandidate,
}

// Parse parses a PEP 440 version string, normalizing alternative spellings:
// long pre-release forms collapse to {a, b, rc}, post spellings (rev, r and
// the bare "-N" form) collapse to post, and local label separators become
// dots. A missing pre/post/dev number defaults to 0.
func Parse(text string) (Version, error) {
	match := versionRe.FindStringSubmatch(text)
	if match == nil {
		return Version{}, &ParseError{Input: text}
	}

	group := func(name string) string {
		return match[versionRe.SubexpIndex(name)]
	}

	var v Version

	if epoch := group("epoch"); epoch != "" {
		n, err := strconv.Atoi(epoch)
		if err != nil {
			return Version{}, &ParseError{Input: text}
		}
		v.Epoch = n
	}

	for _, part := range strings.Split(group("release"), ".") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, &ParseError{Input: text}
		}
		v.Release = append(v.Release, n)
	}

	if letter := group("pre_l"); letter != "" {
		kind, ok := previewAliases[strings.ToLower(letter)]
		if !ok {
			return Version{}, &ParseError{Input: text}
		}
		n := segmentNumber(group("pre_n"))
		v.Preview = &Segment{Kind: kind, Number: n}
	}

	if group("post") != "" {
		n := segmentNumber(group("post_n1") + group("post_n2"))
		v.Post = &n
	}

	if group("dev") != "" {
		n := segmentNumber(group("dev_n"))
		v.Dev = &n
	}

	if local := group("local"); local != "" {
		v.Local = normalizeLocal(local)
	}

	return v, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParse(text string) Version {
	v, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// CanParse reports whether text parses as a PEP 440 version.
func CanParse(text string) bool {
	_, err := Parse(text)
	return err == nil
}

func segmentNumber(digits string) int {
	if digits == "" {
		return 0
	}
	// The pattern guarantees digits-only input.
	n, _ := strconv.Atoi(digits)
	return n
}

// normalizeLocal lower-cases a local version label and replaces the
// alternative segment separators "-" and "_" with ".".
func normalizeLocal(local string) string {
	segments := strings.FieldsFunc(strings.ToLower(local), func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})
	return strings.Join(segments, ".")
}
