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
	"fmt"
	"strconv"
	"strings"
)

// PreviewKind is the canonical letter of a PEP 440 pre-release segment.
type PreviewKind string

const (
	// PreviewAlpha is an alpha pre-release ("a" / "alpha").
	PreviewAlpha PreviewKind = "a"
	// PreviewBeta is a beta pre-release ("b" / "beta").
	PreviewBeta PreviewKind = "b"
	// PreviewReleaseCandidate is a release candidate ("rc" / "c" / "pre" / "preview").
	PreviewReleaseCandidate PreviewKind = "rc"
)

// previewOrder ranks pre-release kinds for version comparison.
// Lower values sort earlier. The zero value is reserved for "no pre-release".
var previewOrder = map[PreviewKind]int{
	PreviewAlpha:            -3,
	PreviewBeta:             -2,
	PreviewReleaseCandidate: -1,
}

// Segment is a letter/number pair such as the pre-release segment "a1".
type Segment struct {
	Kind   PreviewKind
	Number int
}

// Version is an immutable PEP 440 version value.
//
// All transformations produce a new Version; callers must never mutate the
// Release slice of an existing value. Post and Dev are nil when the
// corresponding segment is absent; their pointees are the segment numbers.
// Local holds the normalized (dot-separated, lower-case) local version label,
// or the empty string when absent.
type Version struct {
	Epoch   int
	Release []int
	Preview *Segment
	Post    *int
	Dev     *int
	Local   string
}

// Default returns the default version "1" used when a project carries no
// version yet, and as the reset target for epoch increments.
func Default() Version {
	return Version{Release: []int{1}}
}

// releaseComponent returns the n-th release component, or 0 when the release
// segment is shorter than n+1 components.
func (v Version) releaseComponent(n int) int {
	if n < len(v.Release) {
		return v.Release[n]
	}
	return 0
}

// Major returns the first release component.
func (v Version) Major() int { return v.releaseComponent(0) }

// Minor returns the second release component, 0 if absent.
func (v Version) Minor() int { return v.releaseComponent(1) }

// Micro returns the third release component, 0 if absent.
func (v Version) Micro() int { return v.releaseComponent(2) }

// ReleaseTriple returns the release segment padded to exactly three
// components (major, minor, micro).
func (v Version) ReleaseTriple() [3]int {
	return [3]int{v.Major(), v.Minor(), v.Micro()}
}

// IsPreRelease reports whether the version carries a pre-release or
// development segment.
func (v Version) IsPreRelease() bool {
	return v.Preview != nil || v.IsDevelopmentVersion()
}

// IsDevelopmentVersion reports whether the version carries a dev segment.
func (v Version) IsDevelopmentVersion() bool { return v.Dev != nil }

// IsPostRelease reports whether the version carries a post segment.
func (v Version) IsPostRelease() bool { return v.Post != nil }

// IsLocalVersion reports whether the version carries a local version label.
func (v Version) IsLocalVersion() bool { return v.Local != "" }

// IsAlpha reports whether the pre-release segment is an alpha.
func (v Version) IsAlpha() bool {
	return v.Preview != nil && v.Preview.Kind == PreviewAlpha
}

// IsBeta reports whether the pre-release segment is a beta.
func (v Version) IsBeta() bool {
	return v.Preview != nil && v.Preview.Kind == PreviewBeta
}

// IsReleaseCandidate reports whether the pre-release segment is a release
// candidate.
func (v Version) IsReleaseCandidate() bool {
	return v.Preview != nil && v.Preview.Kind == PreviewReleaseCandidate
}

// IsFinal reports whether the version is a final release: no pre-release,
// post, dev or local segment.
func (v Version) IsFinal() bool {
	return v.Preview == nil && !v.IsLocalVersion() &&
		!v.IsPostRelease() && !v.IsDevelopmentVersion()
}

// String renders the canonical PEP 440 form: [E!]N(.N)*[{a|b|rc}N][.postN][.devN][+local].
func (v Version) String() string {
	var b strings.Builder

	if v.Epoch > 0 {
		fmt.Fprintf(&b, "%d!", v.Epoch)
	}

	if len(v.Release) == 0 {
		b.WriteString("0")
	} else {
		for i, part := range v.Release {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(strconv.Itoa(part))
		}
	}

	if v.Preview != nil {
		fmt.Fprintf(&b, "%s%d", v.Preview.Kind, v.Preview.Number)
	}
	if v.Post != nil {
		fmt.Fprintf(&b, ".post%d", *v.Post)
	}
	if v.Dev != nil {
		fmt.Fprintf(&b, ".dev%d", *v.Dev)
	}
	if v.Local != "" {
		fmt.Fprintf(&b, "+%s", v.Local)
	}

	return b.String()
}

// Equal reports whether two versions are identical after release padding.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Less reports whether v sorts strictly before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Compare returns an integer comparing two versions according to PEP 440
// ordering: -1 if v sorts before other, 0 if they are equal, 1 if v sorts
// after other. Release segments of different lengths are compared after
// zero-padding to equal length.
func (v Version) Compare(other Version) int {
	if d := cmpInt(v.Epoch, other.Epoch); d != 0 {
		return d
	}
	if d := v.cmpRelease(other); d != 0 {
		return d
	}
	if d := v.cmpPreview(other); d != 0 {
		return d
	}
	if d := v.cmpPost(other); d != 0 {
		return d
	}
	if d := v.cmpDev(other); d != 0 {
		return d
	}
	return cmpLocal(v.Local, other.Local)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (v Version) cmpRelease(other Version) int {
	for i := 0; i < len(v.Release) || i < len(other.Release); i++ {
		if d := cmpInt(v.releaseComponent(i), other.releaseComponent(i)); d != 0 {
			return d
		}
	}
	return 0
}

// previewKey returns the sort key of the pre-release slot. A version with
// only a dev segment sorts before every pre-release of the same release
// segment; the plain release sorts after all of them.
func (v Version) previewKey() (rank, number int) {
	if v.Preview != nil {
		return previewOrder[v.Preview.Kind], v.Preview.Number
	}
	if v.Dev != nil && v.Post == nil {
		return -4, 0
	}
	return 0, 0
}

func (v Version) cmpPreview(other Version) int {
	vr, vn := v.previewKey()
	or, on := other.previewKey()
	if d := cmpInt(vr, or); d != 0 {
		return d
	}
	return cmpInt(vn, on)
}

func (v Version) cmpPost(other Version) int {
	// A missing post segment sorts before any present one.
	vp, op := -1, -1
	if v.Post != nil {
		vp = *v.Post
	}
	if other.Post != nil {
		op = *other.Post
	}
	return cmpInt(vp, op)
}

func (v Version) cmpDev(other Version) int {
	// A missing dev segment sorts after any present one.
	switch {
	case v.Dev == nil && other.Dev == nil:
		return 0
	case v.Dev == nil:
		return 1
	case other.Dev == nil:
		return -1
	default:
		return cmpInt(*v.Dev, *other.Dev)
	}
}

// cmpLocal compares local version labels segment by segment. Numeric
// segments compare numerically and sort after alphanumeric ones; a label
// that is a prefix of a longer label sorts before it. The empty label sorts
// before any non-empty one.
func cmpLocal(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return -1
	}
	if b == "" {
		return 1
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aNum := strconv.Atoi(as[i])
		bn, bNum := strconv.Atoi(bs[i])
		switch {
		case aNum == nil && bNum == nil:
			if d := cmpInt(an, bn); d != 0 {
				return d
			}
		case aNum == nil:
			return 1
		case bNum == nil:
			return -1
		default:
			if d := strings.Compare(as[i], bs[i]); d != 0 {
				return d
			}
		}
	}
	return cmpInt(len(as), len(bs))
}
