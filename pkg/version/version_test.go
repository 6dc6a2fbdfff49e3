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
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "1.2.3", "1.2.3", false},
		{"single component", "1", "1", false},
		{"two components", "1.2", "1.2", false},
		{"four components", "1.2.3.4", "1.2.3.4", false},
		{"v prefix", "v1.2.3", "1.2.3", false},
		{"epoch", "1!2.0", "1!2.0", false},
		{"alpha", "1.2.3a1", "1.2.3a1", false},
		{"alpha long form", "1.2.3alpha1", "1.2.3a1", false},
		{"alpha separated", "1.2.3-alpha.1", "1.2.3a1", false},
		{"beta", "1.2.3b2", "1.2.3b2", false},
		{"beta long form", "1.2.3beta2", "1.2.3b2", false},
		{"rc", "1.2.3rc1", "1.2.3rc1", false},
		{"c normalizes to rc", "1.2.3c1", "1.2.3rc1", false},
		{"preview normalizes to rc", "1.2.3preview1", "1.2.3rc1", false},
		{"pre without number", "1.0a", "1.0a0", false},
		{"post", "1.2.3.post1", "1.2.3.post1", false},
		{"post rev form", "1.2.3.rev2", "1.2.3.post2", false},
		{"post bare dash form", "1.2.3-4", "1.2.3.post4", false},
		{"dev", "1.2.3.dev1", "1.2.3.dev1", false},
		{"dev without number", "1.0.dev", "1.0.dev0", false},
		{"local", "1.2.3+ubuntu.1", "1.2.3+ubuntu.1", false},
		{"local separators normalize", "1.2.3+foo_bar-baz", "1.2.3+foo.bar.baz", false},
		{"local upper case normalizes", "1.2.3+Ubuntu1", "1.2.3+ubuntu1", false},
		{"everything", "2!1.2.3rc4.post5.dev6+local.7", "2!1.2.3rc4.post5.dev6+local.7", false},
		{"surrounding whitespace", "  1.2.3  ", "1.2.3", false},
		{"case insensitive letters", "1.2.3RC1", "1.2.3rc1", false},
		{"empty", "", "", true},
		{"garbage", "not-a-version", "", true},
		{"missing release", "a1", "", true},
		{"negative component", "1.-2.3", "", true},
		{"double separator", "1..2", "", true},
		{"trailing separator", "1.2.", "", true},
		{"inner whitespace", "1. 2.3", "", true},
		{"bad local start", "1.2.3+.foo", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Errorf("Parse(%q) error does not match ErrInvalidVersion: %v", tt.input, err)
				}
				var pe *ParseError
				if !errors.As(err, &pe) || pe.Input != tt.input {
					t.Errorf("Parse(%q) error does not carry input: %v", tt.input, err)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestParseSegments(t *testing.T) {
	v, err := Parse("2!1.2a3.post4.dev5+deb.9")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Epoch != 2 {
		t.Errorf("Epoch = %d, want 2", v.Epoch)
	}
	if v.Major() != 1 || v.Minor() != 2 || v.Micro() != 0 {
		t.Errorf("release = %d.%d.%d, want 1.2.0", v.Major(), v.Minor(), v.Micro())
	}
	if v.Preview == nil || v.Preview.Kind != PreviewAlpha || v.Preview.Number != 3 {
		t.Errorf("Preview = %+v, want a3", v.Preview)
	}
	if v.Post == nil || *v.Post != 4 {
		t.Errorf("Post = %v, want 4", v.Post)
	}
	if v.Dev == nil || *v.Dev != 5 {
		t.Errorf("Dev = %v, want 5", v.Dev)
	}
	if v.Local != "deb.9" {
		t.Errorf("Local = %q, want %q", v.Local, "deb.9")
	}
}

func TestCanParse(t *testing.T) {
	if !CanParse("1.0.0") {
		t.Error("CanParse(1.0.0) = false, want true")
	}
	if CanParse("one.two") {
		t.Error("CanParse(one.two) = true, want false")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		input string
		pre   bool
		dev   bool
		post  bool
		local bool
		alpha bool
		beta  bool
		rc    bool
		final bool
	}{
		{"1.2.3", false, false, false, false, false, false, false, true},
		{"1.2.3a1", true, false, false, false, true, false, false, false},
		{"1.2.3b1", true, false, false, false, false, true, false, false},
		{"1.2.3rc1", true, false, false, false, false, false, true, false},
		{"1.2.3.dev1", true, true, false, false, false, false, false, false},
		{"1.2.3.post1", false, false, true, false, false, false, false, false},
		{"1.2.3+local", false, false, false, true, false, false, false, false},
		{"1.2.3a1.dev1", true, true, false, false, true, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v := MustParse(tt.input)
			if v.IsPreRelease() != tt.pre {
				t.Errorf("IsPreRelease() = %v, want %v", v.IsPreRelease(), tt.pre)
			}
			if v.IsDevelopmentVersion() != tt.dev {
				t.Errorf("IsDevelopmentVersion() = %v, want %v", v.IsDevelopmentVersion(), tt.dev)
			}
			if v.IsPostRelease() != tt.post {
				t.Errorf("IsPostRelease() = %v, want %v", v.IsPostRelease(), tt.post)
			}
			if v.IsLocalVersion() != tt.local {
				t.Errorf("IsLocalVersion() = %v, want %v", v.IsLocalVersion(), tt.local)
			}
			if v.IsAlpha() != tt.alpha {
				t.Errorf("IsAlpha() = %v, want %v", v.IsAlpha(), tt.alpha)
			}
			if v.IsBeta() != tt.beta {
				t.Errorf("IsBeta() = %v, want %v", v.IsBeta(), tt.beta)
			}
			if v.IsReleaseCandidate() != tt.rc {
				t.Errorf("IsReleaseCandidate() = %v, want %v", v.IsReleaseCandidate(), tt.rc)
			}
			if v.IsFinal() != tt.final {
				t.Errorf("IsFinal() = %v, want %v", v.IsFinal(), tt.final)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	// Each entry sorts strictly before its successor.
	ordered := []string{
		"0.9",
		"1.0.dev1",
		"1.0.dev2",
		"1.0a1",
		"1.0a2",
		"1.0b1",
		"1.0rc1",
		"1.0",
		"1.0+abc",
		"1.0+abc.1",
		"1.0+5",
		"1.0.post1.dev1",
		"1.0.post1",
		"1.0.post2",
		"1.0.1",
		"1.1",
		"2.0",
		"1!0.1",
		"1!1.0",
	}

	for i := range ordered {
		for j := range ordered {
			a := MustParse(ordered[i])
			b := MustParse(ordered[j])
			want := cmpInt(i, j)
			if got := a.Compare(b); got != want {
				t.Errorf("Compare(%q, %q) = %d, want %d", ordered[i], ordered[j], got, want)
			}
		}
	}
}

func TestCompareReleasePadding(t *testing.T) {
	if !MustParse("1.2").Equal(MustParse("1.2.0")) {
		t.Error("1.2 should equal 1.2.0")
	}
	if !MustParse("1").Equal(MustParse("1.0.0")) {
		t.Error("1 should equal 1.0.0")
	}
	if MustParse("1.2").Equal(MustParse("1.2.1")) {
		t.Error("1.2 should not equal 1.2.1")
	}
}

func TestReleaseTriple(t *testing.T) {
	v := MustParse("1.2")
	if got := v.ReleaseTriple(); got != [3]int{1, 2, 0} {
		t.Errorf("ReleaseTriple() = %v, want [1 2 0]", got)
	}
}

func TestDefault(t *testing.T) {
	d := Default()
	if d.String() != "1" {
		t.Errorf("Default().String() = %q, want %q", d.String(), "1")
	}
	if !d.IsFinal() {
		t.Error("Default() should be final")
	}
	if !d.Equal(MustParse("1.0.0")) {
		t.Error("Default() should equal 1.0.0")
	}
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{
		"1.2.3",
		"1.2.3-alpha2",
		"2!1.0rc1.post2.dev3+x_y-z",
		"0.0.1-rev.7",
		"V1.0-PREVIEW-4",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := MustParse(input).String()
			twice := MustParse(once).String()
			if once != twice {
				t.Errorf("canonicalization not idempotent: %q -> %q -> %q", input, once, twice)
			}
		})
	}
}
