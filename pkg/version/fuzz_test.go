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
	"testing"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("1")
	f.Add("v1")
	f.Add("1.2")
	f.Add("1.2.3")
	f.Add("v1.2.3")
	f.Add("0.0.0")
	f.Add("999.999.999")
	f.Add("1!2.0")
	f.Add("1.2.3a1")
	f.Add("1.2.3-alpha.1")
	f.Add("1.2.3beta2")
	f.Add("1.2.3rc1")
	f.Add("1.2.3c1")
	f.Add("1.2.3preview4")
	f.Add("1.2.3.post1")
	f.Add("1.2.3-rev2")
	f.Add("1.2.3-4")
	f.Add("1.2.3.dev1")
	f.Add("1.2.3+local")
	f.Add("1.2.3+foo_bar-baz")
	f.Add("2!1.2.3rc4.post5.dev6+local.7")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("v")
	f.Add("vv1")
	f.Add("-1")
	f.Add("1.-2")
	f.Add("a.b.c")
	f.Add("1.2.3.4.5")
	f.Add("   1.2.3")
	f.Add("1.2.3   ")
	f.Add("1. 2.3")
	f.Add("1.2.3+")
	f.Add("1.2.3+.")
	f.Add("1!!2")

	f.Fuzz(func(t *testing.T, input string) {
		// Parse should never panic
		v, err := Parse(input)

		if err == nil {
			// String() should not panic and should be parseable again
			s := v.String()
			v2, err2 := Parse(s)
			if err2 != nil {
				t.Errorf("Re-parsing %q (from %q) failed: %v", s, input, err2)
				return
			}

			// Canonical form should be stable
			if s2 := v2.String(); s2 != s {
				t.Errorf("Canonicalization not idempotent for %q: %q != %q", input, s, s2)
			}

			// Re-parsed version should compare equal
			if v.Compare(v2) != 0 {
				t.Errorf("Round-trip mismatch for %q: %+v != %+v", input, v, v2)
			}

			// Release components should be non-negative
			for _, n := range v.Release {
				if n < 0 {
					t.Errorf("Parse(%q) returned negative release component: %+v", input, v)
				}
			}
			if v.Epoch < 0 {
				t.Errorf("Parse(%q) returned negative epoch: %+v", input, v)
			}

			// Predicates and comparisons should not panic
			other := Default()
			_ = v.IsPreRelease()
			_ = v.IsDevelopmentVersion()
			_ = v.IsPostRelease()
			_ = v.IsLocalVersion()
			_ = v.IsFinal()
			_ = v.Compare(other)
			_ = v.Less(other)
			_ = v.Equal(other)
		}
	})
}
