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

func BenchmarkParse(b *testing.B) {
	tests := []string{
		"1",
		"1.2",
		"1.2.3",
		"v1.2.3",
		"1.2.3a1",
		"1.2.3.post1",
		"2!1.2.3rc4.post5.dev6+local.7",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := tests[i%len(tests)]
		_, _ = Parse(input)
	}
}

func BenchmarkParseRelease(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("1.2.3")
	}
}

func BenchmarkParseFull(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("2!1.2.3rc4.post5.dev6+local.7")
	}
}

func BenchmarkString(b *testing.B) {
	v := MustParse("2!1.2.3rc4.post5.dev6+local.7")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkStringRelease(b *testing.B) {
	v := MustParse("1.2.3")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkCompare(b *testing.B) {
	v1 := MustParse("1.2.3rc1")
	v2 := MustParse("1.2.3")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Compare(v2)
	}
}

func BenchmarkCompareLocal(b *testing.B) {
	v1 := MustParse("1.2.3+ubuntu.20.04")
	v2 := MustParse("1.2.3+ubuntu.22.04")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Compare(v2)
	}
}

func BenchmarkMustParse(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MustParse("1.2.3")
	}
}
