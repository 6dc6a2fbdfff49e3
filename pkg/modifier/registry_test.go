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

package modifier

import (
	"slices"
	"testing"

	"github.com/pepbump/pepbump/pkg/version"
)

func TestRegistryNew(t *testing.T) {
	tests := []struct {
		action  string
		opts    Options
		current string
		want    string
	}{
		{action: "major", opts: Options{RemovePre: true}, current: "1.2.3a4", want: "2.0.0"},
		{action: "major", opts: Options{}, current: "1.2.3a4", want: "2.0.0a4"},
		{action: "minor", opts: Options{RemovePre: true}, current: "1.2.3", want: "1.3.0"},
		{action: "micro", opts: Options{RemovePre: true}, current: "1.2.3", want: "1.2.4"},
		{action: "epoch", opts: Options{RemovePre: true}, current: "1.2.3a1", want: "1!1.2.3"},
		{action: "epoch", opts: Options{RemovePre: true, ResetVersion: true}, current: "2.3.4", want: "1!1.0.0"},
		{action: "alpha", opts: Options{}, current: "1.2.3a4", want: "1.2.3a5"},
		{action: "alpha", opts: Options{IncrementMicro: true}, current: "1.2.3", want: "1.2.4a1"},
		{action: "beta", opts: Options{}, current: "1.2.3a4", want: "1.2.3b1"},
		{action: "rc", opts: Options{}, current: "1.2.3b2", want: "1.2.3rc1"},
		{action: "no-pre-release", opts: Options{}, current: "1.2.3rc2", want: "1.2.3"},
		{action: "reset-locals", opts: Options{}, current: "1.2.3a1.post2+local", want: "1.2.3a1"},
		{action: "dev", opts: Options{}, current: "1.2.3.dev4", want: "1.2.3.dev5"},
		{action: "post", opts: Options{}, current: "1.2.3", want: "1.2.3.post1"},
		{action: "premajor", opts: Options{}, current: "1.2.3", want: "2.0.0a0"},
		{action: "preminor", opts: Options{}, current: "1.2.3", want: "1.3.0a0"},
		{action: "prepatch", opts: Options{}, current: "1.2.3", want: "1.2.4a0"},
		{action: "prerelease", opts: Options{}, current: "1.2.3a4", want: "1.2.3a5"},
		{action: "noop", opts: Options{}, current: "1.2.3", want: "1.2.3"},
	}

	reg := DefaultRegistry()
	for _, tt := range tests {
		t.Run(tt.action+" "+tt.current, func(t *testing.T) {
			mod, ok := reg.New(tt.action, tt.opts)
			if !ok {
				t.Fatalf("action %q not registered", tt.action)
			}

			next, err := mod.Apply(version.MustParse(tt.current))
			if err != nil {
				t.Fatal(err)
			}
			if got := next.String(); got != tt.want {
				t.Errorf("New(%q, %+v): got %q, want %q", tt.action, tt.opts, got, tt.want)
			}
		})
	}
}

func TestRegistryUnknownAction(t *testing.T) {
	if mod, ok := DefaultRegistry().New("gamma", Options{}); ok || mod != nil {
		t.Errorf("New(gamma) = (%v, %v), want miss", mod, ok)
	}
}

func TestRegistryNames(t *testing.T) {
	names := DefaultRegistry().Names()

	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	for _, want := range []string{"major", "minor", "micro", "epoch", "alpha", "beta", "rc",
		"no-pre-release", "reset-locals", "dev", "post",
		"premajor", "preminor", "prepatch", "prerelease", "noop"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() missing %q", want)
		}
	}
	if len(names) != 16 {
		t.Errorf("Names() has %d entries, want 16", len(names))
	}
}
