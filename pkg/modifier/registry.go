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
	"maps"
	"slices"
)

// Options carries the knobs the parameterized modifiers accept. Factories
// read only the fields that apply to them.
type Options struct {
	// RemovePre drops the pre-release, post, dev, and local segments on
	// release and epoch increments.
	RemovePre bool

	// ResetVersion restarts the release at the default version on an
	// epoch increment.
	ResetVersion bool

	// IncrementMicro bumps the micro component when a pre-release
	// increment starts from a final version.
	IncrementMicro bool
}

// Factory builds one modifier from an option set.
type Factory func(opts Options) Modifier

// Registry maps action names to modifier factories. It is built once and
// passed by value; nothing mutates it after construction.
type Registry map[string]Factory

// DefaultRegistry returns the full action table.
func DefaultRegistry() Registry {
	return Registry{
		"major": func(o Options) Modifier { return MajorIncrement{RemovePre: o.RemovePre} },
		"minor": func(o Options) Modifier { return MinorIncrement{RemovePre: o.RemovePre} },
		"micro": func(o Options) Modifier { return MicroIncrement{RemovePre: o.RemovePre} },
		"epoch": func(o Options) Modifier {
			return EpochIncrement{RemovePre: o.RemovePre, ResetVersion: o.ResetVersion}
		},
		"alpha": func(o Options) Modifier { return AlphaIncrement{IncrementMicro: o.IncrementMicro} },
		"beta":  func(o Options) Modifier { return BetaIncrement{IncrementMicro: o.IncrementMicro} },
		"rc": func(o Options) Modifier {
			return ReleaseCandidateIncrement{IncrementMicro: o.IncrementMicro}
		},
		"no-pre-release": func(Options) Modifier { return Finalize{} },
		"reset-locals":   func(Options) Modifier { return ResetNonSemanticParts{} },
		"dev":            func(Options) Modifier { return DevIncrement{} },
		"post":           func(Options) Modifier { return PostIncrement{} },
		"premajor":       func(Options) Modifier { return PreMajor{} },
		"preminor":       func(Options) Modifier { return PreMinor{} },
		"prepatch":       func(Options) Modifier { return PrePatch{} },
		"prerelease":     func(Options) Modifier { return PreRelease{} },
		"noop":           func(Options) Modifier { return Noop{} },
	}
}

// New builds the modifier registered under name. The bool is false when no
// such action exists.
func (r Registry) New(name string, opts Options) (Modifier, bool) {
	factory, ok := r[name]
	if !ok {
		return nil, false
	}
	return factory(opts), true
}

// Names returns the registered action names, sorted.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}
