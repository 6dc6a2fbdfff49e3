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

package commit

import (
	"regexp"
	"strings"
	"sync"
)

// Type classifies a commit by its conventional-commit prefix.
type Type string

const (
	TypeUndefined             Type = "undefined"
	TypeFeature               Type = "feat"
	TypeBugfix                Type = "fix"
	TypeChore                 Type = "chore"
	TypeQualityAssurance      Type = "qa"
	TypeDocumentation         Type = "docs"
	TypeBuild                 Type = "build"
	TypeContinuousIntegration Type = "ci"
	TypeCodeStyle             Type = "style"
	TypeRefactoring           Type = "refactor"
	TypePerformance           Type = "perf"
	TypeTest                  Type = "test"
)

// Types lists every commit type that carries a conventional-commit prefix,
// in matching order. TypeUndefined is the fallback and has no prefix.
var Types = []Type{
	TypeFeature,
	TypeBugfix,
	TypeChore,
	TypeQualityAssurance,
	TypeDocumentation,
	TypeBuild,
	TypeContinuousIntegration,
	TypeCodeStyle,
	TypeRefactoring,
	TypePerformance,
	TypeTest,
}

// Parser extracts the commit type and breaking-change marker from a commit
// header line.
type Parser interface {
	ParseType(header string) Type
	IsBreakingChange(header string) bool
}

// headerPattern captures everything before the first colon, including an
// optional trailing exclamation mark that marks a breaking change.
var headerPattern = regexp.MustCompile(`^([^:!]+!?):\s`)

// ConventionalParser classifies commits following the conventional-commit
// convention "type(scope)?!?: subject". The captured prefix is matched
// against the configured prefixes in order; an optional scope suffix after
// the type is tolerated.
type ConventionalParser struct {
	prefixes map[Type]string
	order    []Type
}

// NewConventionalParser returns a parser using the default prefix for every
// commit type.
func NewConventionalParser() *ConventionalParser {
	prefixes := make(map[Type]string, len(Types))
	for _, t := range Types {
		prefixes[t] = string(t)
	}
	return &ConventionalParser{prefixes: prefixes, order: Types}
}

// NewConventionalParserWithPrefixes returns a parser using the supplied
// type-to-prefix mapping, matched in the iteration order of types.
func NewConventionalParserWithPrefixes(types []Type, prefixes map[Type]string) *ConventionalParser {
	return &ConventionalParser{prefixes: prefixes, order: types}
}

// ParseType implements Parser. Headers without a conventional prefix and
// prefixes with no configured mapping classify as TypeUndefined.
func (p *ConventionalParser) ParseType(header string) Type {
	prefix, ok := p.prefix(header)
	if !ok {
		return TypeUndefined
	}

	prefix = strings.TrimSuffix(prefix, "!")
	for _, t := range p.order {
		if configured, ok := p.prefixes[t]; ok && strings.HasPrefix(prefix, configured) {
			return t
		}
	}

	return TypeUndefined
}

// IsBreakingChange implements Parser. A commit breaks compatibility when
// its prefix ends with an exclamation mark.
func (p *ConventionalParser) IsBreakingChange(header string) bool {
	prefix, ok := p.prefix(header)
	return ok && strings.HasSuffix(prefix, "!")
}

func (p *ConventionalParser) prefix(header string) (string, bool) {
	m := headerPattern.FindStringSubmatch(header)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Commit wraps one commit header line and classifies it on first use.
type Commit struct {
	// Header is the first line of the commit message.
	Header string

	parser   Parser
	classify sync.Once
	typ      Type
	breaking bool
}

// New returns a commit classified by parser. A nil parser falls back to
// the default conventional-commit parser.
func New(header string, parser Parser) *Commit {
	if parser == nil {
		parser = NewConventionalParser()
	}
	return &Commit{Header: header, parser: parser}
}

func (c *Commit) run() {
	c.classify.Do(func() {
		c.typ = c.parser.ParseType(c.Header)
		c.breaking = c.parser.IsBreakingChange(c.Header)
	})
}

// Type returns the commit type, computed once and cached.
func (c *Commit) Type() Type {
	c.run()
	return c.typ
}

// IsBreakingChange reports whether the commit is marked as a breaking
// change, computed once and cached.
func (c *Commit) IsBreakingChange() bool {
	c.run()
	return c.breaking
}
