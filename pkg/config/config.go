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

// Package config loads the tool configuration. Values come from, in
// ascending precedence: built-in defaults, the [tool.pepbump] table in
// pyproject.toml, a .pepbump.yaml file next to it, and PEPBUMP_* environment
// variables. The result is an explicit struct handed to the CLI by
// injection.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// YAMLFile is the optional per-project override file.
const YAMLFile = ".pepbump.yaml"

// DefaultCommitMessageTemplate is the commit message used when none is
// configured. {from} and {to} expand to the old and new version.
const DefaultCommitMessageTemplate = "chore: Bump version {from} to {to}\n\n" +
	"Created a commit with a new version {to}.\n" +
	"Previous version was {from}."

// Config carries every tool setting.
type Config struct {
	// CommitMessageTemplate is the message for version-bump commits,
	// with {from} and {to} placeholders.
	CommitMessageTemplate string

	// PerformCommit commits the changed files after a bump.
	PerformCommit bool

	// AutoTag tags the repository after a bump.
	AutoTag bool

	// TagAddPrefix prepends "v" to created tags.
	TagAddPrefix bool

	// AllowDirty permits tagging a repository with uncommitted changes.
	AllowDirty bool

	// VersionSourceFile is the file carrying a __version__ assignment for
	// projects that declare their version dynamic, relative to the
	// project root.
	VersionSourceFile string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CommitMessageTemplate: DefaultCommitMessageTemplate,
		TagAddPrefix:          true,
	}
}

// CommitMessage renders the commit message template for a bump from one
// version to another.
func (c Config) CommitMessage(from, to string) string {
	msg := strings.ReplaceAll(c.CommitMessageTemplate, "{from}", from)
	return strings.ReplaceAll(msg, "{to}", to)
}

// fileConfig mirrors Config with optional fields so absent keys do not
// clobber lower-precedence values.
type fileConfig struct {
	CommitMessageTemplate *string `toml:"commit_msg_tpl" yaml:"commit_msg_tpl"`
	PerformCommit         *bool   `toml:"perform_commit" yaml:"perform_commit"`
	AutoTag               *bool   `toml:"auto_tag" yaml:"auto_tag"`
	TagAddPrefix          *bool   `toml:"tag_add_prefix" yaml:"tag_add_prefix"`
	AllowDirty            *bool   `toml:"allow_dirty" yaml:"allow_dirty"`
	VersionSourceFile     *string `toml:"version_source_file" yaml:"version_source_file"`
}

func (f fileConfig) apply(c *Config) {
	if f.CommitMessageTemplate != nil {
		c.CommitMessageTemplate = *f.CommitMessageTemplate
	}
	if f.PerformCommit != nil {
		c.PerformCommit = *f.PerformCommit
	}
	if f.AutoTag != nil {
		c.AutoTag = *f.AutoTag
	}
	if f.TagAddPrefix != nil {
		c.TagAddPrefix = *f.TagAddPrefix
	}
	if f.AllowDirty != nil {
		c.AllowDirty = *f.AllowDirty
	}
	if f.VersionSourceFile != nil {
		c.VersionSourceFile = *f.VersionSourceFile
	}
}

// Load assembles the configuration for the project rooted at root. Missing
// files are fine; malformed ones are not.
func Load(root string) (Config, error) {
	cfg := Default()

	if err := loadPyProject(filepath.Join(root, "pyproject.toml"), &cfg); err != nil {
		return Config{}, err
	}
	if err := loadYAML(filepath.Join(root, YAMLFile), &cfg); err != nil {
		return Config{}, err
	}
	if err := loadEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadPyProject(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var doc struct {
		Tool struct {
			Pepbump fileConfig `toml:"pepbump"`
		} `toml:"tool"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	doc.Tool.Pepbump.apply(cfg)
	return nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func loadEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("PEPBUMP_COMMIT_MSG_TPL"); ok {
		cfg.CommitMessageTemplate = v
	}
	if v, ok := os.LookupEnv("PEPBUMP_VERSION_SOURCE_FILE"); ok {
		cfg.VersionSourceFile = v
	}

	bools := []struct {
		name   string
		target *bool
	}{
		{"PEPBUMP_PERFORM_COMMIT", &cfg.PerformCommit},
		{"PEPBUMP_AUTO_TAG", &cfg.AutoTag},
		{"PEPBUMP_TAG_ADD_PREFIX", &cfg.TagAddPrefix},
		{"PEPBUMP_ALLOW_DIRTY", &cfg.AllowDirty},
	}
	for _, b := range bools {
		v, ok := os.LookupEnv(b.name)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s=%q: %w", b.name, v, err)
		}
		*b.target = parsed
	}

	return nil
}
