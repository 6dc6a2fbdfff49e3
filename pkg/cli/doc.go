// Package cli implements the pepbump command-line interface.
//
// # Overview
//
// pepbump bumps PEP 440 versions of Python projects. It reads the current
// version from pyproject.toml (or the dynamic version source the project
// points at), applies the requested increment, writes the result back, and
// optionally commits and tags the change.
//
// # Commands
//
// Release component increments:
//
//	pepbump major [--no-remove]
//	pepbump minor [--no-remove]
//	pepbump micro [--no-remove]   (alias: patch)
//
// Pre-release, post, dev, and epoch handling:
//
//	pepbump pre-release --pre {alpha,beta,rc,c} [--micro]
//	pepbump no-pre-release
//	pepbump reset-locals
//	pepbump dev
//	pepbump post
//	pepbump epoch [--reset] [--no-remove]
//
// Poetry-style increments:
//
//	pepbump premajor
//	pepbump preminor
//	pepbump prepatch
//	pepbump prerelease
//
// Explicit versions and repository operations:
//
//	pepbump to <version> [--force]
//	pepbump tag [--dirty] [--no-prepend-v]
//	pepbump suggest
//	pepbump auto
//
// # Shared Flags
//
//	--dry-run, -n   Print the resulting version without writing anything
//	--commit, -c    Commit the changed version file after bumping
//	--message, -m   Commit message template with {from} and {to}
//	--tag, -t       Tag the repository with the new version
//	--project, -p   Project root directory (default: current directory)
//
// # Exit Codes
//
//	0  Success
//	1  Any failure (invalid version, rejected transition, VCS error, ...)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/version - PEP 440 parsing, normalization, ordering
//   - pkg/modifier - version increment rules
//   - pkg/commit - conventional-commit classification
//   - pkg/policy - history rating and modifier selection
//   - pkg/project - pyproject.toml and dynamic version persistence
//   - pkg/vcs - git operations
//   - pkg/config - layered tool configuration
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/pepbump/pepbump/pkg/cli.version=1.0.0'"
package cli
