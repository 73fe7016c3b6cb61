// ============================================================================
// unitx - Dimensional analysis for Go
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for all unitx components
const (
	// Platform version
	Platform = "0.1.0"

	// Component versions
	Foundation = "0.2.0"
	CLI        = "0.1.0"
)

// Build metadata, set with -ldflags "-X ..." at release time
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "foundation":
		return Foundation
	case "cli", "unitx":
		return CLI
	default:
		return Platform
	}
}

// Info returns a one-line description of the build
func Info() string {
	return fmt.Sprintf("unitx %s (foundation %s, commit %s, built %s)", CLI, Foundation, Commit, BuildDate)
}
