// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package version holds build metadata injected via -ldflags -X.
package version

import "fmt"

var (
	Version = "v0.1.0"
	Commit  = "unknown"
	Date    = "unknown"
)

// String formats the build metadata for --version output.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
