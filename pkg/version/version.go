// Package version holds build information set at link time.
package version

import (
	"strings"
)

var (
	// ProjectName is a component name, e.g. mongo-explorer.
	ProjectName string
	// Version is a component version e.g. v0.3.0-1-a93bef.
	Version string
	// FullCommit is a git commit hash.
	FullCommit string
)

// FullVersionInfo returns build information, one field per line.
func FullVersionInfo() string {
	out := []string{
		"ProjectName: " + ProjectName,
		"Version: " + Version,
		"FullCommit: " + FullCommit,
	}
	return strings.Join(out, "\n")
}
