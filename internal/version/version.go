// Package version centralizes version information for lemmerge.
package version

const (
	// Version is the current semantic version.
	Version = "0.3.0"

	// BuildDate is set during build time (use -ldflags)
	BuildDate = "development"

	// GitCommit is set during build time (use -ldflags)
	GitCommit = "unknown"
)

// Info returns the version string.
func Info() string {
	return Version
}

// FullInfo returns detailed version information.
func FullInfo() string {
	return "lemmerge " + Version + " (commit: " + GitCommit + ", built: " + BuildDate + ")"
}
