// Package version provides build-time version information.
package version

// These variables are set at build time using -ldflags.
var (
	// Version is the semantic version.
	Version = "0.1.0"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"
)

// String returns the full version string reported by the CLI.
func String() string {
	return Version + " (" + GitCommit + ")"
}
