// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit and Date describe the revision the installer was built from.
// Both are overwritten by linker flags on release builds.
var (
	Commit = "unknown"
	Date   = "unknown"
)

// String renders the version together with its commit and build date.
func String() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
