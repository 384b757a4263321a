// Package domain holds the installer's core types.
package domain

import "strings"

const (
	// DefaultInstallDir is the install target used when neither the flag nor the
	// environment override is set.
	DefaultInstallDir = "/usr/local/bin"

	// EnvInstallDir names the environment variable overriding the install directory.
	EnvInstallDir = "INSTALL_DIR"

	// InstallerName is the installer's own command name, used in guidance text.
	InstallerName = "darkstorage-install"

	// UserInstallDir is the writable fallback suggested when the install
	// directory is not writable.
	UserInstallDir = "~/.local/bin"
)

// InstallConfig carries the command-line choices for one installer run.
// It is passed by value and never mutated after construction.
type InstallConfig struct {
	// FreshRebuild removes the previous artifact and purges toolchain caches.
	FreshRebuild bool
	// UpdateFirst stashes local edits and pulls the latest revision before building.
	UpdateFirst bool
	// DebugBuild builds without optimisations and keeps symbols.
	DebugBuild bool
	// InstallDir is the explicit install directory. Empty means "not given".
	InstallDir string
}

// ResolveInstallDir picks the install directory in priority order:
// the explicit flag, then the environment override, then DefaultInstallDir.
func ResolveInstallDir(flagValue, envValue string) string {
	if dir := strings.TrimSpace(flagValue); dir != "" {
		return dir
	}
	if dir := strings.TrimSpace(envValue); dir != "" {
		return dir
	}
	return DefaultInstallDir
}
