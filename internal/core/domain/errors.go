package domain

import "go.trai.ch/zerr"

var (
	// ErrToolchainMissing is returned when the Go toolchain cannot be found on the search path.
	ErrToolchainMissing = zerr.New("toolchain missing")

	// ErrVCSMissing is returned when the git client cannot be found on the search path.
	ErrVCSMissing = zerr.New("vcs missing")

	// ErrToolchainVersionFailed is returned when the toolchain cannot report its version.
	ErrToolchainVersionFailed = zerr.New("failed to query toolchain version")

	// ErrStatusFailed is returned when the working tree status cannot be determined.
	ErrStatusFailed = zerr.New("failed to query working tree status")

	// ErrStashFailed is returned when local changes cannot be stashed.
	ErrStashFailed = zerr.New("failed to stash local changes")

	// ErrSyncFailed is returned when pulling the latest revision fails.
	ErrSyncFailed = zerr.New("failed to update repository")

	// ErrArtifactRemoveFailed is returned when a stale artifact exists but cannot be removed.
	ErrArtifactRemoveFailed = zerr.New("failed to remove old binary")

	// ErrDependencyFetchFailed is returned when dependency download fails.
	ErrDependencyFetchFailed = zerr.New("failed to download dependencies")

	// ErrBuildFailed is returned when the compiler exits with a non-zero status.
	ErrBuildFailed = zerr.New("build failed")

	// ErrArtifactStatFailed is returned when the built artifact cannot be inspected.
	ErrArtifactStatFailed = zerr.New("failed to inspect built binary")

	// ErrSmokeTestFailed is returned when the artifact does not answer its version command.
	ErrSmokeTestFailed = zerr.New("binary test failed")

	// ErrInstallDirCreateFailed is returned when the install directory cannot be created.
	ErrInstallDirCreateFailed = zerr.New("failed to create install directory")

	// ErrInstallFailed is returned when copying the artifact into place fails.
	ErrInstallFailed = zerr.New("failed to install binary")

	// ErrInstallDirNotWritable is returned when the install directory is not writable
	// and no escalation helper is available.
	ErrInstallDirNotWritable = zerr.New("install directory is not writable and sudo is not available")

	// ErrEscalatedInstallFailed is returned when the privileged copy fails.
	ErrEscalatedInstallFailed = zerr.New("failed to install with sudo")

	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrEmptyCommand is returned when a command has no program name.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrConfigReadFailed is returned when the install file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read install file")

	// ErrConfigParseFailed is returned when the install file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse install file")

	// ErrConfigInvalid is returned when the install file does not match its schema.
	ErrConfigInvalid = zerr.New("invalid install file")

	// ErrNotARepository is returned when the working directory is not inside a git repository.
	ErrNotARepository = zerr.New("not a git repository")

	// ErrNoCommits is returned when the repository has no commit at HEAD.
	ErrNoCommits = zerr.New("repository has no commits")

	// ErrPlatformDetectFailed is returned when host platform detection fails.
	ErrPlatformDetectFailed = zerr.New("failed to detect platform")

	// ErrInstallationFailed is the headline for any fatal pipeline failure.
	ErrInstallationFailed = zerr.New("Installation failed")

	// ErrInstallationCancelled is the headline when the user interrupts the installer.
	ErrInstallationCancelled = zerr.New("Installation cancelled by user")
)
