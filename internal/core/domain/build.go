package domain

import (
	"fmt"
	"time"
)

const (
	// FallbackVersion is embedded when no tag description is available.
	FallbackVersion = "dev"
	// FallbackCommit is embedded when the commit hash cannot be read.
	FallbackCommit = "unknown"
	// DefaultBuiltBy marks binaries produced by this installer.
	DefaultBuiltBy = "local"
	// BuildDateLayout is the UTC timestamp layout embedded as the build date.
	BuildDateLayout = "2006-01-02T15:04:05Z"
)

// BuildMetadata is the version information injected into a release artifact.
type BuildMetadata struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

// NewBuildMetadata fills in fallbacks for values the repository could not provide
// and formats the build time in UTC.
func NewBuildMetadata(version, commit string, builtAt time.Time, builtBy string) BuildMetadata {
	if version == "" {
		version = FallbackVersion
	}
	if commit == "" {
		commit = FallbackCommit
	}
	if builtBy == "" {
		builtBy = DefaultBuiltBy
	}
	return BuildMetadata{
		Version: version,
		Commit:  commit,
		Date:    builtAt.UTC().Format(BuildDateLayout),
		BuiltBy: builtBy,
	}
}

// BuildKind tags the two build variants.
type BuildKind int

const (
	// KindRelease strips symbols and injects version metadata.
	KindRelease BuildKind = iota
	// KindDebug disables optimisation and inlining and keeps symbols.
	KindDebug
)

// String returns the name of the build kind.
func (k BuildKind) String() string {
	switch k {
	case KindRelease:
		return "release"
	case KindDebug:
		return "debug"
	default:
		return fmt.Sprintf("BuildKind(%d)", int(k))
	}
}

// BuildProfile is one of ReleaseProfile or DebugProfile.
// The two variants own disjoint compiler flag sets; there is no way to layer one
// onto the other.
type BuildProfile interface {
	// Kind reports which variant this is.
	Kind() BuildKind
	// BuildFlags returns the compiler flags for this variant. versionPackage is the
	// import path holding the Version, Commit, Date and BuiltBy variables.
	BuildFlags(versionPackage string) []string

	sealed()
}

// ReleaseProfile strips the symbol table and DWARF data and injects Metadata.
type ReleaseProfile struct {
	Metadata BuildMetadata
}

// Kind implements BuildProfile.
func (ReleaseProfile) Kind() BuildKind { return KindRelease }

// BuildFlags implements BuildProfile.
func (p ReleaseProfile) BuildFlags(versionPackage string) []string {
	ldflags := "-s -w" +
		" -X " + versionPackage + ".Version=" + p.Metadata.Version +
		" -X " + versionPackage + ".Commit=" + p.Metadata.Commit +
		" -X " + versionPackage + ".Date=" + p.Metadata.Date +
		" -X " + versionPackage + ".BuiltBy=" + p.Metadata.BuiltBy
	return []string{"-ldflags=" + ldflags}
}

func (ReleaseProfile) sealed() {}

// DebugProfile disables optimisation and inlining for step-through debugging.
// It carries no metadata.
type DebugProfile struct{}

// Kind implements BuildProfile.
func (DebugProfile) Kind() BuildKind { return KindDebug }

// BuildFlags implements BuildProfile.
func (DebugProfile) BuildFlags(string) []string {
	return []string{"-gcflags=all=-N -l"}
}

func (DebugProfile) sealed() {}
