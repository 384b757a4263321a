package domain

import "strings"

// Platform describes the host the installer runs on.
type Platform struct {
	OS   string
	Arch string
	// Distro, Family and Version are only populated on Linux when detection succeeds.
	Distro  string
	Family  string
	Version string
}

// IsWindows reports whether the host is a Windows-family system.
func (p Platform) IsWindows() bool {
	return IsWindows(p.OS)
}

// String renders the platform, e.g. "ubuntu 24.04 (linux/amd64)".
func (p Platform) String() string {
	target := p.OS + "/" + p.Arch
	if p.Distro == "" {
		return target
	}
	name := strings.TrimSpace(p.Distro + " " + p.Version)
	return name + " (" + target + ")"
}
