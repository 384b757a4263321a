package domain

import (
	"fmt"
	"strings"
)

const (
	// BinaryName is the base name of the Dark Storage CLI executable.
	BinaryName = "darkstorage"

	bytesPerMiB = 1024 * 1024
)

// ArtifactName returns the executable file name for the given GOOS value.
func ArtifactName(goos string) string {
	if IsWindows(goos) {
		return BinaryName + ".exe"
	}
	return BinaryName
}

// Artifact is a compiled executable on disk.
type Artifact struct {
	Path string
	Size int64
}

// SizeMiB returns the artifact size in mebibytes.
func (a Artifact) SizeMiB() float64 {
	return float64(a.Size) / bytesPerMiB
}

// FormatSize renders the size to one decimal place, e.g. "12.3 MB".
func (a Artifact) FormatSize() string {
	return fmt.Sprintf("%.1f MB", a.SizeMiB())
}

// IsWindows reports whether goos names a Windows target.
func IsWindows(goos string) bool {
	return strings.EqualFold(goos, "windows")
}
