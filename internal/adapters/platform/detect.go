// Package platform detects the host operating system and Linux distribution.
package platform

import (
	"context"
	"runtime"
	"strings"

	"github.com/darkstorage/install/internal/core/domain"
	"github.com/darkstorage/install/internal/core/ports"
	"github.com/shirou/gopsutil/v4/host"
	"go.trai.ch/zerr"
)

// Canonical distribution families.
const (
	FamilyDebian  = "debian"
	FamilyRHEL    = "rhel"
	FamilyFedora  = "fedora"
	FamilySUSE    = "suse"
	FamilyArch    = "arch"
	FamilyAlpine  = "alpine"
	FamilyGentoo  = "gentoo"
	FamilyUnknown = "unknown"
)

var familyMap = map[string]string{
	"debian":   FamilyDebian,
	"ubuntu":   FamilyDebian,
	"rhel":     FamilyRHEL,
	"centos":   FamilyRHEL,
	"rocky":    FamilyRHEL,
	"fedora":   FamilyFedora,
	"suse":     FamilySUSE,
	"opensuse": FamilySUSE,
	"arch":     FamilyArch,
	"manjaro":  FamilyArch,
	"alpine":   FamilyAlpine,
	"gentoo":   FamilyGentoo,
}

// InfoFunc reports the distribution name, family and version.
type InfoFunc func(ctx context.Context) (platform, family, version string, err error)

var _ ports.PlatformDetector = (*Detector)(nil)

// Detector implements ports.PlatformDetector.
type Detector struct {
	goos   string
	goarch string
	info   InfoFunc
}

// NewDetector creates a Detector for the running host.
func NewDetector() *Detector {
	return NewDetectorWith(runtime.GOOS, runtime.GOARCH, host.PlatformInformationWithContext)
}

// NewDetectorWith creates a Detector with explicit host values.
func NewDetectorWith(goos, goarch string, info InfoFunc) *Detector {
	return &Detector{goos: goos, goarch: goarch, info: info}
}

// Detect returns the host platform. On Linux a failed distribution lookup
// leaves the distribution fields empty; only cancellation is an error.
func (d *Detector) Detect(ctx context.Context) (domain.Platform, error) {
	p := domain.Platform{
		OS:   d.goos,
		Arch: d.goarch,
	}

	if d.goos != "linux" {
		return p, nil
	}

	distro, family, version, err := d.info(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return domain.Platform{}, zerr.Wrap(ctx.Err(), domain.ErrPlatformDetectFailed.Error())
		}
		return p, nil
	}

	distro = normalize(distro)
	if distro == "" {
		return p, nil
	}

	p.Distro = distro
	p.Family = mapFamily(family)
	p.Version = normalize(version)
	return p, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func mapFamily(family string) string {
	if canonical, ok := familyMap[normalize(family)]; ok {
		return canonical
	}
	return FamilyUnknown
}
