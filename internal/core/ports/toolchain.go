package ports

import (
	"context"

	"github.com/darkstorage/install/internal/core/domain"
)

// Toolchain wraps the compiler toolchain used to build the CLI.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Executable returns the program name looked up by the requirement check.
	Executable() string

	// Version returns the toolchain's self-reported version string.
	Version(ctx context.Context) (string, error)

	// DownloadDependencies materialises the module's build dependencies.
	DownloadDependencies(ctx context.Context) error

	// Build compiles mainPackage into output using the given profile.
	Build(ctx context.Context, profile domain.BuildProfile, versionPackage, mainPackage, output string) error

	// CleanCaches purges the build, module and test caches.
	CleanCaches(ctx context.Context) error
}
