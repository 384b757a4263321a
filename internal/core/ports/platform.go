package ports

import (
	"context"

	"github.com/darkstorage/install/internal/core/domain"
)

// PlatformDetector reports the host platform.
//
//go:generate mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type PlatformDetector interface {
	Detect(ctx context.Context) (domain.Platform, error)
}

// PathAdvisor suggests how to put a directory on the user's search path.
type PathAdvisor interface {
	// Hint returns a shell-specific instruction adding dir to PATH.
	Hint(dir string) string
}
