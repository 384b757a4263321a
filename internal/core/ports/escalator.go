package ports

import (
	"context"

	"github.com/darkstorage/install/internal/core/domain"
)

// Escalator runs commands with elevated filesystem permissions.
//
//go:generate mockgen -source=escalator.go -destination=mocks/mock_escalator.go -package=mocks
type Escalator interface {
	// Available reports whether an escalation helper exists on the search path.
	Available() bool

	// Run executes cmd with elevated permissions.
	Run(ctx context.Context, cmd domain.Command) error
}
