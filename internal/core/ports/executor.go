// Package ports defines the core interfaces for the installer.
package ports

import (
	"context"
	"io"

	"github.com/darkstorage/install/internal/core/domain"
)

// Executor runs external processes.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command to completion, streaming its output to stdout and stderr.
	//
	// It returns an error wrapping domain.ErrCommandFailed when the command exits
	// with a non-zero status.
	Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error

	// Output runs the command to completion and captures its output.
	// A failed command is reported through CommandResult.Success, never as a panic.
	Output(ctx context.Context, cmd domain.Command) domain.CommandResult
}
