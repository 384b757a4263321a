package ports

import "io"

// Logger defines the interface for operator-facing progress output.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info reports a step that is starting.
	Info(msg string)
	// Success reports a step that finished.
	Success(msg string)
	// Warn reports an advisory condition.
	Warn(msg string)
	// Error reports a failure with its cause chain.
	Error(err error)
	// SetOutput redirects log output.
	SetOutput(w io.Writer)
}
