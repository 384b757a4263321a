package ports

import (
	"context"

	"github.com/darkstorage/install/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating stage spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
	// Timings returns the finished stages in completion order.
	Timings() []domain.StageTiming
	// Shutdown flushes and releases the tracer.
	Shutdown(ctx context.Context) error
}

// Span represents one running stage.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
