// Package telemetry records stage spans with OpenTelemetry.
package telemetry

import (
	"context"
	"slices"
	"sync"

	"github.com/darkstorage/install/internal/core/domain"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Bridge implements sdktrace.SpanProcessor and keeps a timing for every
// finished span.
type Bridge struct {
	mu      sync.Mutex
	timings []domain.StageTiming
}

// NewBridge returns a new Bridge.
func NewBridge() *Bridge {
	return &Bridge{}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd records the span's duration and failure status.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	timing := domain.StageTiming{
		Name:     s.Name(),
		Duration: s.EndTime().Sub(s.StartTime()),
		Failed:   s.Status().Code == codes.Error,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.timings = append(b.timings, timing)
}

// Timings returns the recorded timings in completion order.
func (b *Bridge) Timings() []domain.StageTiming {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.timings)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
