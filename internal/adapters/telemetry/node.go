package telemetry

import (
	"context"

	"github.com/darkstorage/install/internal/core/ports"
	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Tracer, error) {
			tracer := NewOTelTracer(InstrumentationName)
			otel.SetTracerProvider(tracer.Provider())
			return tracer, nil
		},
	})
}
