// Package pipeline runs installer stages one after another.
package pipeline

import (
	"context"

	"github.com/darkstorage/install/internal/core/ports"
)

// Stage is one step of the installation.
type Stage struct {
	// Name identifies the stage in spans and error metadata.
	Name string
	// Enabled reports whether the stage should run. Nil means always.
	Enabled func() bool
	// Run performs the stage.
	Run func(ctx context.Context) error
}

// Runner executes stages strictly in order and stops at the first failure.
type Runner struct {
	tracer ports.Tracer
}

// NewRunner creates a new Runner recording a span per executed stage.
func NewRunner(tracer ports.Tracer) *Runner {
	return &Runner{tracer: tracer}
}

// Run executes the enabled stages in order. Skipped stages produce no span.
// When ctx is cancelled the context error is returned instead of the
// failing stage's error, so callers can tell interruption from failure.
func (r *Runner) Run(ctx context.Context, stages []Stage) error {
	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return err
		}

		if stage.Enabled != nil && !stage.Enabled() {
			continue
		}

		if err := r.runStage(ctx, stage); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return err
		}
	}
	return nil
}

func (r *Runner) runStage(ctx context.Context, stage Stage) error {
	ctx, span := r.tracer.Start(ctx, stage.Name)
	defer span.End()

	if err := stage.Run(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
