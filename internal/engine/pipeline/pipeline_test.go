package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/darkstorage/install/internal/adapters/telemetry"
	"github.com/darkstorage/install/internal/core/ports"
	"github.com/darkstorage/install/internal/core/ports/mocks"
	"github.com/darkstorage/install/internal/engine/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func recordingStage(name string, order *[]string, err error) pipeline.Stage {
	return pipeline.Stage{
		Name: name,
		Run: func(context.Context) error {
			*order = append(*order, name)
			return err
		},
	}
}

func TestRunner_RunsInOrder(t *testing.T) {
	tracer := telemetry.NewOTelTracer("test")
	runner := pipeline.NewRunner(tracer)

	var order []string
	err := runner.Run(context.Background(), []pipeline.Stage{
		recordingStage("one", &order, nil),
		recordingStage("two", &order, nil),
		recordingStage("three", &order, nil),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, order)

	timings := tracer.Timings()
	require.Len(t, timings, 3)
	assert.Equal(t, "one", timings[0].Name)
	assert.Equal(t, "three", timings[2].Name)
}

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	tracer := telemetry.NewOTelTracer("test")
	runner := pipeline.NewRunner(tracer)
	failure := errors.New("boom")

	var order []string
	err := runner.Run(context.Background(), []pipeline.Stage{
		recordingStage("one", &order, nil),
		recordingStage("two", &order, failure),
		recordingStage("three", &order, nil),
	})

	require.ErrorIs(t, err, failure)
	assert.Equal(t, []string{"one", "two"}, order)

	timings := tracer.Timings()
	require.Len(t, timings, 2)
	assert.False(t, timings[0].Failed)
	assert.True(t, timings[1].Failed)
}

func TestRunner_SkipsDisabledStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	tracer.EXPECT().Start(gomock.Any(), "enabled").DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		},
	)
	span.EXPECT().End()

	var order []string
	disabled := recordingStage("disabled", &order, nil)
	disabled.Enabled = func() bool { return false }
	enabled := recordingStage("enabled", &order, nil)
	enabled.Enabled = func() bool { return true }

	err := pipeline.NewRunner(tracer).Run(context.Background(), []pipeline.Stage{disabled, enabled})
	require.NoError(t, err)
	assert.Equal(t, []string{"enabled"}, order)
}

func TestRunner_Cancelled(t *testing.T) {
	tracer := telemetry.NewOTelTracer("test")
	ctx, cancel := context.WithCancel(context.Background())

	var order []string
	err := pipeline.NewRunner(tracer).Run(ctx, []pipeline.Stage{
		{
			Name: "interrupted",
			Run: func(context.Context) error {
				order = append(order, "interrupted")
				cancel()
				return errors.New("signal: killed")
			},
		},
		recordingStage("never", &order, nil),
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"interrupted"}, order)
}

func TestRunner_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var order []string
	err := pipeline.NewRunner(telemetry.NewOTelTracer("test")).Run(ctx, []pipeline.Stage{
		recordingStage("never", &order, nil),
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, order)
}
