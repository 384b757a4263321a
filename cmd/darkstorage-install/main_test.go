package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/darkstorage/install/internal/adapters/logger"
	"github.com/darkstorage/install/internal/app"
	"github.com/darkstorage/install/internal/core/domain"
	"github.com/darkstorage/install/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func provideWith(loader *mocks.MockConfigLoader, tracer *mocks.MockTracer) componentsProvider {
	return func(context.Context) (*app.Components, error) {
		a := app.New(app.Deps{ConfigLoader: loader, Tracer: tracer}, io.Discard)
		return &app.Components{App: a, Logger: logger.New()}, nil
	}
}

func TestRun_ProviderError(t *testing.T) {
	var stderr bytes.Buffer
	provide := func(context.Context) (*app.Components, error) {
		return nil, errors.New("node adapter.vcs failed")
	}

	code := run(context.Background(), nil, io.Discard, &stderr, provide)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: node adapter.vcs failed\n", stderr.String())
}

func TestRun_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	var stdout bytes.Buffer

	code := run(context.Background(), []string{"--help"}, &stdout, io.Discard,
		provideWith(mocks.NewMockConfigLoader(ctrl), mocks.NewMockTracer(ctrl)))

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "--install-dir")
}

func TestRun_InstallFailure(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	tracer := mocks.NewMockTracer(ctrl)

	cause := zerr.Wrap(errors.New("additional properties 'mian' not allowed"), domain.ErrConfigInvalid.Error())
	loader.EXPECT().Load(".").Return(domain.ProjectConfig{}, cause)
	tracer.EXPECT().Shutdown(gomock.Any()).Return(nil)

	var stderr bytes.Buffer
	code := run(context.Background(), []string{}, io.Discard, &stderr, provideWith(loader, tracer))

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Installation failed")
	assert.Contains(t, stderr.String(), domain.ErrConfigInvalid.Error())
	assert.NotContains(t, stderr.String(), "cancelled")
}

func TestRun_Cancelled(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	tracer := mocks.NewMockTracer(ctrl)

	loader.EXPECT().Load(".").Return(domain.DefaultProjectConfig(), nil)
	tracer.EXPECT().Shutdown(gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stderr bytes.Buffer
	code := run(ctx, []string{"--fresh"}, io.Discard, &stderr, provideWith(loader, tracer))

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Installation cancelled by user")
	assert.NotContains(t, stderr.String(), "Installation failed")
}

func TestRun_UnknownFlag(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	var stderr bytes.Buffer

	code := run(context.Background(), []string{"--bogus"}, io.Discard, &stderr,
		provideWith(mocks.NewMockConfigLoader(ctrl), mocks.NewMockTracer(ctrl)))

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unknown flag: --bogus")
}
