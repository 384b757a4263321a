package golang_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/darkstorage/install/internal/adapters/golang"
	"github.com/darkstorage/install/internal/core/domain"
	"github.com/darkstorage/install/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestToolchain_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	toolchain := golang.NewToolchain(executor, &bytes.Buffer{}, &bytes.Buffer{})

	executor.EXPECT().
		Output(gomock.Any(), domain.NewCommand("go", "version")).
		Return(domain.CommandResult{Success: true, Stdout: "go version go1.25.3 linux/amd64"})

	version, err := toolchain.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "go version go1.25.3 linux/amd64", version)
	assert.Equal(t, "go", toolchain.Executable())
}

func TestToolchain_Version_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	toolchain := golang.NewToolchain(executor, &bytes.Buffer{}, &bytes.Buffer{})

	executor.EXPECT().
		Output(gomock.Any(), domain.NewCommand("go", "version")).
		Return(domain.CommandResult{Success: false, ExitCode: 2, Stderr: "broken"})

	_, err := toolchain.Version(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrToolchainVersionFailed.Error())
}

func TestToolchain_DownloadDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	toolchain := golang.NewToolchain(executor, stdout, stderr)

	executor.EXPECT().
		Execute(gomock.Any(), domain.NewCommand("go", "mod", "download"), stdout, stderr).
		Return(nil)

	require.NoError(t, toolchain.DownloadDependencies(context.Background()))
}

func TestToolchain_CleanCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	toolchain := golang.NewToolchain(executor, &bytes.Buffer{}, &bytes.Buffer{})

	failure := errors.New("exit status 1")
	executor.EXPECT().
		Execute(gomock.Any(), domain.NewCommand("go", "clean", "-cache", "-modcache", "-testcache"), gomock.Any(), gomock.Any()).
		Return(failure)

	assert.ErrorIs(t, toolchain.CleanCaches(context.Background()), failure)
}

func TestToolchain_Build(t *testing.T) {
	release := domain.ReleaseProfile{Metadata: domain.BuildMetadata{
		Version: "v0.4.0-2-gabc1234",
		Commit:  "abc1234",
		Date:    "2026-10-15T08:00:00Z",
		BuiltBy: "local",
	}}

	tests := []struct {
		name     string
		profile  domain.BuildProfile
		expected []string
	}{
		{
			name:    "release",
			profile: release,
			expected: []string{
				"build",
				"-ldflags=-s -w" +
					" -X github.com/darkstorage/cli/cmd.Version=v0.4.0-2-gabc1234" +
					" -X github.com/darkstorage/cli/cmd.Commit=abc1234" +
					" -X github.com/darkstorage/cli/cmd.Date=2026-10-15T08:00:00Z" +
					" -X github.com/darkstorage/cli/cmd.BuiltBy=local",
				"-o", "darkstorage", "main.go",
			},
		},
		{
			name:     "debug",
			profile:  domain.DebugProfile{},
			expected: []string{"build", "-gcflags=all=-N -l", "-o", "darkstorage", "main.go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			executor := mocks.NewMockExecutor(ctrl)
			toolchain := golang.NewToolchain(executor, &bytes.Buffer{}, &bytes.Buffer{})

			executor.EXPECT().
				Execute(gomock.Any(), domain.NewCommand("go", tt.expected...), gomock.Any(), gomock.Any()).
				Return(nil)

			err := toolchain.Build(context.Background(), tt.profile, domain.DefaultVersionPackage, "main.go", "darkstorage")
			require.NoError(t, err)
		})
	}
}
