// Package golang drives the Go toolchain that compiles the CLI.
package golang

import (
	"context"
	"io"

	"github.com/darkstorage/install/internal/core/domain"
	"github.com/darkstorage/install/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executable is the toolchain program name.
const Executable = "go"

var _ ports.Toolchain = (*Toolchain)(nil)

// Toolchain implements ports.Toolchain by running the go command.
type Toolchain struct {
	executor ports.Executor
	stdout   io.Writer
	stderr   io.Writer
}

// NewToolchain creates a Toolchain streaming long-running commands to stdout and stderr.
func NewToolchain(executor ports.Executor, stdout, stderr io.Writer) *Toolchain {
	return &Toolchain{
		executor: executor,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Executable returns the toolchain program name.
func (t *Toolchain) Executable() string {
	return Executable
}

// Version returns the output of "go version".
func (t *Toolchain) Version(ctx context.Context) (string, error) {
	cmd := domain.NewCommand(Executable, "version")
	result := t.executor.Output(ctx, cmd)
	if !result.Success {
		err := zerr.With(domain.ErrToolchainVersionFailed, "exit_code", result.ExitCode)
		if result.Stderr != "" {
			err = zerr.With(err, "stderr", result.Stderr)
		}
		return "", err
	}
	return result.Stdout, nil
}

// DownloadDependencies runs "go mod download".
func (t *Toolchain) DownloadDependencies(ctx context.Context) error {
	return t.executor.Execute(ctx, domain.NewCommand(Executable, "mod", "download"), t.stdout, t.stderr)
}

// Build compiles mainPackage into output. The profile contributes the
// compiler flags; release profiles inject their metadata into versionPackage.
func (t *Toolchain) Build(
	ctx context.Context,
	profile domain.BuildProfile,
	versionPackage, mainPackage, output string,
) error {
	return t.executor.Execute(ctx, domain.NewCommand(Executable, BuildArgs(profile, versionPackage, mainPackage, output)...), t.stdout, t.stderr)
}

// CleanCaches runs "go clean -cache -modcache -testcache".
func (t *Toolchain) CleanCaches(ctx context.Context) error {
	return t.executor.Execute(
		ctx,
		domain.NewCommand(Executable, "clean", "-cache", "-modcache", "-testcache"),
		t.stdout,
		t.stderr,
	)
}

// BuildArgs returns the arguments passed to the go command for a build.
func BuildArgs(profile domain.BuildProfile, versionPackage, mainPackage, output string) []string {
	flags := profile.BuildFlags(versionPackage)
	args := make([]string, 0, len(flags)+4)
	args = append(args, "build")
	args = append(args, flags...)
	return append(args, "-o", output, mainPackage)
}
