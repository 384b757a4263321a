// Package main is the entry point for the Dark Storage CLI installer.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/darkstorage/install/cmd/darkstorage-install/commands"
	"github.com/darkstorage/install/internal/app"
	"github.com/darkstorage/install/internal/core/domain"
	_ "github.com/darkstorage/install/internal/wiring"
	"github.com/grindlemire/graft"
	"go.trai.ch/zerr"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, resolveComponents)
	cancel()
	os.Exit(code)
}

// componentsProvider builds the application components for one run.
type componentsProvider func(ctx context.Context) (*app.Components, error)

func resolveComponents(ctx context.Context) (*app.Components, error) {
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	return components, err
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, provide componentsProvider) int {
	// 1. Initialize application components
	components, err := provide(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return 1
	}
	components.Logger.SetOutput(stderr)

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			_, _ = io.WriteString(stdout, "\n")
			components.Logger.Error(domain.ErrInstallationCancelled)
			return 1
		}
		components.Logger.Error(zerr.Wrap(err, domain.ErrInstallationFailed.Error()))
		return 1
	}
	return 0
}
