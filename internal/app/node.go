package app

import (
	"context"
	"os"

	"github.com/darkstorage/install/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/darkstorage/install/internal/adapters/escalate"  //nolint:depguard // Wired in app layer
	"github.com/darkstorage/install/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/darkstorage/install/internal/adapters/git"       //nolint:depguard // Wired in app layer
	"github.com/darkstorage/install/internal/adapters/golang"    //nolint:depguard // Wired in app layer
	"github.com/darkstorage/install/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/darkstorage/install/internal/adapters/platform"  //nolint:depguard // Wired in app layer
	"github.com/darkstorage/install/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"github.com/darkstorage/install/internal/adapters/shellenv"  //nolint:depguard // Wired in app layer
	"github.com/darkstorage/install/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/darkstorage/install/internal/core/ports"
	"github.com/grindlemire/graft"
	"go.trai.ch/zerr"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			shell.NodeID,
			golang.NodeID,
			git.NodeID,
			fs.FileSystemNodeID,
			fs.PathFinderNodeID,
			escalate.NodeID,
			platform.NodeID,
			shellenv.NodeID,
			config.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	var deps Deps
	var err error

	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if deps.Executor, err = graft.Dep[ports.Executor](ctx); err != nil {
		return nil, err
	}
	if deps.Toolchain, err = graft.Dep[ports.Toolchain](ctx); err != nil {
		return nil, err
	}
	if deps.VCS, err = graft.Dep[ports.VCS](ctx); err != nil {
		return nil, err
	}
	if deps.FileSystem, err = graft.Dep[ports.FileSystem](ctx); err != nil {
		return nil, err
	}
	if deps.PathFinder, err = graft.Dep[ports.PathFinder](ctx); err != nil {
		return nil, err
	}
	if deps.Escalator, err = graft.Dep[ports.Escalator](ctx); err != nil {
		return nil, err
	}
	if deps.Platform, err = graft.Dep[ports.PlatformDetector](ctx); err != nil {
		return nil, err
	}
	if deps.PathAdvisor, err = graft.Dep[ports.PathAdvisor](ctx); err != nil {
		return nil, err
	}
	if deps.ConfigLoader, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Tracer, err = graft.Dep[ports.Tracer](ctx); err != nil {
		return nil, err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	return New(deps, os.Stdout).WithWorkDir(workDir), nil
}
