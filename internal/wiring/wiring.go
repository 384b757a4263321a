// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/darkstorage/install/internal/adapters/config"
	_ "github.com/darkstorage/install/internal/adapters/escalate"
	_ "github.com/darkstorage/install/internal/adapters/fs"
	_ "github.com/darkstorage/install/internal/adapters/git"
	_ "github.com/darkstorage/install/internal/adapters/golang"
	_ "github.com/darkstorage/install/internal/adapters/logger"
	_ "github.com/darkstorage/install/internal/adapters/platform"
	_ "github.com/darkstorage/install/internal/adapters/shell"
	_ "github.com/darkstorage/install/internal/adapters/shellenv"
	_ "github.com/darkstorage/install/internal/adapters/telemetry"
	// Register app nodes.
	_ "github.com/darkstorage/install/internal/app"
)
