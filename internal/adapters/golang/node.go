package golang

import (
	"context"
	"os"

	"github.com/darkstorage/install/internal/adapters/shell"
	"github.com/darkstorage/install/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the Go toolchain Graft node.
const NodeID graft.ID = "adapter.toolchain"

func init() {
	graft.Register(graft.Node[ports.Toolchain]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Toolchain, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewToolchain(executor, os.Stdout, os.Stderr), nil
		},
	})
}
