package git

import (
	"context"
	"os"

	"github.com/darkstorage/install/internal/adapters/shell"
	"github.com/darkstorage/install/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the VCS Graft node.
const NodeID graft.ID = "adapter.vcs"

func init() {
	graft.Register(graft.Node[ports.VCS]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.VCS, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(".", executor, os.Stdout, os.Stderr), nil
		},
	})
}
