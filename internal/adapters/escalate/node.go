package escalate

import (
	"context"
	"os"

	"github.com/darkstorage/install/internal/adapters/fs"
	"github.com/darkstorage/install/internal/adapters/shell"
	"github.com/darkstorage/install/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the escalator Graft node.
const NodeID graft.ID = "adapter.escalator"

func init() {
	graft.Register(graft.Node[ports.Escalator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.PathFinderNodeID},
		Run: func(ctx context.Context) (ports.Escalator, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			finder, err := graft.Dep[ports.PathFinder](ctx)
			if err != nil {
				return nil, err
			}
			return NewSudo(executor, finder, os.Stdout, os.Stderr), nil
		},
	})
}
