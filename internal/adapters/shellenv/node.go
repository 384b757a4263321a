package shellenv

import (
	"context"
	"os"

	"github.com/darkstorage/install/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the PATH advisor Graft node.
const NodeID graft.ID = "adapter.shellenv"

func init() {
	graft.Register(graft.Node[ports.PathAdvisor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.PathAdvisor, error) {
			return NewAdvisor(os.Getenv), nil
		},
	})
}
