package fs

import (
	"context"
	"os"
	"runtime"

	"github.com/darkstorage/install/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// FileSystemNodeID is the unique identifier for the filesystem Graft node.
	FileSystemNodeID graft.ID = "adapter.fs"
	// PathFinderNodeID is the unique identifier for the path finder Graft node.
	PathFinderNodeID graft.ID = "adapter.fs.pathfinder"
)

func init() {
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.FileSystem, error) {
			return NewFileSystem(), nil
		},
	})

	graft.Register(graft.Node[ports.PathFinder]{
		ID:        PathFinderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.PathFinder, error) {
			return NewPathFinder(os.Getenv, runtime.GOOS), nil
		},
	})
}
