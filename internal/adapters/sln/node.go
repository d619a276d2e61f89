package sln

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slnver/internal/adapters/fs"
	"go.trai.ch/slnver/internal/core/ports"
)

// NodeID is the unique identifier for the solution store Graft node.
const NodeID graft.ID = "adapter.sln"

func init() {
	graft.Register(graft.Node[ports.SolutionStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.SolutionStore, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(fsys), nil
		},
	})
}
