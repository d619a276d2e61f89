package dotnet

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slnver/internal/adapters/shell"
	"go.trai.ch/slnver/internal/core/ports"
)

// NodeID is the unique identifier for the restorer Graft node.
const NodeID graft.ID = "adapter.dotnet"

func init() {
	graft.Register(graft.Node[ports.Restorer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Restorer, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewRestorer(executor), nil
		},
	})
}
