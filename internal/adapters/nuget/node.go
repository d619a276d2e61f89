package nuget

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slnver/internal/adapters/fs"
	"go.trai.ch/slnver/internal/core/ports"
)

// NodeID is the unique identifier for the assets file reader Graft node.
const NodeID graft.ID = "adapter.nuget"

func init() {
	graft.Register(graft.Node[ports.LockFileReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.LockFileReader, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(fsys), nil
		},
	})
}
