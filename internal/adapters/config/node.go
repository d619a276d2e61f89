package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slnver/internal/adapters/fs"
	"go.trai.ch/slnver/internal/adapters/logger"
	"go.trai.ch/slnver/internal/core/ports"
	"go.trai.ch/slnver/internal/platform"
)

// NodeID is the unique identifier for the configuration loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, fs.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log, fsys, platform.RestoreCommand()), nil
		},
	})
}
