package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slnver/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/slnver/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/slnver/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/slnver/internal/adapters/sln"     //nolint:depguard // Wired in app layer
	"go.trai.ch/slnver/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/slnver/internal/core/ports"
	"go.trai.ch/slnver/internal/engine/versions"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			sln.NodeID,
			versions.NodeID,
			watcher.WatcherNodeID,
			watcher.DigestCacheNodeID,
			fs.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	solutions, err := graft.Dep[ports.SolutionStore](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*versions.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	fileWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	digests, err := graft.Dep[*watcher.DigestCache](ctx)
	if err != nil {
		return nil, err
	}

	fileSystem, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, solutions, resolver, fileWatcher, digests, fileSystem, log), nil
}
