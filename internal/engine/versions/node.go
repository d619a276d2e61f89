package versions

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slnver/internal/adapters/dotnet"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slnver/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slnver/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slnver/internal/adapters/nuget"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slnver/internal/adapters/sln"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slnver/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slnver/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.versions"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			sln.NodeID,
			nuget.NodeID,
			dotnet.NodeID,
			fs.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			solutions, err := graft.Dep[ports.SolutionStore](ctx)
			if err != nil {
				return nil, err
			}

			lockFiles, err := graft.Dep[ports.LockFileReader](ctx)
			if err != nil {
				return nil, err
			}

			restorer, err := graft.Dep[ports.Restorer](ctx)
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

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(solutions, lockFiles, restorer, fileSystem, log, tracer), nil
		},
	})
}
