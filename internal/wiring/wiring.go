// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/slnver/internal/adapters/config"
	_ "go.trai.ch/slnver/internal/adapters/dotnet"
	_ "go.trai.ch/slnver/internal/adapters/fs"
	_ "go.trai.ch/slnver/internal/adapters/logger"
	_ "go.trai.ch/slnver/internal/adapters/nuget"
	_ "go.trai.ch/slnver/internal/adapters/shell"
	_ "go.trai.ch/slnver/internal/adapters/sln"
	_ "go.trai.ch/slnver/internal/adapters/telemetry"
	_ "go.trai.ch/slnver/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/slnver/internal/app"
	_ "go.trai.ch/slnver/internal/engine/versions"
)
