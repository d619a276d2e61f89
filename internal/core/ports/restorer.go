package ports

import (
	"context"
	"io"

	"go.trai.ch/slnver/internal/core/domain"
)

// Restorer performs a dependency restore for a single project.
//
//go:generate mockgen -source=restorer.go -destination=mocks/mock_restorer.go -package=mocks
type Restorer interface {
	// Restore restores the project file at projectPath, producing its assets
	// file as a side effect. Tool output is written to output.
	Restore(ctx context.Context, projectPath string, settings domain.RestoreSettings, output io.Writer) error
}
