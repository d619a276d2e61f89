package ports

import "go.trai.ch/slnver/internal/core/domain"

// LockFileReader parses generated project assets files.
//
//go:generate mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks
type LockFileReader interface {
	// Read parses the assets file at path.
	Read(path string) (*domain.LockFile, error)
}
