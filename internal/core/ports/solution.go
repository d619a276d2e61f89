package ports

import "go.trai.ch/slnver/internal/core/domain"

// SolutionStore reads and writes solution files.
//
//go:generate mockgen -source=solution.go -destination=mocks/mock_solution.go -package=mocks
type SolutionStore interface {
	// Load parses the solution file at path. Project full paths are resolved
	// against the solution's directory.
	Load(path string) (*domain.Solution, error)

	// Save writes the solution back to its Path.
	Save(solution *domain.Solution) error
}
