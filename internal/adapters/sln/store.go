package sln

import (
	"go.trai.ch/slnver/internal/core/domain"
	"go.trai.ch/slnver/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SolutionStore = (*Store)(nil)

// Store implements ports.SolutionStore on top of a file system.
type Store struct {
	fs ports.FileSystem
}

// NewStore creates a new solution store.
func NewStore(fs ports.FileSystem) *Store {
	return &Store{fs: fs}
}

// Load reads and parses the solution file at path.
func (s *Store) Load(path string) (*domain.Solution, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSolutionReadFailed.Error()), "path", path)
	}
	return Parse(path, data)
}

// Save writes the solution back to its path.
func (s *Store) Save(solution *domain.Solution) error {
	if err := s.fs.WriteFile(solution.Path, Format(solution), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSolutionWriteFailed.Error()), "path", solution.Path)
	}
	return nil
}
