package ports

import "go.trai.ch/slnver/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from dir looking for the config file and returns the
	// resolved settings. A missing file yields the defaults.
	Load(dir string) (*domain.Settings, error)
}
