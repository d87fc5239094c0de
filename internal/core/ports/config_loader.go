package ports

import "go.trai.ch/jackal/internal/core/domain"

// ConfigLoader loads the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. An empty path loads
	// the default filename from the working directory, where a missing
	// file is not an error; an explicitly given path must exist.
	Load(path string) (*domain.Config, error)
}
