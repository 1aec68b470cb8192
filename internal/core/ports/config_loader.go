package ports

import "go.trai.ch/jcdb/internal/core/domain"

// ConfigLoader defines the interface for loading the jcdb profile.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the profile for the given working directory.
	// A missing config file yields the default profile.
	Load(cwd string) (*domain.Profile, error)
}
