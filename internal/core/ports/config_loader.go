package ports

import "go.trai.ch/sack/internal/core/domain"

// ConfigLoader defines the interface for loading the sack configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers sack.yaml by walking up from cwd and returns the resolved configuration.
	Load(cwd string) (*domain.Config, error)

	// LoadFile reads the configuration from an explicit path.
	LoadFile(path string) (*domain.Config, error)

	// DiscoverRoot walks up from cwd to find the directory containing sack.yaml.
	DiscoverRoot(cwd string) (string, error)
}
