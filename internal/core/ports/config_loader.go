package ports

import "github.com/darkstorage/install/internal/core/domain"

// ConfigLoader defines the interface for loading the per-checkout install file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the install file from dir. A missing file yields the defaults.
	Load(dir string) (domain.ProjectConfig, error)
}
