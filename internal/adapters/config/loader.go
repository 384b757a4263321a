// Package config loads the optional per-checkout install file.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/darkstorage/install/internal/core/domain"
	"github.com/darkstorage/install/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads .darkstorage-install.yaml from dir. Keys absent from the file
// keep their defaults; a missing file yields the defaults unchanged.
func (l *Loader) Load(dir string) (domain.ProjectConfig, error) {
	cfg := domain.DefaultProjectConfig()
	path := filepath.Join(dir, domain.ProjectFileName)

	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if errors.Is(err, iofs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	if doc == nil {
		return cfg, nil
	}

	if err := validate(doc); err != nil {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", path)
	}

	var file Installfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	overlay(&cfg.MainPackage, file.Main)
	overlay(&cfg.VersionPackage, file.VersionPackage)
	overlay(&cfg.Remote, file.Remote)
	overlay(&cfg.Branch, file.Branch)
	overlay(&cfg.BuiltBy, file.BuiltBy)

	return cfg, nil
}

func overlay(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
