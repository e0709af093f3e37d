// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/containerkit/waitfor/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads gate configuration from a TOML file.
type Loader struct {
	path string // Path to the config file; empty disables file loading
}

// NewLoader creates a Loader using the default config path.
// WAITFOR_CONFIG overrides the location; otherwise the file lives at
// $XDG_CONFIG_HOME/waitfor/config.toml.
func NewLoader() *Loader {
	return &Loader{path: defaultConfigPath()}
}

// NewLoaderWithPath creates a Loader reading from a specific file.
// This is useful for testing.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path}
}

// defaultConfigPath returns the default config file location.
func defaultConfigPath() string {
	if path := os.Getenv("WAITFOR_CONFIG"); path != "" {
		return path
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(domain.GlobalConfigDir(configHome), domain.ConfigFileName)
}

// Load returns the configuration merged over defaults. A missing file
// is not an error; the defaults are returned as-is.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	if l.path == "" {
		return base, nil
	}

	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file domain.Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.path, err)
	}

	return mergeConfigs(base, &file), nil
}

// mergeConfigs overlays set values from overlay onto base.
func mergeConfigs(base, overlay *domain.Config) *domain.Config {
	merged := *base
	if overlay.Interval > 0 {
		merged.Interval = overlay.Interval
	}
	if overlay.Timeout > 0 {
		merged.Timeout = overlay.Timeout
	}
	if overlay.DialTimeout > 0 {
		merged.DialTimeout = overlay.DialTimeout
	}
	if overlay.Quiet {
		merged.Quiet = true
	}
	return &merged
}
