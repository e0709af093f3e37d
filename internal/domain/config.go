package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

// Default gate settings. The 2 second interval matches the classic
// shell-script gate this tool replaces.
const (
	DefaultInterval    = 2 * time.Second
	DefaultDialTimeout = 3 * time.Second
)

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "waitfor")
}

// Duration wraps time.Duration so configuration files can use Go
// duration strings such as "2s" or "500ms".
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText renders the duration in Go duration syntax.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config holds the gate settings. Values come from the configuration
// file and are overridden by command-line flags.
type Config struct {
	Interval    Duration `toml:"interval,omitempty"`     // Delay between probe rounds
	Timeout     Duration `toml:"timeout,omitempty"`      // Overall deadline (0 = wait forever)
	DialTimeout Duration `toml:"dial_timeout,omitempty"` // Per-attempt connection bound
	Quiet       bool     `toml:"quiet,omitempty"`        // Suppress waiting notices
}

// NewDefaultConfig returns the configuration matching the source gate's
// behavior: poll every 2 seconds with no overall deadline.
func NewDefaultConfig() *Config {
	return &Config{
		Interval:    Duration(DefaultInterval),
		DialTimeout: Duration(DefaultDialTimeout),
	}
}
