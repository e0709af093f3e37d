package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/containerkit/waitfor/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_MissingFile(t *testing.T) {
	// Setup
	loader := NewLoaderWithPath(filepath.Join(t.TempDir(), "nope.toml"))

	// Execute
	cfg, err := loader.Load()

	// Assert: missing file means defaults, not an error
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_FullFile(t *testing.T) {
	// Setup
	path := writeConfig(t, `
interval = "5s"
timeout = "1m"
dial_timeout = "500ms"
quiet = true
`)
	loader := NewLoaderWithPath(path)

	// Execute
	cfg, err := loader.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.Duration(5*time.Second), cfg.Interval)
	assert.Equal(t, domain.Duration(time.Minute), cfg.Timeout)
	assert.Equal(t, domain.Duration(500*time.Millisecond), cfg.DialTimeout)
	assert.True(t, cfg.Quiet)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	// Setup
	path := writeConfig(t, `interval = "10s"`)
	loader := NewLoaderWithPath(path)

	// Execute
	cfg, err := loader.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.Duration(10*time.Second), cfg.Interval)
	assert.Equal(t, domain.Duration(domain.DefaultDialTimeout), cfg.DialTimeout)
	assert.Equal(t, domain.Duration(0), cfg.Timeout)
	assert.False(t, cfg.Quiet)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	// Setup
	path := writeConfig(t, `interval = [whoops`)
	loader := NewLoaderWithPath(path)

	// Execute
	_, err := loader.Load()

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoader_Load_InvalidDuration(t *testing.T) {
	// Setup
	path := writeConfig(t, `interval = "2 seconds"`)
	loader := NewLoaderWithPath(path)

	// Execute
	_, err := loader.Load()

	// Assert
	assert.Error(t, err)
}

func TestDefaultConfigPath_EnvOverride(t *testing.T) {
	// Setup
	t.Setenv("WAITFOR_CONFIG", "/etc/waitfor/custom.toml")

	// Execute
	loader := NewLoader()

	// Assert
	assert.Equal(t, "/etc/waitfor/custom.toml", loader.path)
}

func TestDefaultConfigPath_XDG(t *testing.T) {
	// Setup
	t.Setenv("WAITFOR_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/home/user/.config")

	// Execute
	loader := NewLoader()

	// Assert
	assert.Equal(t, filepath.Join("/home/user/.config", "waitfor", domain.ConfigFileName), loader.path)
}
