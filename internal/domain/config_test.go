package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, Duration(2*time.Second), cfg.Interval)
	assert.Equal(t, Duration(3*time.Second), cfg.DialTimeout)
	assert.Equal(t, Duration(0), cfg.Timeout)
	assert.False(t, cfg.Quiet)
}

func TestDuration_UnmarshalText(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalText([]byte("2s")))
	assert.Equal(t, Duration(2*time.Second), d)

	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, Duration(90*time.Second), d)

	assert.Error(t, d.UnmarshalText([]byte("2 seconds")))
	assert.Error(t, d.UnmarshalText([]byte("")))
}

func TestDuration_MarshalText(t *testing.T) {
	text, err := Duration(2 * time.Second).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2s", string(text))
}
