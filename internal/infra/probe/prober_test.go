package probe

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/containerkit/waitfor/internal/domain"
)

func TestClient_Probe_Listening(t *testing.T) {
	// Setup: a real listener on an ephemeral port
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	target, err := domain.ParseTarget(ln.Addr().String())
	require.NoError(t, err)

	client := NewClient(time.Second)

	// Execute
	err = client.Probe(context.Background(), target)

	// Assert
	assert.NoError(t, err)
}

func TestClient_Probe_Refused(t *testing.T) {
	// Setup: grab a free port, then close it so nothing is listening
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	target, err := domain.ParseTarget(ln.Addr().String())
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	client := NewClient(time.Second)

	// Execute
	err = client.Probe(context.Background(), target)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial "+target.String())
}

func TestClient_Probe_Canceled(t *testing.T) {
	// Setup
	client := NewClient(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Execute
	err := client.Probe(ctx, domain.Target{Host: "db", Port: 5432})

	// Assert
	assert.Error(t, err)
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	// A non-positive timeout falls back to the default bound
	client := NewClient(0)
	assert.Equal(t, domain.DefaultDialTimeout, client.dialTimeout)
}
