// Package probe provides TCP reachability probing.
package probe

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/containerkit/waitfor/internal/domain"
)

// Client implements domain.Prober using plain TCP connection attempts.
// The probe carries no protocol awareness; accepting the connection is
// the entire readiness signal.
type Client struct {
	dialTimeout time.Duration
}

// NewClient creates a prober with the given per-attempt dial timeout.
// A non-positive timeout falls back to the default bound so a stuck
// attempt cannot block the loop on the OS connect timeout.
func NewClient(dialTimeout time.Duration) *Client {
	if dialTimeout <= 0 {
		dialTimeout = domain.DefaultDialTimeout
	}
	return &Client{dialTimeout: dialTimeout}
}

// Ensure Client implements domain.Prober interface.
var _ domain.Prober = (*Client)(nil)

// Probe attempts a single TCP connection to the target. The connection
// is a liveness check only and is closed as soon as it is established.
func (c *Client) Probe(ctx context.Context, target domain.Target) error {
	dialer := net.Dialer{Timeout: c.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", target.Addr())
	if err != nil {
		return fmt.Errorf("dial %s: %w", target, err)
	}
	return conn.Close()
}
