// Package executor hands the process off to the gated command.
package executor

import (
	"github.com/containerkit/waitfor/internal/domain"
)

// Client implements domain.CommandExecutor. The actual handoff is
// platform-specific; see exec_unix.go and exec_windows.go.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)
