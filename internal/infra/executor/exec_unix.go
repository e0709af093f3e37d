//go:build unix

package executor

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/containerkit/waitfor/internal/domain"
)

// Exec replaces the current process image with the command via execve.
// The command keeps this process's PID, environment and standard
// streams, so signals and the exit code belong to it directly. Exec
// only returns on failure.
func (c *Client) Exec(cmd domain.Command) error {
	path, err := exec.LookPath(cmd.Program())
	if err != nil {
		return fmt.Errorf("look up %q: %w", cmd.Program(), err)
	}

	if err := syscall.Exec(path, cmd, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
