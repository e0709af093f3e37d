//go:build windows

package executor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"

	"github.com/containerkit/waitfor/internal/domain"
)

// Exec runs the command as a child process with inherited standard
// streams, forwards interrupt signals to it, and reports its exit code
// through *domain.ExitError. Windows has no execve equivalent, so the
// wrapper stays alive as the parent; orchestrators relying on PID-1
// semantics see the wrapper, not the command.
func (c *Client) Exec(cmd domain.Command) error {
	child := exec.Command(cmd.Program(), cmd.Args()...) // #nosec G204 -- the command is the user's own argv
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	if err := child.Start(); err != nil {
		return fmt.Errorf("start %q: %w", cmd.Program(), err)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	defer signal.Stop(sigc)
	go func() {
		for sig := range sigc {
			_ = child.Process.Signal(sig)
		}
	}()

	err := child.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.ExitError{Code: exitErr.ExitCode()}
	}
	if err != nil {
		return fmt.Errorf("wait for %q: %w", cmd.Program(), err)
	}
	return &domain.ExitError{Code: 0}
}
