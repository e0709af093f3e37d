package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrInvalidTarget    = errors.New("invalid target")
	ErrNoTargets        = errors.New("no targets specified")
	ErrEmptyCommand     = errors.New("no command specified")
	ErrMissingSeparator = errors.New("missing '--' separator before command")
	ErrWaitTimeout      = errors.New("timed out waiting for targets")
)

// ExitError carries the exit code of the handed-off command for builds
// where the process image cannot be replaced and the command runs as a
// child instead. The wrapper must return this code verbatim.
type ExitError struct {
	Code int
}

// Error returns a human-readable description of the exit.
func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.Code)
}
