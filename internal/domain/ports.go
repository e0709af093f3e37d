package domain

import (
	"context"
	"time"
)

// Prober checks whether a target accepts TCP connections.
type Prober interface {
	// Probe attempts a single connection to the target. A nil return
	// means the target accepted a connection; the probe socket is
	// closed before returning in either case.
	Probe(ctx context.Context, target Target) error
}

// CommandExecutor hands the process off to the gated command.
type CommandExecutor interface {
	// Exec replaces the current process image with the command,
	// preserving argv, environment and standard streams. It only
	// returns on failure. On platforms without an exec primitive the
	// command runs as a child and Exec returns an *ExitError carrying
	// its exit code.
	Exec(cmd Command) error
}

// ConfigLoader loads the gate configuration.
type ConfigLoader interface {
	// Load returns the configuration merged over defaults.
	Load() (*Config, error)
}

// Clock abstracts time so the wait loop can be tested without real delays.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Sleep blocks for d or until ctx is cancelled, in which case it
	// returns ctx.Err().
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Sleep waits for d, returning early if the context is cancelled.
func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
