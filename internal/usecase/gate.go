package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/containerkit/waitfor/internal/domain"
)

// GateInput contains the parameters for gating on targets.
// Fields are ordered to minimize memory padding.
type GateInput struct {
	Targets  []domain.Target // Targets that must accept a connection (required)
	Command  domain.Command  // Command to hand off to once all targets are ready (required)
	Interval time.Duration   // Delay between probe rounds (default: 2s)
	Timeout  time.Duration   // Overall deadline (0 = wait forever)
	Quiet    bool            // Suppress waiting notices
}

// GateOutput contains the result of a gate run. On platforms with a
// real exec primitive a successful run never returns, so this is only
// observed in tests and on the spawn fallback.
type GateOutput struct {
	Attempts int // Number of failed probes before the handoff
}

// Gate is the use case for blocking until targets are reachable and
// then handing the process off to the command.
type Gate struct {
	prober   domain.Prober
	executor domain.CommandExecutor
	clock    domain.Clock
	stderr   io.Writer
}

// NewGate creates a new Gate use case. Notices are written to stderr.
func NewGate(prober domain.Prober, executor domain.CommandExecutor, clock domain.Clock, stderr io.Writer) *Gate {
	return &Gate{
		prober:   prober,
		executor: executor,
		clock:    clock,
		stderr:   stderr,
	}
}

// Execute polls every target until all accept a TCP connection, then
// replaces the process with the command. Connectivity failures are
// retried indefinitely unless a timeout is set; malformed input and
// handoff failures are fatal and never retried.
func (uc *Gate) Execute(ctx context.Context, in GateInput) (*GateOutput, error) {
	// Validate input before any probing
	if len(in.Targets) == 0 {
		return nil, domain.ErrNoTargets
	}
	if err := in.Command.Validate(); err != nil {
		return nil, err
	}
	if in.Interval <= 0 {
		in.Interval = domain.DefaultInterval
	}

	var deadline time.Time
	if in.Timeout > 0 {
		deadline = uc.clock.Now().Add(in.Timeout)
	}

	pending := make([]domain.Target, len(in.Targets))
	copy(pending, in.Targets)

	attempts := 0
	for {
		var remaining []domain.Target
		for _, target := range pending {
			if err := uc.prober.Probe(ctx, target); err != nil {
				attempts++
				if !in.Quiet {
					fmt.Fprintf(uc.stderr, "Waiting for %s to be available...\n", target)
				}
				remaining = append(remaining, target)
				continue
			}
			fmt.Fprintf(uc.stderr, "%s is available - running command\n", target)
		}
		pending = remaining

		if len(pending) == 0 {
			break
		}

		if err := uc.clock.Sleep(ctx, in.Interval); err != nil {
			return nil, err
		}
		if !deadline.IsZero() && uc.clock.Now().After(deadline) {
			return nil, fmt.Errorf("%w after %s", domain.ErrWaitTimeout, in.Timeout)
		}
	}

	// Handoff: on success this call does not return.
	if err := uc.executor.Exec(in.Command); err != nil {
		var exitErr *domain.ExitError
		if errors.As(err, &exitErr) {
			// The command ran as a child (spawn fallback); its exit
			// code passes through untouched.
			return nil, err
		}
		return nil, fmt.Errorf("run command %q: %w", in.Command.Program(), err)
	}

	return &GateOutput{Attempts: attempts}, nil
}
