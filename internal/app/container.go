// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/containerkit/waitfor/internal/domain"
	"github.com/containerkit/waitfor/internal/infra/config"
	"github.com/containerkit/waitfor/internal/infra/executor"
	"github.com/containerkit/waitfor/internal/infra/probe"
	"github.com/containerkit/waitfor/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor     domain.CommandExecutor
	Clock        domain.Clock
	ConfigLoader domain.ConfigLoader

	// NewProber builds the prober for a run once the effective dial
	// timeout is known; tests swap in a mock factory.
	NewProber func(dialTimeout time.Duration) domain.Prober

	// Pointer fields
	Logger *slog.Logger
}

// New creates a new Container wired to the real adapters.
func New() *Container {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	return &Container{
		Executor:     executor.NewClient(),
		Clock:        domain.RealClock{},
		ConfigLoader: config.NewLoader(),
		NewProber: func(dialTimeout time.Duration) domain.Prober {
			return probe.NewClient(dialTimeout)
		},
		Logger: logger,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	prober domain.Prober,
	exec domain.CommandExecutor,
	clock domain.Clock,
	loader domain.ConfigLoader,
	logger *slog.Logger,
) *Container {
	return &Container{
		Executor:     exec,
		Clock:        clock,
		ConfigLoader: loader,
		NewProber: func(time.Duration) domain.Prober {
			return prober
		},
		Logger: logger,
	}
}

// GateUseCase creates the gate use case writing notices to stderr.
func (c *Container) GateUseCase(prober domain.Prober, stderr io.Writer) *usecase.Gate {
	return usecase.NewGate(prober, c.Executor, c.Clock, stderr)
}
