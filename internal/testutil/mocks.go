// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/containerkit/waitfor/internal/domain"
)

// MockClock is a test double for domain.Clock. Sleep advances the
// mock's notion of now instead of blocking, so loop tests run instantly.
type MockClock struct {
	NowTime   time.Time
	Slept     []time.Duration
	SleepErr  error // When set, Sleep fails once FailAfter sleeps have completed
	FailAfter int
}

// Now returns the mock's current time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Sleep records the duration and advances the mock clock.
func (m *MockClock) Sleep(_ context.Context, d time.Duration) error {
	if m.SleepErr != nil && len(m.Slept) >= m.FailAfter {
		return m.SleepErr
	}
	m.Slept = append(m.Slept, d)
	m.NowTime = m.NowTime.Add(d)
	return nil
}

// MockProber is a test double for domain.Prober.
// Fields are ordered to minimize memory padding.
type MockProber struct {
	Failures map[string]int // Failing probes per target before success
	counts   map[string]int

	Attempts []string // Probed targets in call order
	Err      error    // When set, every probe fails with this error
}

// NewMockProber creates a new MockProber with initialized maps.
func NewMockProber() *MockProber {
	return &MockProber{
		Failures: make(map[string]int),
		counts:   make(map[string]int),
	}
}

// Probe records the attempt and fails until the configured failure
// count for the target is exhausted.
func (m *MockProber) Probe(_ context.Context, target domain.Target) error {
	key := target.String()
	m.Attempts = append(m.Attempts, key)
	if m.Err != nil {
		return m.Err
	}
	if m.counts[key] < m.Failures[key] {
		m.counts[key]++
		return fmt.Errorf("dial %s: connection refused", key)
	}
	return nil
}

// MockExecutor is a test double for domain.CommandExecutor.
type MockExecutor struct {
	Executed domain.Command
	Err      error
	Calls    int
}

// Exec records the command and returns the configured error.
func (m *MockExecutor) Exec(cmd domain.Command) error {
	m.Calls++
	m.Executed = cmd
	return m.Err
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config, or defaults when unset.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}
