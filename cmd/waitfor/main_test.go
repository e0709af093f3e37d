package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/containerkit/waitfor/internal/domain"
)

func TestIsUsageError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "invalid target", err: domain.ErrInvalidTarget, want: true},
		{name: "wrapped invalid target", err: fmt.Errorf("context: %w", domain.ErrInvalidTarget), want: true},
		{name: "no targets", err: domain.ErrNoTargets, want: true},
		{name: "empty command", err: domain.ErrEmptyCommand, want: true},
		{name: "missing separator", err: domain.ErrMissingSeparator, want: true},
		{name: "timeout", err: domain.ErrWaitTimeout, want: false},
		{name: "other", err: errors.New("dial failed"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUsageError(tt.err))
		})
	}
}
