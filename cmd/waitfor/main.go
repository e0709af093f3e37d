// Package main is the entry point for the waitfor CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/containerkit/waitfor/internal/app"
	"github.com/containerkit/waitfor/internal/cli"
	"github.com/containerkit/waitfor/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	container := app.New()
	rootCmd := cli.NewRootCommand(container, version)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	// The command ran as a child (spawn fallback); its exit code passes
	// through without an extra message, the child already reported.
	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintln(os.Stderr, err)
	if isUsageError(err) {
		return 2
	}
	return 1
}

// isUsageError reports whether err is a malformed-invocation error
// rather than a runtime failure.
func isUsageError(err error) bool {
	return errors.Is(err, domain.ErrInvalidTarget) ||
		errors.Is(err, domain.ErrNoTargets) ||
		errors.Is(err, domain.ErrEmptyCommand) ||
		errors.Is(err, domain.ErrMissingSeparator)
}
