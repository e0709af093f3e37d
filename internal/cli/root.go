// Package cli provides the command-line interface for waitfor.
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/containerkit/waitfor/internal/app"
	"github.com/containerkit/waitfor/internal/domain"
	"github.com/containerkit/waitfor/internal/usecase"
)

// NewRootCommand creates the root command for waitfor.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts struct {
		TargetsFile string
		Interval    time.Duration
		Timeout     time.Duration
		DialTimeout time.Duration
		Quiet       bool
	}

	root := &cobra.Command{
		Use:   "waitfor HOST:PORT [HOST:PORT...] -- COMMAND [ARGS...]",
		Short: "Block until TCP targets accept connections, then exec a command",
		Long: `waitfor is a startup-ordering gate for containerized deployments.

It repeatedly attempts TCP connections to each HOST:PORT target until
every target accepts one, then replaces itself with COMMAND so that
argv, environment, standard streams, signals and the exit code all
belong to COMMAND (PID 1 behavior is preserved).

Targets are split on the last colon, so IPv6 literals work without
brackets. The command must be separated from the targets by '--'.

Examples:
  # Wait for the database, then start the app server
  waitfor db:5432 -- uvicorn app.main:app --host 0.0.0.0

  # Gate on the database and the cache with a 60s deadline
  waitfor db:5432 cache:6379 --timeout 60s -- ./server

  # Read targets from a YAML file
  waitfor --targets-file targets.yaml -- ./server`,
		Version: version,
		Args:    cobra.ArbitraryArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Split targets from the command at '--'
			dash := cmd.ArgsLenAtDash()
			targetArgs := args
			var commandArgs []string
			if dash >= 0 {
				targetArgs, commandArgs = args[:dash], args[dash:]
			}

			targets := make([]domain.Target, 0, len(targetArgs))
			for _, arg := range targetArgs {
				target, err := domain.ParseTarget(arg)
				if err != nil {
					if dash < 0 {
						return fmt.Errorf("%w (targets and command must be separated by '--')", err)
					}
					return err
				}
				targets = append(targets, target)
			}

			if opts.TargetsFile != "" {
				fileTargets, err := loadTargetsFile(opts.TargetsFile)
				if err != nil {
					return err
				}
				targets = append(targets, fileTargets...)
			}

			if len(targets) == 0 {
				return domain.ErrNoTargets
			}
			if dash < 0 {
				return domain.ErrMissingSeparator
			}
			if len(commandArgs) == 0 {
				return domain.ErrEmptyCommand
			}

			// Effective settings: defaults <- config file <- flags
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("interval") {
				cfg.Interval = domain.Duration(opts.Interval)
			}
			if flags.Changed("timeout") {
				cfg.Timeout = domain.Duration(opts.Timeout)
			}
			if flags.Changed("dial-timeout") {
				cfg.DialTimeout = domain.Duration(opts.DialTimeout)
			}
			if flags.Changed("quiet") {
				cfg.Quiet = opts.Quiet
			}

			c.Logger.Debug("gate starting",
				"targets", len(targets),
				"interval", time.Duration(cfg.Interval).String(),
				"timeout", time.Duration(cfg.Timeout).String(),
			)

			// Setup signal handling so waiting can be interrupted
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			// Execute use case
			uc := c.GateUseCase(c.NewProber(time.Duration(cfg.DialTimeout)), cmd.ErrOrStderr())
			_, err = uc.Execute(ctx, usecase.GateInput{
				Targets:  targets,
				Command:  domain.Command(commandArgs),
				Interval: time.Duration(cfg.Interval),
				Timeout:  time.Duration(cfg.Timeout),
				Quiet:    cfg.Quiet,
			})
			return err
		},
	}

	// Flags
	root.Flags().DurationVarP(&opts.Interval, "interval", "i", domain.DefaultInterval, "Delay between probe rounds")
	root.Flags().DurationVarP(&opts.Timeout, "timeout", "t", 0, "Overall deadline (0 = wait forever)")
	root.Flags().DurationVar(&opts.DialTimeout, "dial-timeout", domain.DefaultDialTimeout, "Per-attempt connection timeout")
	root.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress waiting notices")
	root.Flags().StringVarP(&opts.TargetsFile, "targets-file", "f", "", "YAML file with additional HOST:PORT targets")

	return root
}
