package main

import (
	"context"
	"os/signal"
	"syscall"

	"aurora/internal/config"
	"aurora/internal/gate"
	"aurora/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// waitCommand constructs the 'wait' subcommand: it blocks until every
// configured dependency reports ready, then replaces the current process with
// the command given after "--". The wrapped command's argument vector is
// passed through unmodified.
func waitCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait -- command [args...]",
		Short: "Blocks until dependencies are ready, then execs the given command",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			argv := args
			if at := cmd.ArgsLenAtDash(); at >= 0 {
				argv = args[at:]
			}
			if len(argv) == 0 {
				logger.Fatal(ctx, "no command given, usage: aurora wait -- command [args...]")
			}

			checks, err := gate.FromConfig(cfg)
			if err != nil {
				logger.Fatal(ctx, "could not build dependency checks", zap.Error(err))
			}

			g := gate.New(gate.Options{Interval: cfg.Gate.Interval}, checks...)
			if err := g.Run(ctx); err != nil {
				logger.Fatal(ctx, "readiness gate failed", zap.Error(err))
			}

			// on success this never returns: the process image is replaced
			if err := gate.Handoff(argv); err != nil {
				logger.Fatal(ctx, "could not hand off to command", zap.Error(err))
			}
		},
	}

	return cmd
}
