package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"aurora/internal/config"
	"aurora/internal/forecast"
	"aurora/internal/gate"
	"aurora/internal/ops"
	"aurora/internal/worker"
	"aurora/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupOpsServer starts the operational HTTP listener (metrics, health,
// pprof) and returns a function that shuts it down.
func setupOpsServer(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	checks, err := gate.FromConfig(cfg)
	if err != nil {
		logger.Fatal(ctx, "could not build dependency checks", zap.Error(err))
	}

	server, err := ops.NewServer(checks, ops.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create ops server", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting ops server...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start ops server", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping ops server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop ops server", zap.Error(err))
		}
	}
}

// workCommand constructs the 'work' subcommand that runs the background job
// workers together with the ops HTTP listener.
func workCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "work",
		Short: "Starts background workers and the ops server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			stopOpsServer := setupOpsServer(ctx, cfg)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			forecaster := forecast.New(strg, forecast.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, cfg, strg.Pool, forecaster)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}

			stopOpsServer(shutdownCtx)
		},
	}

	return cmd
}
