package main

import (
	"context"

	"aurora/internal/config"
	"aurora/internal/forecast"
	"aurora/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// forecastCommand constructs the 'forecast' subcommand. Without flags it
// enqueues a background job per observed signal; with --now it runs the
// pipeline in-process instead of going through the queue.
func forecastCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Enqueues or runs trend forecasts for observed signals",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			signal, _ := cmd.Flags().GetString("signal")
			now, _ := cmd.Flags().GetBool("now")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			forecaster := forecast.New(strg, forecast.NewOptions(cfg))

			switch {
			case now && signal != "":
				trend, err := forecaster.ForecastSignal(ctx, signal)
				if err != nil {
					logger.Fatal(ctx, "could not forecast signal", zap.Error(err))
				}
				logger.Info(ctx, "forecast complete",
					zap.String("signal", trend.Signal),
					zap.String("phase", string(trend.Phase)),
					zap.Float64("strength", trend.Strength))
			case now:
				trends, err := forecaster.ForecastAll(ctx)
				if err != nil {
					logger.Fatal(ctx, "could not forecast signals", zap.Error(err))
				}
				logger.Info(ctx, "forecast complete", zap.Int("trends", len(trends)))
			case signal != "":
				added, err := forecaster.Enqueue(ctx, signal)
				if err != nil {
					logger.Fatal(ctx, "could not enqueue forecast job", zap.Error(err))
				}
				logger.Info(ctx, "forecast job enqueued", zap.Bool("added", added))
			default:
				added, err := forecaster.EnqueueAll(ctx)
				if err != nil {
					logger.Fatal(ctx, "could not enqueue forecast jobs", zap.Error(err))
				}
				logger.Info(ctx, "forecast jobs enqueued", zap.Int("added", added))
			}
		},
	}

	cmd.Flags().String("signal", "", "Forecast a single signal instead of all observed signals")
	cmd.Flags().Bool("now", false, "Run the pipeline in-process instead of enqueueing jobs")

	return cmd
}
