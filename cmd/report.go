package main

import (
	"context"

	"aurora/internal/config"
	"aurora/internal/report"
	"aurora/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reportCommand constructs the 'report' subcommand that renders markdown
// reports from stored trends and catalog data.
func reportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Renders trend and inventory markdown reports",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			generator := report.New(strg, report.NewOptions(cfg))

			trendPath, err := generator.TrendReport(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not render trend report", zap.Error(err))
			}
			logger.Info(ctx, "trend report written", zap.String("path", trendPath))

			inventoryPath, err := generator.InventoryReport(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not render inventory report", zap.Error(err))
			}
			logger.Info(ctx, "inventory report written", zap.String("path", inventoryPath))
		},
	}

	return cmd
}
