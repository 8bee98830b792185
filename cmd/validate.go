package main

import (
	"context"

	"aurora/internal/config"
	"aurora/internal/crew"
	"aurora/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateCommand constructs the 'validate' subcommand that loads and
// validates the crew definition files without starting anything.
func validateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validates the crew definition files",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			files, err := crew.Load(cfg.Crew.DefinitionsDir)
			if err != nil {
				logger.Fatal(ctx, "could not load crew definitions", zap.Error(err))
			}

			if err := crew.ValidateAll(files); err != nil {
				logger.Fatal(ctx, "crew definitions are invalid", zap.Error(err))
			}

			for _, file := range files {
				logger.Info(ctx, "crew definition is valid",
					zap.String("path", file.Path),
					zap.String("crew", file.Definition.Crew),
					zap.Int("agents", len(file.Definition.Agents)),
					zap.Int("tasks", len(file.Definition.Tasks)))
			}
		},
	}

	return cmd
}
