package main

import (
	"advent/internal/config"
	"advent/pkg/logger"
	"advent/pkg/storage/postgres"
	"context"
	"database/sql"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that brings the benchmark
// history schema to the latest version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the history database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			version, applied, err := postgres.Migrate(ctx, strg.DB.(*sql.DB)) //nolint: forcetypeassert
			if err != nil {
				logger.Fatal(ctx, "could not migrate history database", zap.Error(err))
			}

			logger.Info(ctx, "history database migrated",
				zap.Int64("version", version), zap.Int64s("applied", applied))
		},
	}
}
