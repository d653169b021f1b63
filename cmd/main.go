// Package main provides the CLI entrypoint of the Advent of Code workbench.
// It wires subcommands (run, years, blog, serve, history, migrate), loads
// configuration, and initializes logging and metrics.
package main

import (
	"advent/internal/config"
	"advent/pkg/logger"
	"advent/pkg/metrics"
	"advent/pkg/storage/postgres"
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	_ "advent/internal/years/y2020"
	_ "advent/internal/years/y2021"
	_ "advent/internal/years/y2022"
	_ "advent/internal/years/y2023"
	_ "advent/internal/years/y2024"
	_ "advent/internal/years/y2025"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Debug(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// main sets up the root Cobra command, loads configuration, logging and the
// meter provider, and registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:          "aoc",
		Short:        "Runs, validates and benchmarks Advent of Code solutions",
		SilenceUsage: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	configPath := flags.String("c", "config.yml", "The config file path")
	_ = flags.Parse(configArgs(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	otel.SetMeterProvider(mp)

	rootCmd.AddCommand(
		runCommand(cfg),
		yearsCommand(),
		blogCommand(cfg),
		serveCommand(cfg),
		historyCommand(cfg),
		migrateCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = mp.Shutdown(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs extracts the -c/--config flag from args so it can be read
// before cobra parses the rest of the command line.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch arg {
		case "-c", "--config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		}
		for _, prefix := range []string{"-c=", "--config="} {
			if value, ok := strings.CutPrefix(arg, prefix); ok {
				return []string{"-c", value}
			}
		}
	}

	return nil
}
