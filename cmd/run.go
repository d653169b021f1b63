package main

import (
	"advent/internal/benchmark"
	"advent/internal/config"
	"advent/internal/report"
	"advent/internal/solution"
	"advent/pkg/logger"
	"advent/pkg/serrors"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runFlags struct {
	year      int
	day       int
	benchmark bool
	runs      int
	debug     bool
	format    string
	store     bool
	large     bool
}

func runCommand(cfg *config.Config) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Runs and validates solutions, optionally benchmarking them",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.SetDebug(flags.debug)

			suites, err := selectSuites(solution.Default(), flags)
			if err != nil {
				return err
			}

			opts := report.Options{Dir: cfg.Report.Dir}
			if flags.store || cfg.History.Enabled {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()
				opts.History = strg
			}
			writer := report.NewWriter(flags.format, opts)

			deps := benchmark.Deps{
				Inputs:  os.DirFS(cfg.InputDir),
				Answers: os.DirFS(cfg.AnswerDir),
			}

			for _, suite := range suites {
				rep, err := suite.Execute(ctx, deps)
				if errors.Is(err, context.Canceled) {
					logger.Warn(ctx, "run interrupted", zap.Int("year", suite.Year), zap.Int("days", len(rep.Days)))

					return nil
				}
				if err != nil {
					return err
				}

				if err := writer.Write(ctx, rep); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&flags.year, "year", "y", 0, "Year to run, all years when omitted")
	cmd.Flags().IntVarP(&flags.day, "day", "d", 0, "Day to run, requires --year")
	cmd.Flags().BoolVarP(&flags.benchmark, "benchmark", "b", false, "Benchmark the solutions")
	cmd.Flags().IntVarP(&flags.runs, "runs", "r", cfg.Benchmark.Runs, "Number of runs in benchmark mode")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "x", false, "Enable debug logging")
	cmd.Flags().StringVarP(&flags.format, "format", "f", cfg.Report.Format, "Report format: markdown or json")
	cmd.Flags().BoolVar(&flags.store, "store", false, "Store the results in the benchmark history")
	cmd.Flags().BoolVar(&flags.large, "large", false, "Use the large input files")

	return cmd
}

// selectSuites turns the command line selection into one suite per year.
func selectSuites(registry *solution.Registry, flags runFlags) ([]benchmark.Suite, error) {
	if flags.day != 0 && flags.year == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "--day requires --year")
	}

	runs := 1
	if flags.benchmark {
		if flags.runs < 1 {
			return nil, serrors.With(serrors.ErrBadRequest, "--runs must be positive, got %d", flags.runs)
		}
		runs = flags.runs
	}

	years := registry.Years()
	if flags.year != 0 {
		years = []int{flags.year}
	}

	suites := make([]benchmark.Suite, 0, len(years))
	for _, year := range years {
		var defs []solution.Definition
		if flags.day != 0 {
			def, err := registry.Find(year, flags.day)
			if err != nil {
				return nil, err
			}
			defs = []solution.Definition{def}
		} else {
			var err error
			if defs, err = registry.ForYear(year); err != nil {
				return nil, err
			}
		}

		suites = append(suites, benchmark.Suite{Year: year, Runs: runs, LargeInput: flags.large, Definitions: defs})
	}

	return suites, nil
}
