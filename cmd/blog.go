package main

import (
	"advent/internal/blog"
	"advent/internal/config"
	"advent/internal/solution"
	"advent/pkg/domain"
	"advent/pkg/logger"
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func blogCommand(cfg *config.Config) *cobra.Command {
	var fromHistory bool

	cmd := &cobra.Command{
		Use:   "blog",
		Short: "Generates the static blog from the benchmark reports",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			var (
				reports []domain.Report
				err     error
			)
			if fromHistory {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				for _, year := range solution.Default().Years() {
					run, err := strg.LatestRun(ctx, year)
					if err != nil {
						logger.Fatal(ctx, "could not load latest run", zap.Int("year", year), zap.Error(err))
					}
					if run != nil {
						reports = append(reports, run.Report())
					}
				}
			} else {
				reports, err = blog.LoadReports(cfg.Report.Dir)
				if err != nil {
					logger.Fatal(ctx, "could not load reports", zap.Error(err))
				}
			}

			generator := &blog.Generator{
				OutputDir:     cfg.Blog.OutputDir,
				Title:         cfg.Blog.Title,
				BaseURL:       cfg.Blog.BaseURL,
				RepositoryURL: cfg.Blog.RepositoryURL,
			}
			if err := generator.Generate(ctx, reports); err != nil {
				logger.Fatal(ctx, "could not generate blog", zap.Error(err))
			}
		},
	}

	cmd.Flags().BoolVar(&fromHistory, "from-history", false, "Use the latest stored run of every year instead of the report files")

	return cmd
}
