package main

import (
	"advent/internal/config"
	"advent/pkg/domain"
	"advent/pkg/logger"
	"advent/pkg/serrors"
	"advent/pkg/storage"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func historyCommand(cfg *config.Config) *cobra.Command {
	var (
		year  int
		limit uint
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Lists the stored benchmark runs of a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := checkHistoryFlags(year, limit); err != nil {
				return err
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := printHistory(ctx, cmd.OutOrStdout(), strg, year, limit, all); err != nil {
				logger.Error(ctx, "could not list runs", zap.Int("year", year), zap.Error(err))

				return err
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year to list")
	cmd.Flags().UintVarP(&limit, "limit", "n", 10, "Page size")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Follow the cursor through every page")

	return cmd
}

func checkHistoryFlags(year int, limit uint) error {
	switch {
	case year == 0:
		return serrors.With(serrors.ErrBadRequest, "--year is required")
	case limit == 0:
		return serrors.With(serrors.ErrBadRequest, "--limit must be at least 1")
	}

	return nil
}

func printHistory(ctx context.Context, w io.Writer, strg storage.HistoryStorage, year int, limit uint, all bool) error {
	var cursor time.Time
	for {
		page, err := strg.Runs(ctx, year, cursor, limit)
		if err != nil {
			return err
		}

		for _, run := range page.Runs {
			valid := 0
			for _, r := range run.Results {
				if r.Status == domain.StatusValid {
					valid++
				}
			}
			_, err := fmt.Fprintf(w, "%s  %s  runs=%d  days=%d  valid=%d\n",
				run.ID, run.CreatedAt.Format(time.RFC3339), run.Runs, len(run.Results), valid)
			if err != nil {
				return fmt.Errorf("could not print run: %w", err)
			}
		}

		if !all || page.NextCursor == nil {
			return nil
		}
		cursor = *page.NextCursor
	}
}
