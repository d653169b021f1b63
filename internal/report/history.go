package report

import (
	"advent/pkg/domain"
	"advent/pkg/logger"
	"advent/pkg/storage"
	"context"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// HistoryWriter stores every report as a benchmark run.
type HistoryWriter struct {
	Storage storage.HistoryStorage
}

func (w *HistoryWriter) Write(ctx context.Context, report domain.Report) error {
	run, err := w.Storage.StoreRun(ctx, domain.BenchmarkRun{
		Year:    report.Year,
		Runs:    report.Runs,
		Results: report.Days,
	})
	if err != nil {
		return errors.Wrap(err, "store benchmark run")
	}
	logger.Info(ctx, "stored benchmark run", zap.Stringer("id", run.ID), zap.Int("year", run.Year))

	return nil
}
