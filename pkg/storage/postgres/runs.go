package postgres

import (
	"advent/pkg/domain"
	"advent/pkg/storage"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	runsTable    = "benchmark_runs"
	resultsTable = "day_results"
)

// StoreRun inserts a run and its results. Outside a transaction it opens one
// so the run is never stored without its results.
func (p *PgSQL) StoreRun(ctx context.Context, run domain.BenchmarkRun) (*domain.BenchmarkRun, error) {
	if _, inTx := p.DB.(*sql.Tx); !inTx {
		var stored *domain.BenchmarkRun
		err := p.WithTx(ctx, func(s storage.AllStorage) error {
			var err error
			stored, err = s.StoreRun(ctx, run)

			return err
		})

		return stored, err
	}

	id := uuid.UUID(run.ID)
	if id == uuid.Nil {
		id = uuid.New()
	}

	var row PgRun
	if _, err := p.Builder.Insert(runsTable).
		Rows(PgRun{ID: id, Year: run.Year, Runs: run.Runs}).
		Returning(&PgRun{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store run into pg: %w", err)
	}

	if len(run.Results) > 0 {
		rows := make([]PgDayResult, len(run.Results))
		for i := range rows {
			rows[i].FromDomain(id, run.Results[i])
		}
		if _, err := p.Builder.Insert(resultsTable).Rows(rows).Executor().ExecContext(ctx); err != nil {
			return nil, fmt.Errorf("could not store day results into pg: %w", err)
		}
	}

	return row.ToDomain(run.Results), nil
}

// RunByID returns a run with its results, or nil when it does not exist.
func (p *PgSQL) RunByID(ctx context.Context, id domain.RunID) (*domain.BenchmarkRun, error) {
	var row PgRun
	found, err := p.Builder.From(runsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch run by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	results, err := p.results(ctx, row.Year, row.ID)
	if err != nil {
		return nil, err
	}

	return row.ToDomain(results[row.ID]), nil
}

// Runs returns a page of runs of a year ordered by created_at DESC, id DESC.
func (p *PgSQL) Runs(ctx context.Context, year int, cursor time.Time, limit uint) (storage.RunPage, error) {
	w := []goqu.Expression{goqu.I("year").Eq(year)}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	var rows []PgRun
	if err := p.Builder.From(runsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.RunPage{}, fmt.Errorf("could not fetch runs from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if len(rows) > 0 {
			nextCursor = &rows[len(rows)-1].CreatedAt
		}
	}

	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	results, err := p.results(ctx, year, ids...)
	if err != nil {
		return storage.RunPage{}, err
	}

	page := storage.RunPage{Runs: make([]domain.BenchmarkRun, 0, len(rows)), NextCursor: nextCursor}
	for _, r := range rows {
		page.Runs = append(page.Runs, *r.ToDomain(results[r.ID]))
	}

	return page, nil
}

// LatestRun returns the newest run of a year, or nil when there is none.
func (p *PgSQL) LatestRun(ctx context.Context, year int) (*domain.BenchmarkRun, error) {
	page, err := p.Runs(ctx, year, time.Time{}, 1)
	if err != nil {
		return nil, err
	}
	if len(page.Runs) == 0 {
		return nil, nil
	}

	return &page.Runs[0], nil
}

func (p *PgSQL) results(ctx context.Context, year int, runIDs ...uuid.UUID) (map[uuid.UUID][]domain.DayResult, error) {
	out := make(map[uuid.UUID][]domain.DayResult, len(runIDs))
	if len(runIDs) == 0 {
		return out, nil
	}

	ids := make([]string, len(runIDs))
	for i, id := range runIDs {
		ids[i] = id.String()
	}

	var rows []PgDayResult
	if err := p.Builder.From(resultsTable).
		Where(goqu.I("run_id").In(ids)).
		Order(goqu.I("run_id").Asc(), goqu.I("day").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch day results from pg: %w", err)
	}

	for _, r := range rows {
		out[r.RunID] = append(out[r.RunID], r.ToDomain(year))
	}

	return out, nil
}
