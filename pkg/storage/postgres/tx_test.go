package postgres_test

import (
	"advent/pkg/domain"
	"advent/pkg/serrors"
	"advent/pkg/storage"
	"advent/pkg/storage/postgres"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newRun(year int) domain.BenchmarkRun {
	return domain.BenchmarkRun{
		ID:      domain.RunID(uuid.New()),
		Year:    year,
		Runs:    3,
		Results: []domain.DayResult{dayResult(1, domain.StatusValid)},
	}
}

func requireStored(t *testing.T, s storage.HistoryStorage, id domain.RunID, stored bool) {
	t.Helper()

	got, err := s.RunByID(context.Background(), id)
	require.NoError(t, err)
	if stored {
		require.NotNil(t, got)
		require.Len(t, got.Results, 1)
	} else {
		require.Nil(t, got)
	}
}

func TestPgSQL_TxOutsideTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	for _, err := range []error{pg.Commit(), pg.Rollback()} {
		require.ErrorIs(t, err, storage.ErrNotInTx)
		require.ErrorIs(t, err, serrors.ErrInternal)
	}
}

func TestPgSQL_BeginCommit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	inner, ok := tx.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)
	require.NoError(t, inner.Close(), "closing a tx handle leaves the pool alone")

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	run := newRun(2021)
	_, err = tx.StoreRun(ctx, run)
	require.NoError(t, err)

	// visible inside the transaction only
	requireStored(t, tx, run.ID, true)
	requireStored(t, pg, run.ID, false)

	require.NoError(t, tx.Commit())
	requireStored(t, pg, run.ID, true)
}

func TestPgSQL_BeginRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	run := newRun(2021)
	_, err = tx.StoreRun(ctx, run)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	requireStored(t, pg, run.ID, false)
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("commits every run", func(t *testing.T) {
		first, second := newRun(2022), newRun(2022)
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			if _, err := s.StoreRun(ctx, first); err != nil {
				return err
			}
			_, err := s.StoreRun(ctx, second)

			return err
		})
		require.NoError(t, err)
		requireStored(t, pg, first.ID, true)
		requireStored(t, pg, second.ID, true)
	})

	t.Run("rolls back on callback error", func(t *testing.T) {
		run := newRun(2022)
		errAbort := errors.New("abort")
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			if _, err := s.StoreRun(ctx, run); err != nil {
				return err
			}

			return errAbort
		})
		require.ErrorIs(t, err, errAbort)
		requireStored(t, pg, run.ID, false)
	})

	t.Run("rolls back on duplicate run", func(t *testing.T) {
		run := newRun(2022)
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			if _, err := s.StoreRun(ctx, run); err != nil {
				return err
			}
			_, err := s.StoreRun(ctx, run)

			return err
		})
		require.Error(t, err)
		requireStored(t, pg, run.ID, false)
	})

	t.Run("rolls back on panic", func(t *testing.T) {
		run := newRun(2022)
		require.Panics(t, func() {
			_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
				_, _ = s.StoreRun(ctx, run)

				panic("solver crashed")
			})
		})
		requireStored(t, pg, run.ID, false)
	})
}
