package postgres_test

import (
	"advent/pkg/domain"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func dayResult(day int, status domain.Status) domain.DayResult {
	return domain.DayResult{
		Year:           2024,
		Day:            day,
		Name:           "Day",
		InstructionURI: "https://adventofcode.com/2024/day/1",
		SourceURI:      "internal/years/y2024/day01.go",
		Preparation:    domain.Measurement{Total: 100, Runs: 5},
		Part1:          domain.Measurement{Total: 50, Runs: 5},
		Part2:          domain.Measurement{Total: 70, Runs: 1},
		Part1Answer:    "11",
		Part2Answer:    "31",
		Status:         status,
	}
}

func TestPgSQL_StoreRun(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	t.Run("store run with results", func(t *testing.T) {
		failed := dayResult(2, domain.StatusFailed)
		failed.Error = "boom"

		run, err := pgSQL.StoreRun(ctx, domain.BenchmarkRun{
			Year:    2024,
			Runs:    5,
			Results: []domain.DayResult{dayResult(1, domain.StatusValid), failed},
		})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, uuid.UUID(run.ID))
		require.False(t, run.CreatedAt.IsZero())

		got, err := pgSQL.RunByID(ctx, run.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, 5, got.Runs)
		require.Len(t, got.Results, 2)
		require.Equal(t, dayResult(1, domain.StatusValid), got.Results[0])
		require.Equal(t, "boom", got.Results[1].Error)
	})

	t.Run("keeps provided id", func(t *testing.T) {
		id := domain.RunID(uuid.New())
		run, err := pgSQL.StoreRun(ctx, domain.BenchmarkRun{ID: id, Year: 2023, Runs: 1})
		require.NoError(t, err)
		require.Equal(t, id, run.ID)
	})

	t.Run("duplicate id rolls back", func(t *testing.T) {
		id := domain.RunID(uuid.New())
		_, err := pgSQL.StoreRun(ctx, domain.BenchmarkRun{ID: id, Year: 2022, Runs: 1})
		require.NoError(t, err)

		_, err = pgSQL.StoreRun(ctx, domain.BenchmarkRun{ID: id, Year: 2022, Runs: 1})
		require.Error(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		got, err := pgSQL.RunByID(ctx, domain.RunID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_Runs(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	var ids []domain.RunID
	for i := 0; i < 3; i++ {
		run, err := pgSQL.StoreRun(ctx, domain.BenchmarkRun{
			Year:    2021,
			Runs:    i + 1,
			Results: []domain.DayResult{dayResult(1, domain.StatusValid)},
		})
		require.NoError(t, err)
		ids = append(ids, run.ID)
		time.Sleep(5 * time.Millisecond)
	}

	page, err := pgSQL.Runs(ctx, 2021, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, page.Runs, 2)
	require.Equal(t, ids[2], page.Runs[0].ID)
	require.Equal(t, ids[1], page.Runs[1].ID)
	require.Len(t, page.Runs[0].Results, 1)
	require.NotNil(t, page.NextCursor)

	page, err = pgSQL.Runs(ctx, 2021, *page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page.Runs, 1)
	require.Equal(t, ids[0], page.Runs[0].ID)
	require.Nil(t, page.NextCursor)

	latest, err := pgSQL.LatestRun(ctx, 2021)
	require.NoError(t, err)
	require.Equal(t, ids[2], latest.ID)
	require.Equal(t, 3, latest.Runs)

	none, err := pgSQL.LatestRun(ctx, 1999)
	require.NoError(t, err)
	require.Nil(t, none)
}
