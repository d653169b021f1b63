package main

import (
	"advent/internal/input"
	"advent/internal/solution"
	"advent/pkg/domain"
	"advent/pkg/serrors"
	"advent/pkg/storage"
	mockstorage "advent/pkg/storage/mock"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type noop struct{}

func (noop) ReadInput(*input.Loader) error { return nil }
func (noop) Part1() any                    { return 0 }
func (noop) Part2() any                    { return 0 }

func registry() *solution.Registry {
	r := solution.NewRegistry()
	for _, def := range []solution.Definition{
		{Year: 2021, Day: 3},
		{Year: 2021, Day: 1},
		{Year: 2022, Day: 7},
	} {
		def.New = func() solution.Solver { return noop{} }
		r.Register(def)
	}

	return r
}

func TestConfigArgs(t *testing.T) {
	require.Equal(t, []string{"-c", "a.yml"}, configArgs([]string{"run", "-c", "a.yml", "-y", "2022"}))
	require.Equal(t, []string{"-c", "b.yml"}, configArgs([]string{"--config=b.yml", "years"}))
	require.Equal(t, []string{"-c", "c.yml"}, configArgs([]string{"--config", "c.yml"}))
	require.Nil(t, configArgs([]string{"run", "-y", "2022"}))
	require.Nil(t, configArgs([]string{"run", "-c"}))
}

func TestSelectSuites(t *testing.T) {
	r := registry()

	suites, err := selectSuites(r, runFlags{})
	require.NoError(t, err)
	require.Len(t, suites, 2)
	require.Equal(t, 2021, suites[0].Year)
	require.Equal(t, 1, suites[0].Runs)
	require.Len(t, suites[0].Definitions, 2)
	require.Equal(t, 1, suites[0].Definitions[0].Day)

	suites, err = selectSuites(r, runFlags{year: 2022, benchmark: true, runs: 7, large: true})
	require.NoError(t, err)
	require.Len(t, suites, 1)
	require.Equal(t, 7, suites[0].Runs)
	require.True(t, suites[0].LargeInput)

	// runs only count in benchmark mode
	suites, err = selectSuites(r, runFlags{year: 2021, day: 3, runs: 7})
	require.NoError(t, err)
	require.Equal(t, 1, suites[0].Runs)
	require.Len(t, suites[0].Definitions, 1)
	require.Equal(t, 3, suites[0].Definitions[0].Day)
}

func TestSelectSuites_Errors(t *testing.T) {
	r := registry()

	_, err := selectSuites(r, runFlags{day: 1})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = selectSuites(r, runFlags{benchmark: true, runs: 0})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = selectSuites(r, runFlags{year: 2021, day: 2})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = selectSuites(r, runFlags{year: 2019})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestPrintYears(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printYears(&buf, registry()))
	require.Equal(t, "2021: 01 03\n2022: 07\n", buf.String())
}

func TestCheckHistoryFlags(t *testing.T) {
	require.NoError(t, checkHistoryFlags(2024, 10))
	require.ErrorIs(t, checkHistoryFlags(0, 10), serrors.ErrBadRequest)
	require.ErrorIs(t, checkHistoryFlags(2024, 0), serrors.ErrBadRequest)
}

func TestPrintHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockHistoryStorage(ctrl)
	ctx := context.Background()

	created := time.Date(2024, 12, 1, 6, 0, 0, 0, time.UTC)
	first := domain.BenchmarkRun{
		ID:        domain.RunID(uuid.New()),
		Year:      2024,
		Runs:      5,
		CreatedAt: created,
		Results:   []domain.DayResult{{Day: 1, Status: domain.StatusValid}, {Day: 2, Status: domain.StatusInvalid}},
	}
	second := domain.BenchmarkRun{ID: domain.RunID(uuid.New()), Year: 2024, Runs: 1, CreatedAt: created.Add(-time.Hour)}

	gomock.InOrder(
		strg.EXPECT().Runs(ctx, 2024, time.Time{}, uint(1)).
			Return(storage.RunPage{Runs: []domain.BenchmarkRun{first}, NextCursor: &first.CreatedAt}, nil),
		strg.EXPECT().Runs(ctx, 2024, first.CreatedAt, uint(1)).
			Return(storage.RunPage{Runs: []domain.BenchmarkRun{second}}, nil),
	)

	var buf bytes.Buffer
	require.NoError(t, printHistory(ctx, &buf, strg, 2024, 1, true))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, first.ID.String()+"  2024-12-01T06:00:00Z  runs=5  days=2  valid=1", lines[0])
	require.Contains(t, lines[1], second.ID.String())
}
