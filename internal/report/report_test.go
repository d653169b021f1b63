package report_test

import (
	"advent/internal/report"
	"advent/pkg/domain"
	mockstorage "advent/pkg/storage/mock"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sample() domain.Report {
	return domain.Report{
		Year: 2022,
		Runs: 5,
		Days: []domain.DayResult{
			{
				Year:           2022,
				Day:            1,
				Name:           "Calorie Counting",
				InstructionURI: "https://adventofcode.com/2022/day/1",
				SourceURI:      "internal/years/y2022/day01.go",
				Preparation:    domain.Measurement{Total: 500, Runs: 5},
				Part1:          domain.Measurement{Total: 25000, Runs: 5},
				Part2:          domain.Measurement{},
				Part1Answer:    "24000",
				Part2Answer:    "45000",
				Status:         domain.StatusValid,
			},
			{
				Year:   2022,
				Day:    2,
				Name:   "Rock Paper \"Scissors\"",
				Status: domain.StatusFailed,
				Error:  "boom",
			},
		},
	}
}

func TestMarkdown(t *testing.T) {
	out := report.Markdown(sample())
	lines := strings.Split(out, "\n")

	require.Equal(t, strings.Repeat("-", 80), lines[1])
	require.Equal(t, strings.Repeat(" ", 30)+"Advent of Code 2022", lines[2])
	require.Equal(t, strings.Repeat("-", 80), lines[3])
	require.Equal(t, "| Year  | Day  | Name                                | Parsing | Part 1  | Part 2  | Assignment                          |", lines[4])
	require.Contains(t, lines[5], "|  2022 |  01  | [Calorie Counting](internal/years/y2022/day01.go)")
	require.Contains(t, lines[5], "| 100μs   | 5ms     | -       |")
	require.Contains(t, lines[5], "[instructions](https://adventofcode.com/2022/day/1)")
}

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &report.MarkdownWriter{Out: &buf}
	require.NoError(t, w.Write(context.Background(), sample()))
	require.Equal(t, report.Markdown(sample()), buf.String())

	// without an output the table is logged
	require.NoError(t, (&report.MarkdownWriter{}).Write(context.Background(), sample()))
}

func TestJSONWriter_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build", "report")
	w := &report.JSONWriter{Dir: dir}

	require.NoError(t, w.Write(context.Background(), sample()))
	require.FileExists(t, filepath.Join(dir, "2022-report.json"))

	got, err := report.ReadJSON(w.Path(2022))
	require.NoError(t, err)
	require.Equal(t, sample(), got)
}

func TestDecodeJSON(t *testing.T) {
	doc := `{
		"days": [{"day": 3, "name": "x", "part1": {"total": 10, "runs": 2, "extra": true}, "unknown": [1, 2]}],
		"year": 2021
	}`

	got, err := report.DecodeJSON([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, 2021, got.Year)
	require.Len(t, got.Days, 1)
	require.Equal(t, 2021, got.Days[0].Year)
	require.Equal(t, int64(5), got.Days[0].Part1.Average())

	_, err = report.DecodeJSON([]byte(`{"year": "nope"}`))
	require.Error(t, err)
}

func TestDecodeJSON_Fields(t *testing.T) {
	got, err := report.DecodeJSON([]byte(`{"year":2022}`))
	require.NoError(t, err)
	require.Equal(t, domain.Report{Year: 2022}, got)

	got, err = report.DecodeJSON([]byte(`{"year":2022,"runs":3,"days":[{"day":1,"status":"valid","preparation":{"total":4,"runs":2}}]}`))
	require.NoError(t, err)
	require.Equal(t, 3, got.Runs)
	require.Equal(t, domain.StatusValid, got.Days[0].Status)
	require.Equal(t, domain.Measurement{Total: 4, Runs: 2}, got.Days[0].Preparation)

	_, err = report.DecodeJSON([]byte(`{"days":[{"part2":{"total":"x"}}]}`))
	require.ErrorContains(t, err, "total")
}

func TestReadJSON_Missing(t *testing.T) {
	_, err := report.ReadJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewWriter(t *testing.T) {
	require.IsType(t, &report.JSONWriter{}, report.NewWriter("JSON", report.Options{Dir: "x"}))
	require.IsType(t, &report.MarkdownWriter{}, report.NewWriter("markdown", report.Options{}))
	require.IsType(t, &report.MarkdownWriter{}, report.NewWriter("html", report.Options{}))
}

func TestHistoryWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockAllStorage(ctrl)
	ctx := context.Background()
	rep := sample()

	strg.EXPECT().StoreRun(ctx, domain.BenchmarkRun{Year: 2022, Runs: 5, Results: rep.Days}).
		Return(&domain.BenchmarkRun{ID: domain.RunID(uuid.New()), Year: 2022, Runs: 5}, nil)

	var buf bytes.Buffer
	w := report.NewWriter(report.FormatMarkdown, report.Options{History: strg})
	require.NoError(t, report.Multi(&report.MarkdownWriter{Out: &buf}, w).Write(ctx, rep))
	require.NotEmpty(t, buf.String())
}

func TestHistoryWriter_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockAllStorage(ctrl)
	boom := errors.New("boom")

	strg.EXPECT().StoreRun(gomock.Any(), gomock.Any()).Return(nil, boom)

	err := (&report.HistoryWriter{Storage: strg}).Write(context.Background(), sample())
	require.ErrorIs(t, err, boom)
}
