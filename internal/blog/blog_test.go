package blog_test

import (
	"advent/internal/blog"
	"advent/internal/report"
	"advent/pkg/domain"
	"advent/pkg/serrors"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func reports() []domain.Report {
	return []domain.Report{
		{
			Year: 2022,
			Days: []domain.DayResult{
				{Day: 2, Name: "Rock Paper Scissors", SourceURI: "internal/years/y2022/day02.go", Status: domain.StatusInvalid},
				{
					Day:            1,
					Name:           "Calorie Counting",
					InstructionURI: "https://adventofcode.com/2022/day/1",
					SourceURI:      "internal/years/y2022/day01.go",
					Preparation:    domain.Measurement{Total: 300, Runs: 3},
					Part1:          domain.Measurement{Total: 30, Runs: 3},
					Status:         domain.StatusValid,
				},
			},
		},
		{
			Year: 2024,
			Days: []domain.DayResult{{Day: 1, Status: domain.StatusUnknown}},
		},
	}
}

func TestSummarize(t *testing.T) {
	years := blog.Summarize(reports())
	require.Len(t, years, 2)
	require.Equal(t, 2024, years[0].Year)
	require.Equal(t, 2022, years[1].Year)
	require.Equal(t, 1, years[1].Days[0].Day)
	require.Equal(t, 1, years[1].Valid)
	require.Equal(t, int64(110), years[1].Total)
}

func TestGenerator_Generate(t *testing.T) {
	dir := t.TempDir()
	g := &blog.Generator{
		OutputDir:     dir,
		Title:         "Advent of Code",
		BaseURL:       "https://example.com/",
		RepositoryURL: "https://github.com/example/advent/blob/main/",
	}

	require.NoError(t, g.Generate(context.Background(), reports()))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(index), `<a href="2024/index.html">2024</a>`)
	require.Contains(t, string(index), `<link rel="canonical" href="https://example.com/index.html">`)
	require.Contains(t, string(index), "3 days solved.")
	require.Less(t, strings.Index(string(index), "2024/index.html"), strings.Index(string(index), "2022/index.html"))

	year, err := os.ReadFile(filepath.Join(dir, "2022", "index.html"))
	require.NoError(t, err)
	page := string(year)
	require.Contains(t, page, "Advent of Code 2022")
	require.Contains(t, page, `<a href="https://github.com/example/advent/blob/main/internal/years/y2022/day01.go">Calorie Counting</a>`)
	require.Contains(t, page, `<td class="valid">Valid</td>`)
	require.Contains(t, page, "<td>100μs</td>")
	require.Less(t, strings.Index(page, "Calorie Counting"), strings.Index(page, "Rock Paper Scissors"))

	unnamed, err := os.ReadFile(filepath.Join(dir, "2024", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(unnamed), ">Day 1</a>")

	// output is stable
	require.NoError(t, g.Generate(context.Background(), reports()))
	again, err := os.ReadFile(filepath.Join(dir, "2022", "index.html"))
	require.NoError(t, err)
	require.Equal(t, page, string(again))
}

func TestLoadReports(t *testing.T) {
	dir := t.TempDir()
	w := &report.JSONWriter{Dir: dir}
	for _, r := range reports() {
		require.NoError(t, w.Write(context.Background(), r))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	loaded, err := blog.LoadReports(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Equal(t, 2022, loaded[0].Year)
	require.Len(t, loaded[0].Days, 2)

	_, err = blog.LoadReports(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
