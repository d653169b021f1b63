// Package blog renders a small static site from benchmark reports: an index
// of all years and one page per year listing the days with their timings.
package blog

import (
	"advent/internal/report"
	"advent/pkg/domain"
	"advent/pkg/logger"
	"advent/pkg/serrors"
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"go.uber.org/zap"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Generator writes the site into OutputDir.
type Generator struct {
	OutputDir     string
	Title         string
	BaseURL       string
	RepositoryURL string
}

// YearSummary is a report with aggregates used by the index page.
type YearSummary struct {
	domain.Report
	// Valid is the number of days whose answers matched.
	Valid int
	// Total is the sum of the average times of all phases in microseconds.
	Total int64
}

type page struct {
	Title   string
	BaseURL string
	Path    string
	Root    string
	Footer  string

	Years    []YearSummary
	DayCount int
	Year     YearSummary
}

// Generate renders index.html and <year>/index.html for every report. Years
// are listed newest first, days in ascending order.
func (g *Generator) Generate(ctx context.Context, reports []domain.Report) error {
	tmpl, err := g.templates()
	if err != nil {
		return err
	}

	years := Summarize(reports)
	base := page{
		Title:   g.Title,
		BaseURL: g.BaseURL,
		Footer:  "Generated from the benchmark reports of the workbench.",
	}

	index := base
	index.Path = "index.html"
	index.Years = years
	for _, y := range years {
		index.DayCount += len(y.Days)
	}
	if err := g.render(tmpl, "index.html.tmpl", index.Path, index); err != nil {
		return err
	}

	for _, y := range years {
		p := base
		p.Path = fmt.Sprintf("%d/index.html", y.Year)
		p.Root = "../"
		p.Year = y
		if err := g.render(tmpl, "year.html.tmpl", p.Path, p); err != nil {
			return err
		}
	}

	logger.Info(ctx, "generated blog", zap.String("dir", g.OutputDir), zap.Int("years", len(years)))

	return nil
}

// Summarize sorts reports newest year first, sorts their days and computes
// the index aggregates.
func Summarize(reports []domain.Report) []YearSummary {
	out := make([]YearSummary, 0, len(reports))
	for _, r := range reports {
		days := slices.Clone(r.Days)
		slices.SortFunc(days, func(a, b domain.DayResult) int { return a.Day - b.Day })
		r.Days = days

		s := YearSummary{Report: r}
		for _, d := range days {
			if d.Status == domain.StatusValid {
				s.Valid++
			}
			s.Total += d.Preparation.Average() + d.Part1.Average() + d.Part2.Average()
		}
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b YearSummary) int { return b.Year - a.Year })

	return out
}

func (g *Generator) templates() (*template.Template, error) {
	funcs := sprig.HtmlFuncMap()
	funcs["pretty"] = domain.PrettyMicros
	funcs["sourceURL"] = g.sourceURL

	tmpl, err := template.New("blog").Funcs(funcs).ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("could not parse blog templates: %w", err)
	}

	return tmpl, nil
}

func (g *Generator) sourceURL(path string) string {
	if g.RepositoryURL == "" {
		return path
	}

	return strings.TrimSuffix(g.RepositoryURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

func (g *Generator) render(tmpl *template.Template, name, path string, data page) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("could not render %s: %w", path, err)
	}

	target := filepath.Join(g.OutputDir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("could not create %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil { //nolint: gosec
		return fmt.Errorf("could not write %s: %w", target, err)
	}

	return nil
}

// LoadReports reads every <year>-report.json in dir.
func LoadReports(dir string) ([]domain.Report, error) {
	paths, err := fs.Glob(os.DirFS(dir), "*-report.json")
	if err != nil {
		return nil, fmt.Errorf("could not list reports: %w", err)
	}
	if len(paths) == 0 {
		if _, statErr := os.Stat(dir); errors.Is(statErr, fs.ErrNotExist) {
			return nil, serrors.Wrap(serrors.ErrNotFound, statErr, "report directory %s not found", dir)
		}
	}

	slices.Sort(paths)
	reports := make([]domain.Report, 0, len(paths))
	for _, p := range paths {
		r, err := report.ReadJSON(filepath.Join(dir, p))
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}

	return reports, nil
}
