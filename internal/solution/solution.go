// Package solution holds the registry of puzzle solvers. Year packages
// register their days from init, so importing a year package is enough to
// make its days runnable.
package solution

import (
	"advent/internal/input"
	"advent/pkg/serrors"
	"fmt"
	"slices"
	"sync"
)

// Solver solves a single day. ReadInput is called once before the parts;
// Part1 and Part2 may be called repeatedly and must not mutate the parsed input.
//
// Answers are int, int64, uint64, *big.Int or string.
type Solver interface {
	ReadInput(in *input.Loader) error
	Part1() any
	Part2() any
}

// Definition describes a registered day.
type Definition struct {
	Year int
	Day  int
	Name string
	New  func() Solver

	// Part1Runs and Part2Runs cap how often a part is measured in a
	// benchmark; zero means no cap.
	Part1Runs int
	Part2Runs int
}

// InstructionURI links to the puzzle description.
func (d Definition) InstructionURI() string {
	return fmt.Sprintf("https://adventofcode.com/%d/day/%d", d.Year, d.Day)
}

// SourcePath is the path of the solver source relative to the repository root.
func (d Definition) SourcePath() string {
	return fmt.Sprintf("internal/years/y%d/day%02d.go", d.Year, d.Day)
}

// Registry maps years and days to definitions.
type Registry struct {
	mu   sync.RWMutex
	defs map[int]map[int]Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: map[int]map[int]Definition{}}
}

// Register adds d. It panics on invalid or duplicate definitions, which are
// programming errors caught at start-up.
func (r *Registry) Register(d Definition) {
	if d.Day < 1 || d.Day > 25 {
		panic(fmt.Sprintf("solution: invalid day %d for year %d", d.Day, d.Year))
	}
	if d.New == nil {
		panic(fmt.Sprintf("solution: %d day %d has no constructor", d.Year, d.Day))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	days, ok := r.defs[d.Year]
	if !ok {
		days = map[int]Definition{}
		r.defs[d.Year] = days
	}
	if _, exists := days[d.Day]; exists {
		panic(fmt.Sprintf("solution: %d day %d registered twice", d.Year, d.Day))
	}
	days[d.Day] = d
}

// Years returns the registered years in ascending order.
func (r *Registry) Years() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	years := make([]int, 0, len(r.defs))
	for y := range r.defs {
		years = append(years, y)
	}
	slices.Sort(years)

	return years
}

// ForYear returns the days of year ordered by day.
func (r *Registry) ForYear(year int) ([]Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days, ok := r.defs[year]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "no solutions for year %d", year)
	}

	out := make([]Definition, 0, len(days))
	for _, d := range days {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b Definition) int { return a.Day - b.Day })

	return out, nil
}

// Find returns the definition of a single day.
func (r *Registry) Find(year, day int) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.defs[year][day]
	if !ok {
		return Definition{}, serrors.With(serrors.ErrNotFound, "no solution for year %d day %d", year, day)
	}

	return d, nil
}

// All returns every definition ordered by year and day.
func (r *Registry) All() []Definition {
	var out []Definition
	for _, y := range r.Years() {
		days, _ := r.ForYear(y)
		out = append(out, days...)
	}

	return out
}

var defaultRegistry = NewRegistry()

// Default returns the process wide registry used by the year packages.
func Default() *Registry { return defaultRegistry }

// Register adds d to the default registry.
func Register(d Definition) { defaultRegistry.Register(d) }
