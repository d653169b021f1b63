// Package aoctest runs solvers against the example inputs of the puzzles.
//
// Examples live in the testdata directory of a year package:
//
//	testdata/<year>/day_DD_<case>.txt
//	testdata/<year>/day_DD.properties
//
// The properties file records part1_<case> and part2_<case>. A part without a
// recorded answer for a case is not run, so an example may cover one part only.
package aoctest

import (
	"advent/internal/input"
	"advent/internal/solution"
	"advent/internal/validate"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Option tweaks a Run.
type Option func(*options)

type options struct {
	fsys      fs.FS
	overrides map[int]func() solution.Solver
}

// WithFS reads examples from fsys instead of the testdata directory.
func WithFS(fsys fs.FS) Option {
	return func(o *options) { o.fsys = fsys }
}

// Override replaces the constructor of a day, for puzzles whose examples use
// smaller parameters than the real input.
func Override(day int, fn func() solution.Solver) Option {
	return func(o *options) { o.overrides[day] = fn }
}

// Run checks every example case of every day registered for year in the
// default registry.
func Run(t *testing.T, year int, opts ...Option) {
	t.Helper()
	RunRegistry(t, solution.Default(), year, opts...)
}

// RunRegistry is Run over a specific registry.
func RunRegistry(t *testing.T, registry *solution.Registry, year int, opts ...Option) {
	t.Helper()

	o := options{fsys: os.DirFS("testdata"), overrides: map[int]func() solution.Solver{}}
	for _, opt := range opts {
		opt(&o)
	}

	defs, err := registry.ForYear(year)
	require.NoError(t, err)

	for _, def := range defs {
		newSolver := def.New
		if fn, ok := o.overrides[def.Day]; ok {
			newSolver = fn
		}

		cases, err := Cases(o.fsys, year, def.Day)
		require.NoError(t, err)

		for _, name := range cases {
			t.Run(fmt.Sprintf("day%02d/%s", def.Day, name), func(t *testing.T) {
				Check(t, o.fsys, newSolver(), year, def.Day, name)
			})
		}
	}
}

// Cases lists the example case names of a day, sorted.
func Cases(fsys fs.FS, year, day int) ([]string, error) {
	prefix := fmt.Sprintf("day_%02d_", day)
	matches, err := fs.Glob(fsys, fmt.Sprintf("%d/%s*.txt", year, prefix))
	if err != nil {
		return nil, fmt.Errorf("could not list examples: %w", err)
	}

	cases := make([]string, 0, len(matches))
	for _, m := range matches {
		cases = append(cases, strings.TrimSuffix(strings.TrimPrefix(path.Base(m), prefix), ".txt"))
	}

	return cases, nil
}

// Check solves one example case and compares the recorded answers.
func Check(t *testing.T, fsys fs.FS, solver solution.Solver, year, day int, name string) {
	t.Helper()

	ctx := context.Background()
	in := input.NewFileLoader(fsys, fmt.Sprintf("%d/day_%02d_%s.txt", year, day, name))
	require.NoError(t, solver.ReadInput(in))

	v, err := validate.Load(ctx, fsys, year, day)
	require.NoError(t, err)
	v = v.WithCase(name)

	checked := false
	if v.Has("part1_" + name) {
		require.NoError(t, v.Part1(ctx, solver.Part1()), "part 1")
		checked = true
	}
	if v.Has("part2_" + name) {
		require.NoError(t, v.Part2(ctx, solver.Part2()), "part 2")
		checked = true
	}
	if !checked {
		t.Skipf("no recorded answers for %d day %d case %s", year, day, name)
	}
}
