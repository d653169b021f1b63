package solution_test

import (
	"advent/internal/input"
	"advent/internal/solution"
	"advent/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stub struct{}

func (stub) ReadInput(*input.Loader) error { return nil }
func (stub) Part1() any                    { return 1 }
func (stub) Part2() any                    { return 2 }

func def(year, day int) solution.Definition {
	return solution.Definition{Year: year, Day: day, Name: "stub", New: func() solution.Solver { return stub{} }}
}

func TestRegistry(t *testing.T) {
	r := solution.NewRegistry()
	r.Register(def(2023, 2))
	r.Register(def(2022, 5))
	r.Register(def(2023, 1))

	require.Equal(t, []int{2022, 2023}, r.Years())

	days, err := r.ForYear(2023)
	require.NoError(t, err)
	require.Len(t, days, 2)
	require.Equal(t, 1, days[0].Day)
	require.Equal(t, 2, days[1].Day)

	_, err = r.ForYear(2019)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	d, err := r.Find(2022, 5)
	require.NoError(t, err)
	require.Equal(t, "stub", d.Name)

	_, err = r.Find(2022, 6)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	all := r.All()
	require.Len(t, all, 3)
	require.Equal(t, 2022, all[0].Year)
	require.Equal(t, 2, all[2].Day)
}

func TestRegistry_Panics(t *testing.T) {
	r := solution.NewRegistry()
	r.Register(def(2022, 1))

	require.Panics(t, func() { r.Register(def(2022, 1)) })
	require.Panics(t, func() { r.Register(def(2022, 0)) })
	require.Panics(t, func() { r.Register(def(2022, 26)) })
	require.Panics(t, func() { r.Register(solution.Definition{Year: 2022, Day: 3}) })
}

func TestDefinition_URIs(t *testing.T) {
	d := def(2024, 7)
	require.Equal(t, "https://adventofcode.com/2024/day/7", d.InstructionURI())
	require.Equal(t, "internal/years/y2024/day07.go", d.SourcePath())
}
