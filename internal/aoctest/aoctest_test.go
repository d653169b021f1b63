package aoctest_test

import (
	"advent/internal/aoctest"
	"advent/internal/input"
	"advent/internal/solution"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

type lines struct {
	n     int
	scale int
}

func (l *lines) ReadInput(in *input.Loader) error {
	ls, err := in.Lines()
	l.n = len(ls)

	return err
}

func (l *lines) Part1() any { return l.n }
func (l *lines) Part2() any { return l.n * l.scale }

func examples() fstest.MapFS {
	return fstest.MapFS{
		"2030/day_01_small.txt":   {Data: []byte("a\nb\n")},
		"2030/day_01_large.txt":   {Data: []byte("a\nb\nc\nd\n")},
		"2030/day_01.properties":  {Data: []byte("part1_small=2\npart2_small=20\npart1_large=4\n")},
		"2030/day_02_only.txt":    {Data: []byte("x\n")},
		"2030/day_02.properties":  {Data: []byte("part2_only=3\n")},
		"2030/day_03_unknown.txt": {Data: []byte("x\n")},
	}
}

func TestCases(t *testing.T) {
	cases, err := aoctest.Cases(examples(), 2030, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"large", "small"}, cases)

	cases, err = aoctest.Cases(examples(), 2030, 9)
	require.NoError(t, err)
	require.Empty(t, cases)
}

func TestRunRegistry(t *testing.T) {
	registry := solution.NewRegistry()
	registry.Register(solution.Definition{Year: 2030, Day: 1, New: func() solution.Solver { return &lines{scale: 10} }})
	registry.Register(solution.Definition{Year: 2030, Day: 2, New: func() solution.Solver { return &lines{scale: 1} }})
	registry.Register(solution.Definition{Year: 2030, Day: 3, New: func() solution.Solver { return &lines{} }})

	aoctest.RunRegistry(t, registry, 2030,
		aoctest.WithFS(examples()),
		aoctest.Override(2, func() solution.Solver { return &lines{scale: 3} }))
}
