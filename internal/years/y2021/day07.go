package y2021

import (
	"advent/internal/algo"
	"advent/internal/input"
	"advent/internal/solution"
	"math"
	"slices"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 7, Name: "The Treachery of Whales",
		New: func() solution.Solver { return &day07{} },
	})
}

type day07 struct {
	crabs []int
}

func (d *day07) ReadInput(in *input.Loader) error {
	s, err := in.String()
	if err != nil {
		return err
	}
	d.crabs = input.Ints(s)
	slices.Sort(d.crabs)

	return nil
}

// Part1 aligns on the median, which minimises the sum of distances.
func (d *day07) Part1() any {
	median := d.crabs[len(d.crabs)/2]

	return d.fuel(median, func(n int) int { return n })
}

// Part2 uses triangular fuel costs; every position between the extremes is tried.
func (d *day07) Part2() any {
	best := math.MaxInt
	for pos := d.crabs[0]; pos <= d.crabs[len(d.crabs)-1]; pos++ {
		best = min(best, d.fuel(pos, func(n int) int { return n * (n + 1) / 2 }))
	}

	return best
}

func (d *day07) fuel(pos int, cost func(int) int) int {
	total := 0
	for _, c := range d.crabs {
		total += cost(algo.Abs(c - pos))
	}

	return total
}
