package y2023

import (
	"advent/internal/input"
	"advent/internal/solution"
	"slices"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 9, Name: "Mirage Maintenance",
		New: func() solution.Solver { return &day09{} },
	})
}

type day09 struct {
	histories [][]int
}

func (d *day09) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		d.histories = append(d.histories, input.Ints(line))

		return nil
	})
}

// extrapolate predicts the next value from the successive differences.
func extrapolate(values []int) int {
	next := 0
	for len(values) > 0 {
		next += values[len(values)-1]
		zero := true
		diffs := make([]int, len(values)-1)
		for i := range diffs {
			diffs[i] = values[i+1] - values[i]
			zero = zero && diffs[i] == 0
		}
		if zero {
			break
		}
		values = diffs
	}

	return next
}

func (d *day09) Part1() any {
	total := 0
	for _, h := range d.histories {
		total += extrapolate(h)
	}

	return total
}

// Part2 extrapolates backwards, which is extrapolating the reversed history.
func (d *day09) Part2() any {
	total := 0
	for _, h := range d.histories {
		r := slices.Clone(h)
		slices.Reverse(r)
		total += extrapolate(r)
	}

	return total
}
