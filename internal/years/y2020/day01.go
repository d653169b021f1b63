// Package y2020 holds the solutions of Advent of Code 2020.
package y2020

import (
	"advent/internal/input"
	"advent/internal/solution"
	"slices"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2020, Day: 1, Name: "Report Repair",
		New: func() solution.Solver { return &day01{} },
	})
}

const target = 2020

// day01 finds the expense entries that sum to 2020.
type day01 struct {
	entries []int
}

func (d *day01) ReadInput(in *input.Loader) error {
	entries, err := in.Ints()
	if err != nil {
		return err
	}
	slices.Sort(entries)
	d.entries = entries

	return nil
}

func (d *day01) Part1() any {
	a, b, ok := pair(d.entries, target)
	if !ok {
		return 0
	}

	return a * b
}

func (d *day01) Part2() any {
	for i, a := range d.entries {
		if b, c, ok := pair(d.entries[i+1:], target-a); ok {
			return a * b * c
		}
	}

	return 0
}

// pair finds two entries of the sorted slice that add up to sum.
func pair(sorted []int, sum int) (int, int, bool) {
	lo, hi := 0, len(sorted)-1
	for lo < hi {
		switch s := sorted[lo] + sorted[hi]; {
		case s == sum:
			return sorted[lo], sorted[hi], true
		case s < sum:
			lo++
		default:
			hi--
		}
	}

	return 0, 0, false
}
