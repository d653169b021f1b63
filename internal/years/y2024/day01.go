package y2024

import (
	"advent/internal/algo"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"slices"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 1, Name: "Historian Hysteria",
		New: func() solution.Solver { return &day01{} },
	})
}

type day01 struct {
	left, right []int
}

func (d *day01) ReadInput(in *input.Loader) error {
	err := in.EachLine(func(line string) error {
		v := input.Ints(line)
		if len(v) != 2 {
			return fmt.Errorf("invalid location pair %q", line)
		}
		d.left = append(d.left, v[0])
		d.right = append(d.right, v[1])

		return nil
	})
	slices.Sort(d.left)
	slices.Sort(d.right)

	return err
}

// Part1 pairs the lists up smallest to smallest and sums the distances.
func (d *day01) Part1() any {
	total := 0
	for i := range d.left {
		total += algo.Abs(d.left[i] - d.right[i])
	}

	return total
}

// Part2 sums every left number times its occurrences in the right list.
func (d *day01) Part2() any {
	counts := map[int]int{}
	for _, v := range d.right {
		counts[v]++
	}

	similarity := 0
	for _, v := range d.left {
		similarity += v * counts[v]
	}

	return similarity
}
