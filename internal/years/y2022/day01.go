package y2022

import (
	"advent/internal/algo"
	"advent/internal/input"
	"advent/internal/solution"
	"slices"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2022, Day: 1, Name: "Calorie Counting",
		New: func() solution.Solver { return &day01{} },
	})
}

// day01 keeps the calories each elf carries, largest first.
type day01 struct {
	calories []int
}

func (d *day01) ReadInput(in *input.Loader) error {
	blocks, err := in.Blocks()
	if err != nil {
		return err
	}

	for _, b := range blocks {
		d.calories = append(d.calories, algo.Sum(input.Ints(b)))
	}
	slices.Sort(d.calories)
	slices.Reverse(d.calories)

	return nil
}

func (d *day01) Part1() any { return d.calories[0] }

func (d *day01) Part2() any { return algo.Sum(d.calories[:min(3, len(d.calories))]) }
