package y2024

import (
	"advent/internal/input"
	"advent/internal/solution"
	"slices"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 2, Name: "Red-Nosed Reports",
		New: func() solution.Solver { return &day02{} },
	})
}

type day02 struct {
	reports [][]int
}

func (d *day02) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		d.reports = append(d.reports, input.Ints(line))

		return nil
	})
}

// safe reports whether levels strictly increase or decrease by 1 to 3.
func safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	increasing := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		diff := levels[i] - levels[i-1]
		if !increasing {
			diff = -diff
		}
		if diff < 1 || diff > 3 {
			return false
		}
	}

	return true
}

func (d *day02) Part1() any {
	n := 0
	for _, r := range d.reports {
		if safe(r) {
			n++
		}
	}

	return n
}

// Part2 tolerates a single bad level.
func (d *day02) Part2() any {
	n := 0
	for _, r := range d.reports {
		for skip := range r {
			if safe(slices.Delete(slices.Clone(r), skip, skip+1)) {
				n++

				break
			}
		}
	}

	return n
}
