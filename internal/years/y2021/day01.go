package y2021

import (
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 1, Name: "Sonar Sweep",
		New: func() solution.Solver { return &day01{} },
	})
}

type day01 struct {
	depths []int
}

func (d *day01) ReadInput(in *input.Loader) (err error) {
	d.depths, err = in.Ints()

	return err
}

func (d *day01) Part1() any { return d.increases(1) }

// Part2 compares sliding windows of three; consecutive windows share two
// measurements, so only the outer ones matter.
func (d *day01) Part2() any { return d.increases(3) }

func (d *day01) increases(window int) int {
	n := 0
	for i := window; i < len(d.depths); i++ {
		if d.depths[i] > d.depths[i-window] {
			n++
		}
	}

	return n
}
