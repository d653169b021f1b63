package y2024

import (
	"advent/internal/algo"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 13, Name: "Claw Contraption",
		New: func() solution.Solver { return &day13{} },
	})
}

const prizeOffset = 10_000_000_000_000

type machine struct {
	ax, ay, bx, by, px, py int64
}

// tokens solves the two button presses with Cramer's rule; machines
// without a whole, non negative solution cost nothing.
func (m machine) tokens(offset int64) int64 {
	px, py := m.px+offset, m.py+offset
	det := algo.Determinant(m.ax, m.by, m.bx, m.ay)
	if det == 0 {
		return 0
	}

	a := algo.Determinant(px, m.by, m.bx, py)
	b := algo.Determinant(m.ax, py, px, m.ay)
	if a%det != 0 || b%det != 0 || a/det < 0 || b/det < 0 {
		return 0
	}

	return 3*(a/det) + b/det
}

type day13 struct {
	machines []machine
}

func (d *day13) ReadInput(in *input.Loader) error {
	blocks, err := in.Blocks()
	if err != nil {
		return err
	}

	for _, b := range blocks {
		v := input.Int64s(b)
		if len(v) != 6 {
			return fmt.Errorf("invalid machine %q", b)
		}
		d.machines = append(d.machines, machine{v[0], v[1], v[2], v[3], v[4], v[5]})
	}

	return nil
}

func (d *day13) cost(offset int64) int64 {
	var total int64
	for _, m := range d.machines {
		total += m.tokens(offset)
	}

	return total
}

func (d *day13) Part1() any { return d.cost(0) }

// Part2 moves every prize 10000000000000 further along both axes.
func (d *day13) Part2() any { return d.cost(prizeOffset) }
