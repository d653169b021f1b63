package y2025

import (
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2025, Day: 4, Name: "Printing Department",
		New: func() solution.Solver { return &day04{} },
	})
}

const roll = '@'

// day04 finds paper rolls a forklift can reach: fewer than four neighbours.
type day04 struct {
	grid *grid.CharGrid
}

func (d *day04) ReadInput(in *input.Loader) (err error) {
	d.grid, err = in.CharGrid()

	return err
}

func (d *day04) Part1() any {
	return len(accessible(d.grid))
}

// Part2 keeps removing accessible rolls until none are left.
func (d *day04) Part2() any {
	g := d.grid.Clone()
	removed := 0
	for {
		rolls := accessible(g)
		if len(rolls) == 0 {
			return removed
		}
		removed += len(rolls)
		for _, p := range rolls {
			g.SetPoint(p, '.')
		}
	}
}

func accessible(g *grid.CharGrid) []geo.Point {
	window := grid.NewVirtual[byte](g, 3, 3)

	var out []geo.Point
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if g.At(x, y) != roll {
				continue
			}
			window.Position(x, y)
			// the window includes the roll itself
			if window.Count(roll) <= 4 {
				out = append(out, geo.Pt(x, y))
			}
		}
	}

	return out
}
