package y2023

import (
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 13, Name: "Point of Incidence",
		New: func() solution.Solver { return &day13{} },
	})
}

type day13 struct {
	patterns []*grid.CharGrid
}

func (d *day13) ReadInput(in *input.Loader) error {
	blocks, err := in.Blocks()
	if err != nil {
		return err
	}

	for _, b := range blocks {
		d.patterns = append(d.patterns, grid.Parse(b))
	}

	return nil
}

// mirrorRow returns the number of rows above a horizontal mirror that has
// exactly smudges differences across it, or 0.
func mirrorRow(g *grid.CharGrid, smudges int) int {
	for y := 1; y < g.Rows(); y++ {
		diff := 0
		for above, below := y-1, y; above >= 0 && below < g.Rows() && diff <= smudges; above, below = above-1, below+1 {
			for x := range g.Cols() {
				if g.At(x, above) != g.At(x, below) {
					diff++
				}
			}
		}
		if diff == smudges {
			return y
		}
	}

	return 0
}

func (d *day13) summarize(smudges int) int {
	total := 0
	for _, p := range d.patterns {
		if row := mirrorRow(p, smudges); row > 0 {
			total += 100 * row
		} else {
			total += mirrorRow(p.Transpose(), smudges)
		}
	}

	return total
}

func (d *day13) Part1() any { return d.summarize(0) }

// Part2 looks for the mirror that appears once the single smudge is fixed.
func (d *day13) Part2() any { return d.summarize(1) }
