package y2023

import (
	"advent/internal/geo"
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 11, Name: "Cosmic Expansion",
		New: func() solution.Solver { return &day11{} },
	})
}

type day11 struct {
	galaxies []geo.Point

	// prefix counts of empty rows and columns
	emptyRows, emptyCols []int
}

func (d *day11) ReadInput(in *input.Loader) error {
	image, err := in.CharGrid()
	if err != nil {
		return err
	}

	d.galaxies = image.Find('#')
	rowUsed := make([]bool, image.Rows())
	colUsed := make([]bool, image.Cols())
	for _, g := range d.galaxies {
		rowUsed[g.Y], colUsed[g.X] = true, true
	}
	d.emptyRows, d.emptyCols = prefixEmpty(rowUsed), prefixEmpty(colUsed)

	return nil
}

// prefixEmpty returns, for every index, how many unused indices come before it.
func prefixEmpty(used []bool) []int {
	out := make([]int, len(used)+1)
	for i, u := range used {
		out[i+1] = out[i]
		if !u {
			out[i+1]++
		}
	}

	return out
}

// distances sums the shortest paths between all galaxy pairs, with every
// empty row and column counting factor times.
func (d *day11) distances(factor int) int {
	expanded := make([]geo.Point, len(d.galaxies))
	for i, g := range d.galaxies {
		expanded[i] = geo.Pt(g.X+d.emptyCols[g.X]*(factor-1), g.Y+d.emptyRows[g.Y]*(factor-1))
	}

	total := 0
	for i := range expanded {
		for j := i + 1; j < len(expanded); j++ {
			total += expanded[i].Manhattan(expanded[j])
		}
	}

	return total
}

func (d *day11) Part1() any { return d.distances(2) }

func (d *day11) Part2() any { return d.distances(1_000_000) }
