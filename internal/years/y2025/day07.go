package y2025

import (
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2025, Day: 7, Name: "Laboratories",
		New: func() solution.Solver { return &day07{} },
	})
}

// day07 follows a tachyon beam down through splitters.
type day07 struct {
	grid  *grid.CharGrid
	start int
}

func (d *day07) ReadInput(in *input.Loader) error {
	g, err := in.CharGrid()
	if err != nil {
		return err
	}

	start, ok := g.FindFirst('S')
	if !ok {
		return fmt.Errorf("manifold has no start")
	}
	d.grid, d.start = g, start.X

	return nil
}

// Part1 counts the splitters a beam hits.
func (d *day07) Part1() any {
	splits, _ := d.beam()

	return splits
}

// Part2 counts the timelines a single particle ends up in.
func (d *day07) Part2() any {
	_, timelines := d.beam()

	return timelines
}

// beam moves row by row, tracking per column in how many timelines a beam
// is there. Beams that meet merge for the split count.
func (d *day07) beam() (int, int) {
	ways := map[int]int{d.start: 1}
	splits := 0
	for y := 1; y < d.grid.Rows(); y++ {
		next := make(map[int]int, len(ways))
		for x, n := range ways {
			if d.grid.At(x, y) != '^' {
				next[x] += n

				continue
			}
			splits++
			if d.grid.InBounds(x-1, y) {
				next[x-1] += n
			}
			if d.grid.InBounds(x+1, y) {
				next[x+1] += n
			}
		}
		ways = next
	}

	timelines := 0
	for _, n := range ways {
		timelines += n
	}

	return splits, timelines
}
