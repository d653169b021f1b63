package y2022

import (
	"advent/internal/algo"
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"math"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2022, Day: 12, Name: "Hill Climbing Algorithm",
		New: func() solution.Solver { return &day12{} },
	})
}

// day12 searches backwards from the summit, so both parts share one walk.
type day12 struct {
	start, end geo.Point
	steps      map[geo.Point]int
	heights    *grid.CharGrid
}

func (d *day12) ReadInput(in *input.Loader) error {
	heights, err := in.CharGrid()
	if err != nil {
		return err
	}

	var okStart, okEnd bool
	d.start, okStart = heights.FindFirst('S')
	d.end, okEnd = heights.FindFirst('E')
	if !okStart || !okEnd {
		return fmt.Errorf("map needs a start and an end")
	}
	heights.SetPoint(d.start, 'a')
	heights.SetPoint(d.end, 'z')
	d.heights = heights

	d.steps = algo.BFS(d.end, func(p geo.Point) []geo.Point {
		var out []geo.Point
		for _, n := range p.Neighbours() {
			// reversed: the climb from n to p may go at most one up
			if heights.Contains(n) && heights.AtPoint(p) <= heights.AtPoint(n)+1 {
				out = append(out, n)
			}
		}

		return out
	})

	return nil
}

func (d *day12) Part1() any { return d.steps[d.start] }

// Part2 finds the shortest route from any square at elevation a.
func (d *day12) Part2() any {
	best := math.MaxInt
	for _, p := range d.heights.Find('a') {
		if steps, ok := d.steps[p]; ok {
			best = min(best, steps)
		}
	}

	return best
}
