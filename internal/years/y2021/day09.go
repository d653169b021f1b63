package y2021

import (
	"advent/internal/algo"
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
	"slices"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 9, Name: "Smoke Basin",
		New: func() solution.Solver { return &day09{} },
	})
}

type day09 struct {
	heights *grid.CharGrid
}

func (d *day09) ReadInput(in *input.Loader) (err error) {
	d.heights, err = in.CharGrid()

	return err
}

func (d *day09) lowPoints() []geo.Point {
	var out []geo.Point
	for y := 0; y < d.heights.Rows(); y++ {
		for x := 0; x < d.heights.Cols(); x++ {
			p := geo.Pt(x, y)
			h := d.heights.AtPoint(p)
			low := true
			for _, n := range p.Neighbours() {
				if d.heights.Contains(n) && d.heights.AtPoint(n) <= h {
					low = false
				}
			}
			if low {
				out = append(out, p)
			}
		}
	}

	return out
}

func (d *day09) Part1() any {
	risk := 0
	for _, p := range d.lowPoints() {
		risk += int(d.heights.AtPoint(p)-'0') + 1
	}

	return risk
}

// Part2 multiplies the sizes of the three largest basins. Basins are bounded
// by height 9.
func (d *day09) Part2() any {
	var sizes []int
	for _, low := range d.lowPoints() {
		basin := algo.BFS(low, func(p geo.Point) []geo.Point {
			var next []geo.Point
			for _, n := range p.Neighbours() {
				if d.heights.Contains(n) && d.heights.AtPoint(n) != '9' {
					next = append(next, n)
				}
			}

			return next
		})
		sizes = append(sizes, len(basin))
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)

	return sizes[0] * sizes[1] * sizes[2]
}
