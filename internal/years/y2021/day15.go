package y2021

import (
	"advent/internal/algo"
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 15, Name: "Chiton",
		New: func() solution.Solver { return &day15{} },
	})
}

type day15 struct {
	risk *grid.CharGrid
}

func (d *day15) ReadInput(in *input.Loader) (err error) {
	d.risk, err = in.CharGrid()

	return err
}

func (d *day15) Part1() any { return d.lowestRisk(1) }

// Part2 tiles the cave five times in both directions; risk grows by one per
// tile and wraps from 9 back to 1.
func (d *day15) Part2() any { return d.lowestRisk(5) }

func (d *day15) lowestRisk(tiles int) int {
	w, h := d.risk.Cols(), d.risk.Rows()
	width, height := w*tiles, h*tiles
	risk := func(p geo.Point) int {
		base := int(d.risk.At(p.X%w, p.Y%h) - '0')

		return (base+p.X/w+p.Y/h-1)%9 + 1
	}

	goal := geo.Pt(width-1, height-1)
	_, cost, _ := algo.Dijkstra([]geo.Point{geo.Zero}, func(p geo.Point) []algo.Edge[geo.Point] {
		edges := make([]algo.Edge[geo.Point], 0, 4)
		for _, n := range p.Neighbours() {
			if n.X >= 0 && n.Y >= 0 && n.X < width && n.Y < height {
				edges = append(edges, algo.Edge[geo.Point]{To: n, Cost: risk(n)})
			}
		}

		return edges
	}, func(p geo.Point) bool { return p == goal })

	return cost
}
