package y2023

import (
	"advent/internal/algo"
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 17,
		New: func() solution.Solver { return &day17{} },
	})
}

// crucible is a search node: where it is, where it heads and for how long
// it has gone straight.
type crucible struct {
	pos, dir geo.Point
	straight int
}

type day17 struct {
	city *grid.CharGrid
}

func (d *day17) ReadInput(in *input.Loader) (err error) {
	d.city, err = in.CharGrid()

	return err
}

// leastHeatLoss finds the cheapest path to the bottom right corner for a
// crucible that must go straight at least minRun and at most maxRun blocks.
func (d *day17) leastHeatLoss(minRun, maxRun int) int {
	goal := geo.Pt(d.city.Cols()-1, d.city.Rows()-1)
	starts := []crucible{{dir: geo.East}, {dir: geo.South}}

	_, loss, _ := algo.Dijkstra(starts, func(c crucible) []algo.Edge[crucible] {
		var edges []algo.Edge[crucible]
		moves := []crucible{
			{dir: c.dir, straight: c.straight + 1},
			{dir: c.dir.RotateCW(), straight: 1},
			{dir: c.dir.RotateCCW(), straight: 1},
		}
		for i, m := range moves {
			turning := i > 0
			if (turning && c.straight < minRun) || (!turning && c.straight >= maxRun) {
				continue
			}
			m.pos = c.pos.Add(m.dir)
			if !d.city.Contains(m.pos) {
				continue
			}
			edges = append(edges, algo.Edge[crucible]{To: m, Cost: int(d.city.AtPoint(m.pos) - '0')})
		}

		return edges
	}, func(c crucible) bool { return c.pos == goal && c.straight >= minRun })

	return loss
}

func (d *day17) Part1() any { return d.leastHeatLoss(0, 3) }

// Part2 steers an ultra crucible.
func (d *day17) Part2() any { return d.leastHeatLoss(4, 10) }
