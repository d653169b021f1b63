package y2024

import (
	"advent/internal/algo"
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 12, Name: "Garden Groups",
		New: func() solution.Solver { return &day12{} },
	})
}

type region struct {
	plots map[geo.Point]int
	plant byte
}

type day12 struct {
	garden  *grid.CharGrid
	regions []region
}

func (d *day12) ReadInput(in *input.Loader) error {
	garden, err := in.CharGrid()
	if err != nil {
		return err
	}
	d.garden = garden

	assigned := map[geo.Point]bool{}
	for y := range garden.Rows() {
		for x := range garden.Cols() {
			p := geo.Pt(x, y)
			if assigned[p] {
				continue
			}
			plant := garden.AtPoint(p)
			plots := algo.BFS(p, func(q geo.Point) []geo.Point {
				var out []geo.Point
				for _, n := range q.Neighbours() {
					if garden.AtPoint(n) == plant {
						out = append(out, n)
					}
				}

				return out
			})
			for q := range plots {
				assigned[q] = true
			}
			d.regions = append(d.regions, region{plots: plots, plant: plant})
		}
	}

	return nil
}

func (d *day12) inRegion(r region, p geo.Point) bool {
	_, ok := r.plots[p]

	return ok
}

// Part1 prices every region by area times perimeter.
func (d *day12) Part1() any {
	total := 0
	for _, r := range d.regions {
		perimeter := 0
		for p := range r.plots {
			for _, n := range p.Neighbours() {
				if !d.inRegion(r, n) {
					perimeter++
				}
			}
		}
		total += len(r.plots) * perimeter
	}

	return total
}

// Part2 prices by area times the number of sides. A region has as many
// sides as corners, so every plot counts its convex and concave corners.
func (d *day12) Part2() any {
	total := 0
	for _, r := range d.regions {
		corners := 0
		for p := range r.plots {
			for _, dir := range geo.Directions {
				side := dir.RotateCW()
				a, b := d.inRegion(r, p.Add(dir)), d.inRegion(r, p.Add(side))
				diagonal := d.inRegion(r, p.Add(dir).Add(side))
				if (!a && !b) || (a && b && !diagonal) {
					corners++
				}
			}
		}
		total += len(r.plots) * corners
	}

	return total
}
