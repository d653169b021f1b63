package y2022

import (
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2022, Day: 8, Name: "Treetop Tree House",
		New: func() solution.Solver { return &day08{} },
	})
}

type day08 struct {
	trees *grid.CharGrid
}

func (d *day08) ReadInput(in *input.Loader) (err error) {
	d.trees, err = in.CharGrid()

	return err
}

// look walks from p in dir and returns how many trees are seen and whether
// the view reaches the edge.
func (d *day08) look(p, dir geo.Point) (int, bool) {
	height := d.trees.AtPoint(p)
	seen := 0
	for n := p.Add(dir); d.trees.Contains(n); n = n.Add(dir) {
		seen++
		if d.trees.AtPoint(n) >= height {
			return seen, false
		}
	}

	return seen, true
}

func (d *day08) Part1() any {
	visible := 0
	for y := range d.trees.Rows() {
		for x := range d.trees.Cols() {
			for _, dir := range geo.Directions {
				if _, edge := d.look(geo.Pt(x, y), dir); edge {
					visible++

					break
				}
			}
		}
	}

	return visible
}

// Part2 finds the highest scenic score: the product of the viewing distances.
func (d *day08) Part2() any {
	best := 0
	for y := range d.trees.Rows() {
		for x := range d.trees.Cols() {
			score := 1
			for _, dir := range geo.Directions {
				seen, _ := d.look(geo.Pt(x, y), dir)
				score *= seen
			}
			best = max(best, score)
		}
	}

	return best
}
