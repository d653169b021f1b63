package y2024

import (
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 10, Name: "Hoof it",
		New: func() solution.Solver { return &day10{} },
	})
}

type day10 struct {
	topo *grid.CharGrid
}

func (d *day10) ReadInput(in *input.Loader) (err error) {
	d.topo, err = in.CharGrid()

	return err
}

// trails returns, for every summit reachable from p, the number of distinct
// hiking trails leading to it.
func (d *day10) trails(p geo.Point) map[geo.Point]int {
	height := d.topo.AtPoint(p)
	if height == '9' {
		return map[geo.Point]int{p: 1}
	}

	out := map[geo.Point]int{}
	for _, n := range p.Neighbours() {
		if d.topo.AtPoint(n) == height+1 {
			for summit, count := range d.trails(n) {
				out[summit] += count
			}
		}
	}

	return out
}

// Part1 sums the number of summits reachable from each trailhead.
func (d *day10) Part1() any {
	total := 0
	for _, head := range d.topo.Find('0') {
		total += len(d.trails(head))
	}

	return total
}

// Part2 sums the number of distinct trails from each trailhead.
func (d *day10) Part2() any {
	total := 0
	for _, head := range d.topo.Find('0') {
		for _, count := range d.trails(head) {
			total += count
		}
	}

	return total
}
