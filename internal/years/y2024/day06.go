package y2024

import (
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 6, Name: "Guard Gallivant",
		New: func() solution.Solver { return &day06{} },
	})
}

type guard struct {
	pos, dir geo.Point
}

type day06 struct {
	lab   *grid.CharGrid
	start geo.Point
}

func (d *day06) ReadInput(in *input.Loader) error {
	lab, err := in.CharGrid()
	if err != nil {
		return err
	}

	start, ok := lab.FindFirst('^')
	if !ok {
		return fmt.Errorf("lab has no guard")
	}
	lab.SetPoint(start, '.')
	d.lab, d.start = lab, start

	return nil
}

// patrol walks the guard until it leaves the lab. It returns the visited
// positions and whether the guard got stuck in a loop instead.
func (d *day06) patrol(extra geo.Point, blocked bool) (map[geo.Point]bool, bool) {
	g := guard{d.start, geo.North}
	visited := map[geo.Point]bool{}
	seen := map[guard]bool{}
	for d.lab.Contains(g.pos) {
		if seen[g] {
			return visited, true
		}
		seen[g] = true
		visited[g.pos] = true

		next := g.pos.Add(g.dir)
		if d.lab.AtPoint(next) == '#' || (blocked && next == extra) {
			g.dir = g.dir.RotateCW()
		} else {
			g.pos = next
		}
	}

	return visited, false
}

func (d *day06) Part1() any {
	visited, _ := d.patrol(geo.Zero, false)

	return len(visited)
}

// Part2 counts the positions where one new obstruction traps the guard in a
// loop. Only positions on the original route can change the path.
func (d *day06) Part2() any {
	route, _ := d.patrol(geo.Zero, false)
	n := 0
	for p := range route {
		if p == d.start {
			continue
		}
		if _, loops := d.patrol(p, true); loops {
			n++
		}
	}

	return n
}
