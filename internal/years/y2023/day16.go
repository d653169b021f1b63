package y2023

import (
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 16,
		New: func() solution.Solver { return &day16{} },
	})
}

type beam struct {
	pos, dir geo.Point
}

type day16 struct {
	contraption *grid.CharGrid
}

func (d *day16) ReadInput(in *input.Loader) (err error) {
	d.contraption, err = in.CharGrid()

	return err
}

// bounce returns the directions a beam continues in after entering tile c.
func bounce(c byte, dir geo.Point) []geo.Point {
	switch c {
	case '/':
		return []geo.Point{{X: -dir.Y, Y: -dir.X}}
	case '\\':
		return []geo.Point{{X: dir.Y, Y: dir.X}}
	case '|':
		if dir.X != 0 {
			return []geo.Point{geo.North, geo.South}
		}
	case '-':
		if dir.Y != 0 {
			return []geo.Point{geo.East, geo.West}
		}
	}

	return []geo.Point{dir}
}

// energize counts the tiles a beam entering at start passes through.
func (d *day16) energize(start beam) int {
	seen := map[beam]bool{}
	energized := map[geo.Point]bool{}
	queue := []beam{start}
	for len(queue) > 0 {
		b := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if !d.contraption.Contains(b.pos) || seen[b] {
			continue
		}
		seen[b] = true
		energized[b.pos] = true
		for _, dir := range bounce(d.contraption.AtPoint(b.pos), b.dir) {
			queue = append(queue, beam{b.pos.Add(dir), dir})
		}
	}

	return len(energized)
}

func (d *day16) Part1() any { return d.energize(beam{geo.Zero, geo.East}) }

// Part2 tries every edge tile as the entry point.
func (d *day16) Part2() any {
	rows, cols := d.contraption.Rows(), d.contraption.Cols()
	best := 0
	for y := range rows {
		best = max(best, d.energize(beam{geo.Pt(0, y), geo.East}), d.energize(beam{geo.Pt(cols-1, y), geo.West}))
	}
	for x := range cols {
		best = max(best, d.energize(beam{geo.Pt(x, 0), geo.South}), d.energize(beam{geo.Pt(x, rows-1), geo.North}))
	}

	return best
}
