package y2023

import (
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
	"slices"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 14,
		New: func() solution.Solver { return &day14{} },
	})
}

type day14 struct {
	platform *grid.CharGrid
}

func (d *day14) ReadInput(in *input.Loader) (err error) {
	d.platform, err = in.CharGrid()

	return err
}

// tilt rolls every round rock ('O') as far as it goes in dir.
func tilt(g *grid.CharGrid, dir geo.Point) {
	rocks := g.Find('O')
	// rocks closest to the destination edge move first
	if dir == geo.South || dir == geo.East {
		slices.Reverse(rocks)
	}

	for _, r := range rocks {
		p := r
		for next := p.Add(dir); g.AtPoint(next) == '.'; next = next.Add(dir) {
			p = next
		}
		g.SetPoint(r, '.')
		g.SetPoint(p, 'O')
	}
}

func load(g *grid.CharGrid) int {
	total := 0
	for _, r := range g.Find('O') {
		total += g.Rows() - r.Y
	}

	return total
}

func (d *day14) Part1() any {
	g := d.platform.Clone()
	tilt(g, geo.North)

	return load(g)
}

// Part2 spins the platform a billion times, skipping ahead once the
// arrangement repeats.
func (d *day14) Part2() any {
	const cycles = 1_000_000_000

	g := d.platform.Clone()
	seen := map[string]int{}
	for i := 0; i < cycles; i++ {
		key := g.String()
		if first, ok := seen[key]; ok {
			remaining := (cycles - i) % (i - first)
			for range remaining {
				spin(g)
			}

			return load(g)
		}
		seen[key] = i
		spin(g)
	}

	return load(g)
}

func spin(g *grid.CharGrid) {
	for _, dir := range []geo.Point{geo.North, geo.West, geo.South, geo.East} {
		tilt(g, dir)
	}
}
