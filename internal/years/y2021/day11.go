package y2021

import (
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 11, Name: "Dumbo Octopus",
		New: func() solution.Solver { return &day11{} },
	})
}

type day11 struct {
	energy *grid.Grid[int]
}

func (d *day11) ReadInput(in *input.Loader) error {
	lines, err := in.Lines()
	if err != nil {
		return err
	}
	d.energy = grid.FromLines(lines, func(_ geo.Point, c byte) int { return int(c - '0') })

	return nil
}

func (d *day11) clone() *grid.Grid[int] {
	g := grid.NewGrid[int](d.energy.Width(), d.energy.Height())
	for y := range d.energy.Height() {
		for x := range d.energy.Width() {
			g.Set(x, y, d.energy.At(x, y))
		}
	}

	return g
}

// step advances the octopuses once and returns how many flashed.
func step(g *grid.Grid[int]) int {
	var flashing []geo.Point
	for y := range g.Height() {
		for x := range g.Width() {
			g.Set(x, y, g.At(x, y)+1)
			if g.At(x, y) > 9 {
				flashing = append(flashing, geo.Pt(x, y))
			}
		}
	}

	flashed := map[geo.Point]bool{}
	for len(flashing) > 0 {
		p := flashing[len(flashing)-1]
		flashing = flashing[:len(flashing)-1]
		if flashed[p] {
			continue
		}
		flashed[p] = true
		for _, n := range p.AllNeighbours() {
			if !g.Contains(n) || flashed[n] {
				continue
			}
			g.SetPoint(n, g.AtPoint(n)+1)
			if g.AtPoint(n) > 9 {
				flashing = append(flashing, n)
			}
		}
	}

	for p := range flashed {
		g.SetPoint(p, 0)
	}

	return len(flashed)
}

func (d *day11) Part1() any {
	g := d.clone()
	total := 0
	for range 100 {
		total += step(g)
	}

	return total
}

// Part2 finds the first step in which every octopus flashes.
func (d *day11) Part2() any {
	g := d.clone()
	all := g.Width() * g.Height()
	for n := 1; ; n++ {
		if step(g) == all {
			return n
		}
	}
}
