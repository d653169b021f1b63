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
		Year: 2024, Day: 8, Name: "Resonant Collinearity",
		New: func() solution.Solver { return &day08{} },
	})
}

type day08 struct {
	city     *grid.CharGrid
	antennas map[byte][]geo.Point
}

func (d *day08) ReadInput(in *input.Loader) error {
	city, err := in.CharGrid()
	if err != nil {
		return err
	}

	d.city = city
	d.antennas = map[byte][]geo.Point{}
	for y := range city.Rows() {
		for x, c := range city.Row(y) {
			if c != '.' {
				d.antennas[c] = append(d.antennas[c], geo.Pt(x, y))
			}
		}
	}

	return nil
}

// antinodes collects the points in line with every pair of equal antennas.
// Without harmonics only the points at twice the distance count.
func (d *day08) antinodes(harmonics bool) int {
	found := map[geo.Point]bool{}
	for _, points := range d.antennas {
		for _, a := range points {
			for _, b := range points {
				if a == b {
					continue
				}
				step := b.Sub(a)
				if !harmonics {
					if p := b.Add(step); d.city.Contains(p) {
						found[p] = true
					}

					continue
				}
				g := algo.Abs(algo.GCD(step.X, step.Y))
				step = geo.Pt(step.X/g, step.Y/g)
				for p := b; d.city.Contains(p); p = p.Add(step) {
					found[p] = true
				}
			}
		}
	}

	return len(found)
}

func (d *day08) Part1() any { return d.antinodes(false) }

// Part2 counts every grid position in line with two antennas.
func (d *day08) Part2() any { return d.antinodes(true) }
