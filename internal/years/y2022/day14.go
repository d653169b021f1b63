package y2022

import (
	"advent/internal/geo"
	"advent/internal/input"
	"advent/internal/solution"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2022, Day: 14, Name: "Regolith Reservoir",
		New: func() solution.Solver { return &day14{} },
	})
}

var sandSource = geo.Pt(500, 0) //nolint: gochecknoglobals

type day14 struct {
	rock   map[geo.Point]bool
	bottom int
}

func (d *day14) ReadInput(in *input.Loader) error {
	d.rock = map[geo.Point]bool{}

	return in.EachLine(func(line string) error {
		var prev *geo.Point
		for _, part := range strings.Split(line, " -> ") {
			p, err := geo.ParsePoint(part)
			if err != nil {
				return err
			}
			if prev != nil {
				for _, q := range (geo.Vector{Start: *prev, End: p}).Points() {
					d.rock[q] = true
				}
			}
			d.rock[p] = true
			d.bottom = max(d.bottom, p.Y)
			prev = &p
		}

		return nil
	})
}

// pour drops sand until it falls into the abyss or, with a floor, until the
// source is blocked. It returns the units of sand at rest.
func (d *day14) pour(floor bool) int {
	blocked := make(map[geo.Point]bool, len(d.rock))
	for p := range d.rock {
		blocked[p] = true
	}
	falls := []geo.Point{geo.South, geo.South.Add(geo.West), geo.South.Add(geo.East)}

	rested := 0
	for !blocked[sandSource] {
		sand := sandSource
		for {
			if !floor && sand.Y > d.bottom {
				return rested
			}

			moved := false
			for _, f := range falls {
				next := sand.Add(f)
				if !blocked[next] && (!floor || next.Y < d.bottom+2) {
					sand, moved = next, true

					break
				}
			}
			if !moved {
				break
			}
		}
		blocked[sand] = true
		rested++
	}

	return rested
}

func (d *day14) Part1() any { return d.pour(false) }

// Part2 adds an infinite floor two below the lowest rock.
func (d *day14) Part2() any { return d.pour(true) }
