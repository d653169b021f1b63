package y2021

import (
	"advent/internal/geo"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 5, Name: "Hydrothermal Venture",
		New: func() solution.Solver { return &day05{} },
	})
}

type day05 struct {
	vents []geo.Vector
}

func (d *day05) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		from, to, ok := strings.Cut(line, " -> ")
		if !ok {
			return fmt.Errorf("invalid vent %q", line)
		}
		start, err := geo.ParsePoint(from)
		if err != nil {
			return err
		}
		end, err := geo.ParsePoint(to)
		if err != nil {
			return err
		}
		d.vents = append(d.vents, geo.Vector{Start: start, End: end})

		return nil
	})
}

func (d *day05) Part1() any { return d.overlaps(false) }

func (d *day05) Part2() any { return d.overlaps(true) }

func (d *day05) overlaps(diagonals bool) int {
	seen := map[geo.Point]int{}
	for _, v := range d.vents {
		if !v.IsHorizontal() && !v.IsVertical() && !(diagonals && v.IsDiagonal()) {
			continue
		}
		for _, p := range v.Points() {
			seen[p]++
		}
	}

	n := 0
	for _, c := range seen {
		if c > 1 {
			n++
		}
	}

	return n
}
