package y2022

import (
	"advent/internal/geo"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strconv"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2022, Day: 9, Name: "Rope Bridge",
		New: func() solution.Solver { return &day09{} },
	})
}

type motion struct {
	dir   geo.Point
	steps int
}

type day09 struct {
	motions []motion
}

func (d *day09) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		steps, err := strconv.Atoi(line[min(2, len(line)):])
		if len(line) < 3 || err != nil {
			return fmt.Errorf("invalid motion %q", line)
		}
		d.motions = append(d.motions, motion{dir: geo.DirectionFromChar(line[0]), steps: steps})

		return nil
	})
}

func (d *day09) Part1() any { return d.simulate(2) }

func (d *day09) Part2() any { return d.simulate(10) }

// simulate returns the number of positions the last of knots visits.
func (d *day09) simulate(knots int) int {
	rope := make([]geo.Point, knots)
	visited := map[geo.Point]bool{geo.Zero: true}
	for _, m := range d.motions {
		for range m.steps {
			rope[0] = rope[0].Add(m.dir)
			for i := 1; i < knots; i++ {
				if rope[i].Touches(rope[i-1]) {
					break
				}
				delta := rope[i-1].Sub(rope[i])
				rope[i] = rope[i].Translate(sign(delta.X), sign(delta.Y))
			}
			visited[rope[knots-1]] = true
		}
	}

	return len(visited)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
