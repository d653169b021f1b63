package y2022

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2022, Day: 10, Name: "Cathode-Ray Tube",
		New: func() solution.Solver { return &day10{} },
	})
}

const screenWidth = 40

// day10 records the X register during every cycle, starting with cycle 1.
type day10 struct {
	x []int
}

func (d *day10) ReadInput(in *input.Loader) error {
	x := 1

	return in.EachLine(func(line string) error {
		switch {
		case line == "noop":
			d.x = append(d.x, x)
		case strings.HasPrefix(line, "addx "):
			v, err := strconv.Atoi(strings.TrimPrefix(line, "addx "))
			if err != nil {
				return fmt.Errorf("invalid instruction %q: %w", line, err)
			}
			d.x = append(d.x, x, x)
			x += v
		default:
			return fmt.Errorf("unknown instruction %q", line)
		}

		return nil
	})
}

// Part1 sums the signal strength during cycles 20, 60 and every 40th after.
func (d *day10) Part1() any {
	total := 0
	for cycle := 20; cycle <= min(220, len(d.x)); cycle += screenWidth {
		total += cycle * d.x[cycle-1]
	}

	return total
}

// Part2 renders the CRT; a pixel lights up when the sprite covers it.
func (d *day10) Part2() any {
	var screen strings.Builder
	for i, x := range d.x {
		col := i % screenWidth
		if col == 0 {
			screen.WriteByte('\n')
		}
		if col >= x-1 && col <= x+1 {
			screen.WriteByte('#')
		} else {
			screen.WriteByte('.')
		}
	}

	return screen.String()
}
