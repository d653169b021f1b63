package y2025

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strconv"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2025, Day: 1, Name: "Secret Entrance",
		New: func() solution.Solver { return &day01{} },
	})
}

const dialSize = 100

// day01 turns a dial of 100 positions starting at 50.
type day01 struct {
	turns []int
}

func (d *day01) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		if len(line) < 2 {
			return fmt.Errorf("invalid turn %q", line)
		}
		n, err := strconv.Atoi(line[1:])
		if err != nil {
			return fmt.Errorf("invalid turn %q: %w", line, err)
		}
		if line[0] == 'L' {
			n = -n
		}
		d.turns = append(d.turns, n)

		return nil
	})
}

// Part1 counts the turns that end on 0.
func (d *day01) Part1() any {
	pos, zeros := 50, 0
	for _, t := range d.turns {
		pos = (pos + t) % dialSize
		if pos == 0 {
			zeros++
		}
	}

	return zeros
}

// Part2 counts every click that passes or lands on 0.
func (d *day01) Part2() any {
	pos, zeros := 50, 0
	for _, t := range d.turns {
		steps := t
		if steps < 0 {
			steps = -steps
		}
		zeros += steps / dialSize

		rest := t % dialSize
		next := pos + rest
		if pos != 0 && (next <= 0 || next >= dialSize) {
			zeros++
		}
		pos = ((next % dialSize) + dialSize) % dialSize
	}

	return zeros
}
