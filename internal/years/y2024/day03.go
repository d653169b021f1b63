package y2024

import (
	"advent/internal/input"
	"advent/internal/solution"
	"regexp"
	"strconv"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 3, Name: "Mull it over",
		New: func() solution.Solver { return &day03{} },
	})
}

var instruction = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`) //nolint: gochecknoglobals

type day03 struct {
	memory string
}

func (d *day03) ReadInput(in *input.Loader) (err error) {
	d.memory, err = in.String()

	return err
}

func (d *day03) run(conditionals bool) int {
	enabled := true
	total := 0
	for _, m := range instruction.FindAllStringSubmatch(d.memory, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = !conditionals
		default:
			if enabled {
				a, _ := strconv.Atoi(m[1])
				b, _ := strconv.Atoi(m[2])
				total += a * b
			}
		}
	}

	return total
}

func (d *day03) Part1() any { return d.run(false) }

// Part2 honours the do() and don't() instructions.
func (d *day03) Part2() any { return d.run(true) }
