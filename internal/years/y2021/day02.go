package y2021

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 2, Name: "Dive!",
		New: func() solution.Solver { return &day02{} },
	})
}

type command struct {
	action string
	amount int
}

type day02 struct {
	commands []command
}

func (d *day02) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		action, amount, ok := strings.Cut(line, " ")
		if !ok {
			return fmt.Errorf("invalid command %q", line)
		}
		n, err := strconv.Atoi(amount)
		if err != nil {
			return fmt.Errorf("invalid command %q: %w", line, err)
		}
		d.commands = append(d.commands, command{action, n})

		return nil
	})
}

func (d *day02) Part1() any {
	horizontal, depth := 0, 0
	for _, c := range d.commands {
		switch c.action {
		case "forward":
			horizontal += c.amount
		case "down":
			depth += c.amount
		case "up":
			depth -= c.amount
		}
	}

	return horizontal * depth
}

func (d *day02) Part2() any {
	horizontal, depth, aim := 0, 0, 0
	for _, c := range d.commands {
		switch c.action {
		case "forward":
			horizontal += c.amount
			depth += aim * c.amount
		case "down":
			aim += c.amount
		case "up":
			aim -= c.amount
		}
	}

	return horizontal * depth
}
