package y2022

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2022, Day: 2, Name: "Rock Paper Scissors",
		New: func() solution.Solver { return &day02{} },
	})
}

// round holds both columns as 0 (rock), 1 (paper) or 2 (scissors).
type round struct {
	opponent, own int
}

type day02 struct {
	rounds []round
}

func (d *day02) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		if len(line) != 3 || line[0] < 'A' || line[0] > 'C' || line[2] < 'X' || line[2] > 'Z' {
			return fmt.Errorf("invalid round %q", line)
		}
		d.rounds = append(d.rounds, round{opponent: int(line[0] - 'A'), own: int(line[2] - 'X')})

		return nil
	})
}

// score of playing own against opponent: the shape plus 0, 3 or 6 for the outcome.
func score(opponent, own int) int {
	outcome := (own - opponent + 4) % 3

	return own + 1 + outcome*3
}

// Part1 reads the second column as the shape to play.
func (d *day02) Part1() any {
	total := 0
	for _, r := range d.rounds {
		total += score(r.opponent, r.own)
	}

	return total
}

// Part2 reads the second column as the outcome: lose, draw or win.
func (d *day02) Part2() any {
	total := 0
	for _, r := range d.rounds {
		total += score(r.opponent, (r.opponent+r.own+2)%3)
	}

	return total
}
