package y2025

import (
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2025, Day: 3, Name: "Lobby",
		New: func() solution.Solver { return &day03{} },
	})
}

// day03 picks batteries from each bank to get the largest joltage.
type day03 struct {
	banks []string
}

func (d *day03) ReadInput(in *input.Loader) (err error) {
	d.banks, err = in.Lines()

	return err
}

func (d *day03) Part1() any { return d.total(2) }

func (d *day03) Part2() any { return d.total(12) }

func (d *day03) total(batteries int) int {
	total := 0
	for _, bank := range d.banks {
		total += joltage(bank, batteries)
	}

	return total
}

// joltage greedily takes the highest digit that still leaves enough
// digits after it for the remaining batteries.
func joltage(bank string, batteries int) int {
	value, from := 0, 0
	for remaining := batteries; remaining > 0; remaining-- {
		best := from
		for i := from; i <= len(bank)-remaining; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		value = value*10 + int(bank[best]-'0')
		from = best + 1
	}

	return value
}
