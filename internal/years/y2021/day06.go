package y2021

import (
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 6, Name: "Lanternfish",
		New: func() solution.Solver { return &day06{} },
	})
}

// day06 counts lanternfish per timer value instead of per fish.
type day06 struct {
	timers [9]int
}

func (d *day06) ReadInput(in *input.Loader) error {
	s, err := in.String()
	if err != nil {
		return err
	}
	for _, t := range input.Ints(s) {
		d.timers[t]++
	}

	return nil
}

func (d *day06) Part1() any { return d.simulate(80) }

func (d *day06) Part2() any { return d.simulate(256) }

func (d *day06) simulate(days int) int {
	timers := d.timers
	for range days {
		spawning := timers[0]
		copy(timers[:], timers[1:])
		timers[6] += spawning
		timers[8] = spawning
	}

	total := 0
	for _, n := range timers {
		total += n
	}

	return total
}
