package y2022

import (
	"advent/internal/input"
	"advent/internal/solution"
	"math/bits"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2022, Day: 6, Name: "Tuning Trouble",
		New: func() solution.Solver { return &day06{} },
	})
}

type day06 struct {
	signal string
}

func (d *day06) ReadInput(in *input.Loader) error {
	s, err := in.String()
	d.signal = strings.TrimSpace(s)

	return err
}

// marker returns the number of characters read once the last size were all different.
func (d *day06) marker(size int) int {
	for end := size; end <= len(d.signal); end++ {
		var seen uint32
		for i := end - size; i < end; i++ {
			seen |= 1 << (d.signal[i] - 'a')
		}
		if bits.OnesCount32(seen) == size {
			return end
		}
	}

	return -1
}

func (d *day06) Part1() any { return d.marker(4) }

func (d *day06) Part2() any { return d.marker(14) }
