package y2023

import (
	"advent/internal/input"
	"advent/internal/solution"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 1, Name: "Trebuchet?!",
		New: func() solution.Solver { return &day01{} },
	})
}

var spelled = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"} //nolint: gochecknoglobals

type day01 struct {
	lines []string
}

func (d *day01) ReadInput(in *input.Loader) (err error) {
	d.lines, err = in.Lines()

	return err
}

// digitAt returns the digit starting at position i of s, or -1.
func digitAt(s string, i int, words bool) int {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0')
	}
	if words {
		for n, w := range spelled {
			if strings.HasPrefix(s[i:], w) {
				return n + 1
			}
		}
	}

	return -1
}

// calibration combines the first and last digit of every line. Lines
// without digits count as 0.
func (d *day01) calibration(words bool) int {
	total := 0
	for _, l := range d.lines {
		first, last := -1, -1
		for i := range len(l) {
			if v := digitAt(l, i, words); v >= 0 {
				if first < 0 {
					first = v
				}
				last = v
			}
		}
		if first >= 0 {
			total += first*10 + last
		}
	}

	return total
}

func (d *day01) Part1() any { return d.calibration(false) }

// Part2 also accepts digits spelled out with letters.
func (d *day01) Part2() any { return d.calibration(true) }
