package y2021

import (
	"advent/internal/input"
	"advent/internal/solution"
	"strconv"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 3, Name: "Binary Diagnostic",
		New: func() solution.Solver { return &day03{} },
	})
}

type day03 struct {
	report []string
}

func (d *day03) ReadInput(in *input.Loader) (err error) {
	d.report, err = in.Lines()

	return err
}

// Part1 multiplies the gamma rate (most common bits) by the epsilon rate.
func (d *day03) Part1() any {
	width := len(d.report[0])
	gamma, epsilon := 0, 0
	for pos := range width {
		gamma <<= 1
		epsilon <<= 1
		if ones(d.report, pos)*2 > len(d.report) {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}

	return gamma * epsilon
}

// Part2 multiplies the oxygen generator and CO2 scrubber ratings.
func (d *day03) Part2() any {
	return rating(d.report, true) * rating(d.report, false)
}

func ones(lines []string, pos int) int {
	n := 0
	for _, l := range lines {
		if l[pos] == '1' {
			n++
		}
	}

	return n
}

// rating filters the report bit by bit until one number remains. The oxygen
// rating keeps the most common bit (1 on ties), CO2 the least common (0 on ties).
func rating(report []string, mostCommon bool) int {
	candidates := report
	for pos := 0; len(candidates) > 1 && pos < len(report[0]); pos++ {
		n := ones(candidates, pos)
		keep := byte('0')
		if (n*2 >= len(candidates)) == mostCommon {
			keep = '1'
		}

		var next []string
		for _, c := range candidates {
			if c[pos] == keep {
				next = append(next, c)
			}
		}
		candidates = next
	}

	v, _ := strconv.ParseInt(candidates[0], 2, 64)

	return int(v)
}
