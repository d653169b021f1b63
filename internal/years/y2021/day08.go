package y2021

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"math/bits"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 8, Name: "",
		New: func() solution.Solver { return &day08{} },
	})
}

// segments is a set of display wires a..g as a bit mask.
type segments uint8

func parseSegments(s string) segments {
	var m segments
	for _, c := range s {
		m |= 1 << (c - 'a')
	}

	return m
}

func (s segments) count() int { return bits.OnesCount8(uint8(s)) }

type display struct {
	patterns [10]segments
	output   [4]segments
}

// day08 decodes scrambled seven segment displays.
type day08 struct {
	displays []display
}

func (d *day08) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		left, right, ok := strings.Cut(line, " | ")
		patterns, output := strings.Fields(left), strings.Fields(right)
		if !ok || len(patterns) != 10 || len(output) != 4 {
			return fmt.Errorf("invalid display %q", line)
		}

		var disp display
		for i, p := range patterns {
			disp.patterns[i] = parseSegments(p)
		}
		for i, o := range output {
			disp.output[i] = parseSegments(o)
		}
		d.displays = append(d.displays, disp)

		return nil
	})
}

// Part1 counts the output digits with a unique segment count: 1, 4, 7 and 8.
func (d *day08) Part1() any {
	n := 0
	for _, disp := range d.displays {
		for _, o := range disp.output {
			switch o.count() {
			case 2, 3, 4, 7:
				n++
			}
		}
	}

	return n
}

func (d *day08) Part2() any {
	total := 0
	for _, disp := range d.displays {
		digits := disp.decode()
		value := 0
		for _, o := range disp.output {
			value = value*10 + digits[o]
		}
		total += value
	}

	return total
}

// decode identifies every digit from its segment count and its overlap with 1 and 4.
func (disp display) decode() map[segments]int {
	var one, four segments
	for _, p := range disp.patterns {
		switch p.count() {
		case 2:
			one = p
		case 4:
			four = p
		}
	}

	digits := make(map[segments]int, 10)
	for _, p := range disp.patterns {
		withOne, withFour := (p & one).count(), (p & four).count()
		switch p.count() {
		case 2:
			digits[p] = 1
		case 3:
			digits[p] = 7
		case 4:
			digits[p] = 4
		case 7:
			digits[p] = 8
		case 5:
			switch {
			case withOne == 2:
				digits[p] = 3
			case withFour == 3:
				digits[p] = 5
			default:
				digits[p] = 2
			}
		case 6:
			switch {
			case withFour == 4:
				digits[p] = 9
			case withOne == 2:
				digits[p] = 0
			default:
				digits[p] = 6
			}
		}
	}

	return digits
}
