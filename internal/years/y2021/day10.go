package y2021

import (
	"advent/internal/input"
	"advent/internal/solution"
	"slices"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 10, Name: "Syntax Scoring",
		New: func() solution.Solver { return &day10{} },
	})
}

var closers = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'} //nolint: gochecknoglobals

type day10 struct {
	lines []string
}

func (d *day10) ReadInput(in *input.Loader) (err error) {
	d.lines, err = in.Lines()

	return err
}

// check returns the first illegal character, or the closers still expected.
func check(line string) (byte, []byte) {
	var stack []byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if closer, ok := closers[c]; ok {
			stack = append(stack, closer)

			continue
		}
		if len(stack) == 0 || stack[len(stack)-1] != c {
			return c, nil
		}
		stack = stack[:len(stack)-1]
	}

	return 0, stack
}

func (d *day10) Part1() any {
	points := map[byte]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	score := 0
	for _, l := range d.lines {
		if illegal, _ := check(l); illegal != 0 {
			score += points[illegal]
		}
	}

	return score
}

// Part2 returns the middle completion score of the incomplete lines.
func (d *day10) Part2() any {
	points := map[byte]int{')': 1, ']': 2, '}': 3, '>': 4}
	var scores []int
	for _, l := range d.lines {
		illegal, missing := check(l)
		if illegal != 0 || len(missing) == 0 {
			continue
		}
		score := 0
		for i := len(missing) - 1; i >= 0; i-- {
			score = score*5 + points[missing[i]]
		}
		scores = append(scores, score)
	}
	slices.Sort(scores)

	return scores[len(scores)/2]
}
