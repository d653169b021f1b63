package y2025

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2025, Day: 6, Name: "Trash Compactor",
		New: func() solution.Solver { return &day06{} },
	})
}

// worksheet is one problem: the raw cells of its column block and the operator.
type worksheet struct {
	rows     []string
	operator byte
}

// day06 solves the cephalopod math worksheet.
type day06 struct {
	problems []worksheet
}

func (d *day06) ReadInput(in *input.Loader) error {
	lines, err := in.Lines()
	if err != nil {
		return err
	}
	if len(lines) < 2 {
		return fmt.Errorf("worksheet needs numbers and operators, got %d lines", len(lines))
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	for i, l := range lines {
		lines[i] = l + strings.Repeat(" ", width-len(l))
	}

	// problems are separated by columns of spaces only
	start := 0
	for x := 0; x <= width; x++ {
		if x < width && !blankColumn(lines, x) {
			continue
		}
		if x > start {
			w := worksheet{operator: strings.TrimSpace(lines[len(lines)-1][start:x])[0]}
			for _, l := range lines[:len(lines)-1] {
				w.rows = append(w.rows, l[start:x])
			}
			d.problems = append(d.problems, w)
		}
		start = x + 1
	}

	return nil
}

func blankColumn(lines []string, x int) bool {
	for _, l := range lines {
		if l[x] != ' ' {
			return false
		}
	}

	return true
}

// Part1 reads the numbers row by row.
func (d *day06) Part1() any {
	total := 0
	for _, w := range d.problems {
		total += w.compute(w.rows)
	}

	return total
}

// Part2 reads the numbers column by column, most significant digit on top.
func (d *day06) Part2() any {
	total := 0
	for _, w := range d.problems {
		columns := make([]string, 0, len(w.rows[0]))
		for x := range len(w.rows[0]) {
			var sb strings.Builder
			for _, r := range w.rows {
				sb.WriteByte(r[x])
			}
			columns = append(columns, sb.String())
		}
		total += w.compute(columns)
	}

	return total
}

func (w worksheet) compute(numbers []string) int {
	result := 0
	if w.operator == '*' {
		result = 1
	}
	for _, n := range numbers {
		v, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			continue
		}
		switch w.operator {
		case '*':
			result *= v
		case '-':
			result -= v
		default:
			result += v
		}
	}

	return result
}
