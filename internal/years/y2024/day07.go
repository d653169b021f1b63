package y2024

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 7, Name: "Bridge Repair",
		New: func() solution.Solver { return &day07{} },
	})
}

type equation struct {
	target   int
	operands []int
}

// solvable works backwards from the target, undoing the last operator.
func (e equation) solvable(concat bool) bool {
	var undo func(target, n int) bool
	undo = func(target, n int) bool {
		last := e.operands[n]
		if n == 0 {
			return target == last
		}
		if target > last && undo(target-last, n-1) {
			return true
		}
		if last != 0 && target%last == 0 && undo(target/last, n-1) {
			return true
		}
		if concat {
			pow := 10
			for pow <= last {
				pow *= 10
			}
			if target > last && target%pow == last && undo(target/pow, n-1) {
				return true
			}
		}

		return false
	}

	return undo(e.target, len(e.operands)-1)
}

type day07 struct {
	equations []equation
}

func (d *day07) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		target, operands, ok := strings.Cut(line, ":")
		values := input.Ints(operands)
		if !ok || len(values) == 0 {
			return fmt.Errorf("invalid equation %q", line)
		}
		t, err := input.Atoi(target)
		if err != nil {
			return err
		}
		d.equations = append(d.equations, equation{target: t, operands: values})

		return nil
	})
}

func (d *day07) calibration(concat bool) int {
	total := 0
	for _, e := range d.equations {
		if e.solvable(concat) {
			total += e.target
		}
	}

	return total
}

func (d *day07) Part1() any { return d.calibration(false) }

// Part2 also allows concatenating digits.
func (d *day07) Part2() any { return d.calibration(true) }
