package y2024

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 17, Name: "Chronospatial Computer",
		New: func() solution.Solver { return &day17{} },
	})
}

type day17 struct {
	registers [3]int
	program   []int
}

func (d *day17) ReadInput(in *input.Loader) error {
	blocks, err := in.Blocks()
	if err != nil {
		return err
	}
	if len(blocks) != 2 {
		return fmt.Errorf("expected registers and program, got %d blocks", len(blocks))
	}

	regs := input.Ints(blocks[0])
	if len(regs) != 3 {
		return fmt.Errorf("expected three registers, got %d", len(regs))
	}
	copy(d.registers[:], regs)
	d.program = input.Ints(blocks[1])

	return nil
}

// run executes the program with register A set to a and returns its output.
func (d *day17) run(a int) []int {
	reg := d.registers
	reg[0] = a

	var out []int
	for ip := 0; ip+1 < len(d.program); {
		op, literal := d.program[ip], d.program[ip+1]
		combo := literal
		if literal >= 4 && literal <= 6 {
			combo = reg[literal-4]
		}
		ip += 2

		switch op {
		case 0:
			reg[0] >>= combo
		case 1:
			reg[1] ^= literal
		case 2:
			reg[1] = combo & 7
		case 3:
			if reg[0] != 0 {
				ip = literal
			}
		case 4:
			reg[1] ^= reg[2]
		case 5:
			out = append(out, combo&7)
		case 6:
			reg[1] = reg[0] >> combo
		case 7:
			reg[2] = reg[0] >> combo
		}
	}

	return out
}

func (d *day17) Part1() any {
	out := d.run(d.registers[0])
	parts := make([]string, len(out))
	for i, v := range out {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// Part2 finds the lowest A for which the program outputs itself. The program
// shifts A by three bits per output, so A is built three bits at a time,
// matching the output from its last value backwards.
func (d *day17) Part2() any {
	var search func(a, matched int) int
	search = func(a, matched int) int {
		if matched == len(d.program) {
			return a
		}
		for bits := range 8 {
			candidate := a<<3 | bits
			if candidate == 0 {
				continue
			}
			out := d.run(candidate)
			if slices.Equal(out, d.program[len(d.program)-matched-1:]) {
				if found := search(candidate, matched+1); found >= 0 {
					return found
				}
			}
		}

		return -1
	}

	return search(0, 0)
}
