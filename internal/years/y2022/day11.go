package y2022

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"slices"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2022, Day: 11, Name: "Monkey in the Middle",
		New: func() solution.Solver { return &day11{} },
	})
}

type monkey struct {
	items   []int
	op      byte
	operand int // 0 means the old value
	divisor int
	ifTrue  int
	ifFalse int
}

func (m monkey) inspect(worry int) int {
	operand := m.operand
	if operand == 0 {
		operand = worry
	}
	if m.op == '*' {
		return worry * operand
	}

	return worry + operand
}

func parseMonkey(block string) (monkey, error) {
	lines := input.SplitLines(block)
	if len(lines) != 6 {
		return monkey{}, fmt.Errorf("monkey has %d lines", len(lines))
	}

	var m monkey
	m.items = input.Ints(lines[1])

	op, ok := strings.CutPrefix(strings.TrimSpace(lines[2]), "Operation: new = old ")
	if !ok || len(op) < 3 || (op[0] != '*' && op[0] != '+') {
		return monkey{}, fmt.Errorf("invalid operation %q", lines[2])
	}
	m.op = op[0]
	if operand := op[2:]; operand != "old" {
		v, err := input.Atoi(operand)
		if err != nil {
			return monkey{}, err
		}
		m.operand = v
	}

	for i, dst := range []*int{&m.divisor, &m.ifTrue, &m.ifFalse} {
		v := input.Ints(lines[3+i])
		if len(v) != 1 {
			return monkey{}, fmt.Errorf("invalid monkey line %q", lines[3+i])
		}
		*dst = v[0]
	}

	return m, nil
}

type day11 struct {
	monkeys []monkey
}

func (d *day11) ReadInput(in *input.Loader) error {
	blocks, err := in.Blocks()
	if err != nil {
		return err
	}

	for _, b := range blocks {
		m, err := parseMonkey(b)
		if err != nil {
			return err
		}
		d.monkeys = append(d.monkeys, m)
	}

	return nil
}

func (d *day11) Part1() any { return d.business(20, true) }

func (d *day11) Part2() any { return d.business(10_000, false) }

// business multiplies the inspection counts of the two most active monkeys.
// Without relief, worry levels are kept modulo the product of all divisors.
func (d *day11) business(rounds int, relief bool) int {
	monkeys := slices.Clone(d.monkeys)
	modulus := 1
	for i := range monkeys {
		monkeys[i].items = slices.Clone(monkeys[i].items)
		modulus *= monkeys[i].divisor
	}

	inspections := make([]int, len(monkeys))
	for range rounds {
		for i := range monkeys {
			m := &monkeys[i]
			for _, worry := range m.items {
				worry = m.inspect(worry)
				if relief {
					worry /= 3
				} else {
					worry %= modulus
				}

				target := m.ifFalse
				if worry%m.divisor == 0 {
					target = m.ifTrue
				}
				monkeys[target].items = append(monkeys[target].items, worry)
			}
			inspections[i] += len(m.items)
			m.items = m.items[:0]
		}
	}

	slices.Sort(inspections)
	slices.Reverse(inspections)

	return inspections[0] * inspections[1]
}
