package y2021

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"slices"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 18, Name: "Snailfish",
		New: func() solution.Solver { return &day18{} },
	})
}

// snail is a snailfish number flattened to its regular numbers and their nesting depth.
type snail []snailValue

type snailValue struct {
	value int
	depth int
}

func parseSnail(s string) (snail, error) {
	var out snail
	depth := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '[':
			depth++
		case c == ']':
			depth--
		case c >= '0' && c <= '9':
			v := 0
			for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
				v = v*10 + int(s[i]-'0')
			}
			i--
			out = append(out, snailValue{value: v, depth: depth})
		case c != ',':
			return nil, fmt.Errorf("invalid character %q in %q", c, s)
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced number %q", s)
	}

	return out, nil
}

func (a snail) add(b snail) snail {
	out := make(snail, 0, len(a)+len(b))
	for _, v := range a {
		out = append(out, snailValue{v.value, v.depth + 1})
	}
	for _, v := range b {
		out = append(out, snailValue{v.value, v.depth + 1})
	}

	for out.explode() || out.split() {
	}

	return out
}

// explode reduces the leftmost pair nested inside four pairs.
func (a *snail) explode() bool {
	s := *a
	for i := 0; i+1 < len(s); i++ {
		if s[i].depth <= 4 || s[i].depth != s[i+1].depth {
			continue
		}
		if i > 0 {
			s[i-1].value += s[i].value
		}
		if i+2 < len(s) {
			s[i+2].value += s[i+1].value
		}
		s[i] = snailValue{0, s[i].depth - 1}
		*a = slices.Delete(s, i+1, i+2)

		return true
	}

	return false
}

// split divides the leftmost number of ten or more.
func (a *snail) split() bool {
	s := *a
	for i, v := range s {
		if v.value < 10 {
			continue
		}
		left := snailValue{v.value / 2, v.depth + 1}
		right := snailValue{(v.value + 1) / 2, v.depth + 1}
		s[i] = left
		*a = slices.Insert(s, i+1, right)

		return true
	}

	return false
}

func (a snail) magnitude() int {
	s := slices.Clone(a)
	for len(s) > 1 {
		for i := 0; i+1 < len(s); i++ {
			if s[i].depth == s[i+1].depth {
				s[i] = snailValue{3*s[i].value + 2*s[i+1].value, s[i].depth - 1}
				s = slices.Delete(s, i+1, i+2)

				break
			}
		}
	}

	return s[0].value
}

type day18 struct {
	numbers []snail
}

func (d *day18) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		n, err := parseSnail(line)
		if err != nil {
			return err
		}
		d.numbers = append(d.numbers, n)

		return nil
	})
}

func (d *day18) Part1() any {
	sum := d.numbers[0]
	for _, n := range d.numbers[1:] {
		sum = sum.add(n)
	}

	return sum.magnitude()
}

// Part2 finds the largest magnitude of any two different numbers added together.
func (d *day18) Part2() any {
	best := 0
	for i, a := range d.numbers {
		for j, b := range d.numbers {
			if i != j {
				best = max(best, a.add(b).magnitude())
			}
		}
	}

	return best
}
