package y2022

import (
	"advent/internal/input"
	"advent/internal/solution"
	"cmp"
	"fmt"
	"slices"

	"github.com/go-faster/jx"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2022, Day: 13, Name: "Distress Signal",
		New: func() solution.Solver { return &day13{} },
	})
}

// signal is either an integer or, when list is non-nil, a list of signals.
type signal struct {
	value int
	list  []signal
}

func (s signal) isList() bool { return s.list != nil }

func decodeSignal(d *jx.Decoder) (signal, error) {
	if d.Next() != jx.Array {
		v, err := d.Int()

		return signal{value: v}, err
	}

	s := signal{list: []signal{}}
	err := d.Arr(func(d *jx.Decoder) error {
		item, err := decodeSignal(d)
		if err != nil {
			return err
		}
		s.list = append(s.list, item)

		return nil
	})

	return s, err
}

func parseSignal(s string) (signal, error) {
	sig, err := decodeSignal(jx.DecodeStr(s))
	if err != nil {
		return signal{}, fmt.Errorf("invalid packet %q: %w", s, err)
	}

	return sig, nil
}

func compareSignals(a, b signal) int {
	switch {
	case !a.isList() && !b.isList():
		return cmp.Compare(a.value, b.value)
	case !a.isList():
		return compareSignals(signal{list: []signal{a}}, b)
	case !b.isList():
		return compareSignals(a, signal{list: []signal{b}})
	}

	for i := 0; i < len(a.list) && i < len(b.list); i++ {
		if c := compareSignals(a.list[i], b.list[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a.list), len(b.list))
}

type day13 struct {
	packets []signal
}

func (d *day13) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		if line == "" {
			return nil
		}
		p, err := parseSignal(line)
		if err != nil {
			return err
		}
		d.packets = append(d.packets, p)

		return nil
	})
}

// Part1 sums the indices of the pairs already in the right order.
func (d *day13) Part1() any {
	total := 0
	for i := 0; i+1 < len(d.packets); i += 2 {
		if compareSignals(d.packets[i], d.packets[i+1]) < 0 {
			total += i/2 + 1
		}
	}

	return total
}

// Part2 sorts the packets with the two divider packets and multiplies the
// positions of the dividers.
func (d *day13) Part2() any {
	two := signal{list: []signal{{list: []signal{{value: 2}}}}}
	six := signal{list: []signal{{list: []signal{{value: 6}}}}}

	packets := append(slices.Clone(d.packets), two, six)
	slices.SortFunc(packets, compareSignals)

	key := 1
	for i, p := range packets {
		if compareSignals(p, two) == 0 || compareSignals(p, six) == 0 {
			key *= i + 1
		}
	}

	return key
}
