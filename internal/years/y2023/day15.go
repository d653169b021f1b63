package y2023

import (
	"advent/internal/input"
	"advent/internal/solution"
	"slices"
	"strconv"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 15, Name: "Lens Library",
		New: func() solution.Solver { return &day15{} },
	})
}

func hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}

	return h
}

type lens struct {
	label string
	focal int
}

type day15 struct {
	steps []string
}

func (d *day15) ReadInput(in *input.Loader) error {
	s, err := in.String()
	if err != nil {
		return err
	}
	d.steps = strings.Split(strings.ReplaceAll(strings.TrimSpace(s), "\n", ""), ",")

	return nil
}

func (d *day15) Part1() any {
	total := 0
	for _, s := range d.steps {
		total += hash(s)
	}

	return total
}

// Part2 runs the steps as the HASHMAP procedure and sums the focusing power.
func (d *day15) Part2() any {
	var boxes [256][]lens
	for _, s := range d.steps {
		if label, ok := strings.CutSuffix(s, "-"); ok {
			box := &boxes[hash(label)]
			*box = slices.DeleteFunc(*box, func(l lens) bool { return l.label == label })

			continue
		}

		label, focal, ok := strings.Cut(s, "=")
		f, err := strconv.Atoi(focal)
		if !ok || err != nil {
			continue
		}
		box := &boxes[hash(label)]
		if i := slices.IndexFunc(*box, func(l lens) bool { return l.label == label }); i >= 0 {
			(*box)[i].focal = f
		} else {
			*box = append(*box, lens{label: label, focal: f})
		}
	}

	power := 0
	for b, box := range boxes {
		for slot, l := range box {
			power += (b + 1) * (slot + 1) * l.focal
		}
	}

	return power
}
