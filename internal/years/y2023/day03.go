package y2023

import (
	"advent/internal/geo"
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 3,
		New: func() solution.Solver { return &day03{} },
	})
}

type partNumber struct {
	value int
	y     int
	x0    int
	x1    int // inclusive
}

func (n partNumber) adjacent(p geo.Point) bool {
	return p.Y >= n.y-1 && p.Y <= n.y+1 && p.X >= n.x0-1 && p.X <= n.x1+1
}

// day03 reads an engine schematic of numbers and symbols.
type day03 struct {
	numbers []partNumber
	symbols map[geo.Point]byte
}

func (d *day03) ReadInput(in *input.Loader) error {
	schematic, err := in.CharGrid()
	if err != nil {
		return err
	}

	d.symbols = map[geo.Point]byte{}
	for y := range schematic.Rows() {
		row := schematic.Row(y)
		for x := 0; x < len(row); x++ {
			c := row[x]
			switch {
			case isDigit(c):
				n := partNumber{y: y, x0: x}
				for ; x < len(row) && isDigit(row[x]); x++ {
					n.value = n.value*10 + int(row[x]-'0')
				}
				x--
				n.x1 = x
				d.numbers = append(d.numbers, n)
			case c != '.':
				d.symbols[geo.Pt(x, y)] = c
			}
		}
	}

	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Part1 sums the numbers adjacent to any symbol.
func (d *day03) Part1() any {
	total := 0
	for _, n := range d.numbers {
		for p := range d.symbols {
			if n.adjacent(p) {
				total += n.value

				break
			}
		}
	}

	return total
}

// Part2 sums the gear ratios of every '*' next to exactly two numbers.
func (d *day03) Part2() any {
	total := 0
	for p, c := range d.symbols {
		if c != '*' {
			continue
		}
		var near []int
		for _, n := range d.numbers {
			if n.adjacent(p) {
				near = append(near, n.value)
			}
		}
		if len(near) == 2 {
			total += near[0] * near[1]
		}
	}

	return total
}
