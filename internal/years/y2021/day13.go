package y2021

import (
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 13, Name: "Transparent Origami",
		New: func() solution.Solver { return &day13{} },
	})
}

type fold struct {
	alongX bool
	at     int
}

func (f fold) apply(p geo.Point) geo.Point {
	if f.alongX && p.X > f.at {
		p.X = 2*f.at - p.X
	}
	if !f.alongX && p.Y > f.at {
		p.Y = 2*f.at - p.Y
	}

	return p
}

type day13 struct {
	dots  []geo.Point
	folds []fold
}

func (d *day13) ReadInput(in *input.Loader) error {
	blocks, err := in.Blocks()
	if err != nil {
		return err
	}
	if len(blocks) != 2 {
		return fmt.Errorf("expected dots and folds, got %d blocks", len(blocks))
	}

	for _, line := range input.SplitLines(blocks[0]) {
		p, err := geo.ParsePoint(line)
		if err != nil {
			return err
		}
		d.dots = append(d.dots, p)
	}
	for _, line := range input.SplitLines(blocks[1]) {
		axis, at, ok := strings.Cut(strings.TrimPrefix(line, "fold along "), "=")
		n, err := strconv.Atoi(at)
		if !ok || err != nil {
			return fmt.Errorf("invalid fold %q", line)
		}
		d.folds = append(d.folds, fold{alongX: axis == "x", at: n})
	}

	return nil
}

func (d *day13) foldAll(folds []fold) map[geo.Point]bool {
	paper := make(map[geo.Point]bool, len(d.dots))
	for _, p := range d.dots {
		for _, f := range folds {
			p = f.apply(p)
		}
		paper[p] = true
	}

	return paper
}

// Part1 counts the dots visible after the first fold.
func (d *day13) Part1() any {
	return len(d.foldAll(d.folds[:1]))
}

// Part2 renders the code that appears after every fold.
func (d *day13) Part2() any {
	paper := d.foldAll(d.folds)

	width, height := 0, 0
	for p := range paper {
		width, height = max(width, p.X+1), max(height, p.Y+1)
	}
	g := grid.New(height, width)
	for p := range paper {
		g.SetPoint(p, '#')
	}

	return "\n" + g.String()
}
