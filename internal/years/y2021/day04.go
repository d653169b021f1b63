package y2021

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 4, Name: "Giant Squid",
		New: func() solution.Solver { return &day04{} },
	})
}

const boardSize = 5

type board [boardSize][boardSize]int

type day04 struct {
	draws  []int
	boards []board
}

func (d *day04) ReadInput(in *input.Loader) error {
	blocks, err := in.Blocks()
	if err != nil {
		return err
	}
	if len(blocks) < 2 {
		return fmt.Errorf("expected draws and boards, got %d blocks", len(blocks))
	}

	d.draws = input.Ints(blocks[0])
	for _, block := range blocks[1:] {
		numbers := input.Ints(block)
		if len(numbers) != boardSize*boardSize {
			return fmt.Errorf("board %q has %d numbers", strings.SplitN(block, "\n", 2)[0], len(numbers))
		}
		var b board
		for i, n := range numbers {
			b[i/boardSize][i%boardSize] = n
		}
		d.boards = append(d.boards, b)
	}

	return nil
}

// Part1 scores the first board to win.
func (d *day04) Part1() any {
	scores := d.play()

	return scores[0]
}

// Part2 scores the last board to win.
func (d *day04) Part2() any {
	scores := d.play()

	return scores[len(scores)-1]
}

// play draws every number and returns the scores in winning order.
func (d *day04) play() []int {
	type state struct {
		marked [boardSize][boardSize]bool
		won    bool
	}
	states := make([]state, len(d.boards))

	var scores []int
	for _, draw := range d.draws {
		for i := range d.boards {
			s := &states[i]
			if s.won {
				continue
			}
			for y := range boardSize {
				for x := range boardSize {
					if d.boards[i][y][x] == draw {
						s.marked[y][x] = true
					}
				}
			}
			if bingo(s.marked) {
				s.won = true
				unmarked := 0
				for y := range boardSize {
					for x := range boardSize {
						if !s.marked[y][x] {
							unmarked += d.boards[i][y][x]
						}
					}
				}
				scores = append(scores, unmarked*draw)
			}
		}
	}

	return scores
}

func bingo(marked [boardSize][boardSize]bool) bool {
	for i := range boardSize {
		row, col := true, true
		for j := range boardSize {
			row = row && marked[i][j]
			col = col && marked[j][i]
		}
		if row || col {
			return true
		}
	}

	return false
}
