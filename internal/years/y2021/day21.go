package y2021

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 21, Name: "Dirac Dice",
		New: func() solution.Solver { return &day21{} },
	})
}

type day21 struct {
	start [2]int
}

func (d *day21) ReadInput(in *input.Loader) error {
	lines, err := in.Lines()
	if err != nil {
		return err
	}
	if len(lines) != 2 {
		return fmt.Errorf("expected two players, got %d", len(lines))
	}

	for i, line := range lines {
		_, pos, ok := strings.Cut(line, "position: ")
		if !ok {
			return fmt.Errorf("invalid player %q", line)
		}
		if d.start[i], err = input.Atoi(pos); err != nil {
			return err
		}
	}

	return nil
}

// Part1 plays with the deterministic die up to 1000 points.
func (d *day21) Part1() any {
	pos, score := d.start, [2]int{}
	rolls := 0
	for turn := 0; ; turn = 1 - turn {
		move := 0
		for range 3 {
			move += rolls%100 + 1
			rolls++
		}
		pos[turn] = (pos[turn]+move-1)%10 + 1
		score[turn] += pos[turn]
		if score[turn] >= 1000 {
			return score[1-turn] * rolls
		}
	}
}

type diracState struct {
	pos, score [2]int
	turn       int
}

// Part2 counts the universes the more successful player wins in.
func (d *day21) Part2() any {
	// frequency of each sum of three rolls of a three sided die
	sums := map[int]int{}
	for a := 1; a <= 3; a++ {
		for b := 1; b <= 3; b++ {
			for c := 1; c <= 3; c++ {
				sums[a+b+c]++
			}
		}
	}

	memo := map[diracState][2]int{}
	var wins func(s diracState) [2]int
	wins = func(s diracState) [2]int {
		if w, ok := memo[s]; ok {
			return w
		}

		var total [2]int
		for move, n := range sums {
			next := s
			next.pos[s.turn] = (s.pos[s.turn]+move-1)%10 + 1
			next.score[s.turn] += next.pos[s.turn]
			if next.score[s.turn] >= 21 {
				total[s.turn] += n

				continue
			}
			next.turn = 1 - s.turn
			w := wins(next)
			total[0] += n * w[0]
			total[1] += n * w[1]
		}
		memo[s] = total

		return total
	}

	w := wins(diracState{pos: d.start})

	return max(w[0], w[1])
}
