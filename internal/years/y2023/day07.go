package y2023

import (
	"advent/internal/input"
	"advent/internal/solution"
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 7,
		New: func() solution.Solver { return &day07{} },
	})
}

type hand struct {
	cards string
	bid   int
}

// strength orders hand types from high card (0) to five of a kind (6).
func strength(cards string, jokers bool) int {
	counts := map[rune]int{}
	wild := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			wild++

			continue
		}
		counts[c]++
	}

	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return 6
	case groups[0] == 4:
		return 5
	case groups[0] == 3 && groups[1] == 2:
		return 4
	case groups[0] == 3:
		return 3
	case groups[0] == 2 && groups[1] == 2:
		return 2
	case groups[0] == 2:
		return 1
	default:
		return 0
	}
}

type day07 struct {
	hands []hand
}

func (d *day07) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		cards, bid, ok := strings.Cut(line, " ")
		n, err := strconv.Atoi(bid)
		if !ok || err != nil || len(cards) != 5 {
			return fmt.Errorf("invalid hand %q", line)
		}
		d.hands = append(d.hands, hand{cards: cards, bid: n})

		return nil
	})
}

func (d *day07) winnings(order string, jokers bool) int {
	hands := slices.Clone(d.hands)
	slices.SortFunc(hands, func(a, b hand) int {
		if c := cmp.Compare(strength(a.cards, jokers), strength(b.cards, jokers)); c != 0 {
			return c
		}
		for i := range a.cards {
			if c := cmp.Compare(strings.IndexByte(order, a.cards[i]), strings.IndexByte(order, b.cards[i])); c != 0 {
				return c
			}
		}

		return 0
	})

	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}

	return total
}

func (d *day07) Part1() any { return d.winnings("23456789TJQKA", false) }

// Part2 plays J as the weakest card that counts as whatever makes the best hand.
func (d *day07) Part2() any { return d.winnings("J23456789TQKA", true) }
