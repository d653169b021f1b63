package y2024

import (
	"advent/internal/input"
	"advent/internal/solution"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 9, Name: "Disk Fragmenter",
		New: func() solution.Solver { return &day09{} },
	})
}

const freeBlock = -1

// extent is a run of blocks on the disk.
type extent struct {
	start, length int
}

type day09 struct {
	diskMap string
}

func (d *day09) ReadInput(in *input.Loader) error {
	s, err := in.String()
	d.diskMap = strings.TrimSpace(s)

	return err
}

func (d *day09) layout() (files, free []extent) {
	pos := 0
	for i := range len(d.diskMap) {
		length := int(d.diskMap[i] - '0')
		if i%2 == 0 {
			files = append(files, extent{pos, length})
		} else {
			free = append(free, extent{pos, length})
		}
		pos += length
	}

	return files, free
}

func checksum(files []extent) int {
	sum := 0
	for id, f := range files {
		for b := f.start; b < f.start+f.length; b++ {
			sum += id * b
		}
	}

	return sum
}

// Part1 moves single blocks from the end of the disk into the leftmost gap.
func (d *day09) Part1() any {
	files, _ := d.layout()
	var blocks []int
	for id, f := range files {
		for len(blocks) < f.start {
			blocks = append(blocks, freeBlock)
		}
		for range f.length {
			blocks = append(blocks, id)
		}
	}

	left, right := 0, len(blocks)-1
	for left < right {
		switch {
		case blocks[left] != freeBlock:
			left++
		case blocks[right] == freeBlock:
			right--
		default:
			blocks[left], blocks[right] = blocks[right], freeBlock
		}
	}

	sum := 0
	for pos, id := range blocks {
		if id != freeBlock {
			sum += pos * id
		}
	}

	return sum
}

// Part2 moves whole files, highest id first, into the leftmost gap that fits.
func (d *day09) Part2() any {
	files, free := d.layout()
	for id := len(files) - 1; id >= 0; id-- {
		f := &files[id]
		for i := range free {
			gap := &free[i]
			if gap.start >= f.start {
				break
			}
			if gap.length >= f.length {
				f.start = gap.start
				gap.start += f.length
				gap.length -= f.length

				break
			}
		}
	}

	return checksum(files)
}
