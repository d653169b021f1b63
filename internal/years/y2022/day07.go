package y2022

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"math"
	"path"
	"strconv"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2022, Day: 7, Name: "No Space Left On Device",
		New: func() solution.Solver { return &day07{} },
	})
}

const (
	diskSize   = 70_000_000
	neededFree = 30_000_000
)

// day07 keeps the total size of every directory, keyed by its absolute path.
type day07 struct {
	dirs map[string]int
}

func (d *day07) ReadInput(in *input.Loader) error {
	d.dirs = map[string]int{"/": 0}
	cwd := "/"

	return in.EachLine(func(line string) error {
		switch {
		case strings.HasPrefix(line, "$ cd "):
			target := strings.TrimPrefix(line, "$ cd ")
			if strings.HasPrefix(target, "/") {
				cwd = path.Clean(target)
			} else {
				cwd = path.Join(cwd, target)
			}
			if _, ok := d.dirs[cwd]; !ok {
				d.dirs[cwd] = 0
			}
		case line == "$ ls", strings.HasPrefix(line, "dir "):
		default:
			sizeStr, _, ok := strings.Cut(line, " ")
			size, err := strconv.Atoi(sizeStr)
			if !ok || err != nil {
				return fmt.Errorf("invalid listing %q", line)
			}
			for dir := cwd; ; dir = path.Dir(dir) {
				d.dirs[dir] += size
				if dir == "/" {
					break
				}
			}
		}

		return nil
	})
}

// Part1 sums the directories of at most 100000.
func (d *day07) Part1() any {
	total := 0
	for _, size := range d.dirs {
		if size <= 100_000 {
			total += size
		}
	}

	return total
}

// Part2 finds the smallest directory that frees enough space for the update.
func (d *day07) Part2() any {
	missing := neededFree - (diskSize - d.dirs["/"])
	best := math.MaxInt
	for _, size := range d.dirs {
		if size >= missing {
			best = min(best, size)
		}
	}

	return best
}
