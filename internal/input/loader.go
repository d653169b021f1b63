// Package input loads puzzle inputs. Inputs live in a directory laid out as
// <year>/day_DD.txt, with an optional <year>/day_DD_large.txt stress input.
package input

import (
	"advent/internal/grid"
	"advent/pkg/serrors"
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"
)

// Loader reads one input file lazily and caches its contents.
type Loader struct {
	fsys      fs.FS
	path      string
	largePath string
	useLarge  bool

	mu     sync.Mutex
	loaded string
	data   []byte
}

// NewLoader returns a loader for the input of the given day.
func NewLoader(fsys fs.FS, year, day int) *Loader {
	return &Loader{
		fsys:      fsys,
		path:      fmt.Sprintf("%d/day_%02d.txt", year, day),
		largePath: fmt.Sprintf("%d/day_%02d_large.txt", year, day),
	}
}

// NewFileLoader returns a loader reading exactly path, regardless of UseLargeFile.
func NewFileLoader(fsys fs.FS, path string) *Loader {
	return &Loader{fsys: fsys, path: path, largePath: path}
}

// FromString returns a loader serving s.
func FromString(s string) *Loader {
	return &Loader{path: "inline", largePath: "inline", loaded: "inline", data: []byte(s)}
}

// UseLargeFile switches the loader to the large input variant.
func (l *Loader) UseLargeFile() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.useLarge = true
}

// Path returns the path the loader currently reads.
func (l *Loader) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.currentPath()
}

func (l *Loader) currentPath() string {
	if l.useLarge {
		return l.largePath
	}

	return l.path
}

// Bytes returns the raw file contents. The slice must not be modified.
func (l *Loader) Bytes() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	path := l.currentPath()
	if l.loaded == path {
		return l.data, nil
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, serrors.Wrap(serrors.ErrNotFound, err, "input %s not found", path)
		}

		return nil, fmt.Errorf("could not read input %s: %w", path, err)
	}

	l.loaded, l.data = path, data

	return data, nil
}

// String returns the contents with Windows line endings normalised.
func (l *Loader) String() (string, error) {
	data, err := l.Bytes()
	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// Lines returns the lines of the input; a trailing newline does not yield an empty line.
func (l *Loader) Lines() ([]string, error) {
	s, err := l.String()
	if err != nil {
		return nil, err
	}

	return SplitLines(s), nil
}

// Ints parses every (trimmed) line as an integer.
func (l *Loader) Ints() ([]int, error) {
	lines, err := l.Lines()
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, len(lines))
	for i, line := range lines {
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "line %d is not a number", i+1)
		}
		out = append(out, v)
	}

	return out, nil
}

// Split splits the input on sep.
func (l *Loader) Split(sep string) ([]string, error) {
	s, err := l.String()
	if err != nil {
		return nil, err
	}

	return strings.Split(s, sep), nil
}

// Blocks splits the input on blank lines, trimming surrounding whitespace.
func (l *Loader) Blocks() ([]string, error) {
	s, err := l.String()
	if err != nil {
		return nil, err
	}

	return SplitBlocks(s), nil
}

// CharGrid parses the input as a grid of bytes.
func (l *Loader) CharGrid() (*grid.CharGrid, error) {
	s, err := l.String()
	if err != nil {
		return nil, err
	}

	return grid.Parse(s), nil
}

// Scanner returns a line scanner over the input.
func (l *Loader) Scanner() (*bufio.Scanner, error) {
	data, err := l.Bytes()
	if err != nil {
		return nil, err
	}

	return bufio.NewScanner(bytes.NewReader(data)), nil
}

// EachLine calls fn for every line, stopping at the first error.
func (l *Loader) EachLine(fn func(line string) error) error {
	lines, err := l.Lines()
	if err != nil {
		return err
	}

	for _, line := range lines {
		if err := fn(line); err != nil {
			return err
		}
	}

	return nil
}
