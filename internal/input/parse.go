package input

import (
	"advent/pkg/serrors"
	"strconv"
	"strings"
)

// SplitLines splits s on newlines, dropping one trailing empty line.
func SplitLines(s string) []string {
	s = strings.TrimSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

// SplitBlocks splits s on blank lines.
func SplitBlocks(s string) []string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n\n")
}

// Ints extracts every integer in s, including a leading minus sign when it
// directly precedes the digits. A range such as "2-4" therefore yields 2 and -4.
func Ints(s string) []int {
	var out []int
	for i := 0; i < len(s); {
		start := i
		if s[i] == '-' && i+1 < len(s) && isDigit(s[i+1]) {
			i++
		}
		if !isDigit(s[i]) {
			i = start + 1

			continue
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		v, err := strconv.Atoi(s[start:i])
		if err == nil {
			out = append(out, v)
		}
	}

	return out
}

// Int64s is Ints for 64 bit values.
func Int64s(s string) []int64 {
	ints := Ints(s)
	out := make([]int64, len(ints))
	for i, v := range ints {
		out[i] = int64(v)
	}

	return out
}

// Atoi parses s after trimming surrounding whitespace.
func Atoi(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "%q is not a number", s)
	}

	return v, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
