package input_test

import (
	"advent/internal/input"
	"advent/pkg/serrors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"2022/day_01.txt":       {Data: []byte("1000\n2000\n\n3000\n")},
		"2022/day_01_large.txt": {Data: []byte("42\n")},
		"2022/day_02.txt":       {Data: []byte("A Y\r\nB X\r\n")},
		"2022/day_03.txt":       {Data: []byte("#.\n.#\n")},
	}
}

func TestLoader_Lines(t *testing.T) {
	l := input.NewLoader(testFS(), 2022, 1)
	lines, err := l.Lines()
	require.NoError(t, err)
	require.Equal(t, []string{"1000", "2000", "", "3000"}, lines)

	blocks, err := l.Blocks()
	require.NoError(t, err)
	require.Equal(t, []string{"1000\n2000", "3000"}, blocks)
}

func TestLoader_CRLF(t *testing.T) {
	lines, err := input.NewLoader(testFS(), 2022, 2).Lines()
	require.NoError(t, err)
	require.Equal(t, []string{"A Y", "B X"}, lines)
}

func TestLoader_LargeFile(t *testing.T) {
	l := input.NewLoader(testFS(), 2022, 1)
	_, err := l.String()
	require.NoError(t, err)

	l.UseLargeFile()
	require.Equal(t, "2022/day_01_large.txt", l.Path())
	ints, err := l.Ints()
	require.NoError(t, err)
	require.Equal(t, []int{42}, ints)
}

func TestLoader_Ints_NotANumber(t *testing.T) {
	_, err := input.NewLoader(testFS(), 2022, 2).Ints()
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestLoader_Missing(t *testing.T) {
	_, err := input.NewLoader(testFS(), 2022, 25).String()
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestLoader_FileLoaderIgnoresLarge(t *testing.T) {
	l := input.NewFileLoader(testFS(), "2022/day_03.txt")
	l.UseLargeFile()

	g, err := l.CharGrid()
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, byte('#'), g.At(1, 1))
}

func TestLoader_EachLine(t *testing.T) {
	var seen []string
	err := input.FromString("a\nb\n").EachLine(func(line string) error {
		seen = append(seen, line)

		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, seen)
}

func TestInts(t *testing.T) {
	require.Equal(t, []int{1, -2, 30, -4}, input.Ints("p=1,-2 v=30-4"))
	require.Equal(t, []int{20, 30, -10, -5}, input.Ints("target area: x=20..30, y=-10..-5"))
	// a dash between numbers reads as the sign of the second one
	require.Equal(t, []int{2, -4, 6, -8}, input.Ints("2-4,6-8"))
	require.Equal(t, []int{7}, input.Ints("Button A: X+7"))
	require.Nil(t, input.Ints("no numbers - here"))
	require.Equal(t, []int64{12}, input.Int64s("x12"))
}

func TestAtoi(t *testing.T) {
	v, err := input.Atoi(" 42\n")
	require.NoError(t, err)
	require.Equal(t, 42, v)

	_, err = input.Atoi("old")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestSplitLines(t *testing.T) {
	require.Nil(t, input.SplitLines(""))
	require.Equal(t, []string{"a", ""}, input.SplitLines("a\n\n"))
}
