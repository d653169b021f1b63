package grid_test

import (
	"advent/internal/geo"
	"advent/internal/grid"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = "#..\n.#.\n..#\n"

func TestParse(t *testing.T) {
	g := grid.Parse(sample)
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 3, g.Cols())
	require.Equal(t, byte('#'), g.At(1, 1))
	require.Equal(t, grid.Outside, g.At(-1, 0))
	require.Equal(t, grid.Outside, g.At(0, 3))
	require.Equal(t, sample, g.String())
}

func TestParse_CRLF(t *testing.T) {
	g := grid.Parse("ab\r\ncd\r\n")
	require.Equal(t, 2, g.Rows())
	require.Equal(t, "ab\ncd\n", g.String())
}

func TestFindAndCount(t *testing.T) {
	g := grid.Parse(sample)
	require.Equal(t, []geo.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, g.Find('#'))
	require.Equal(t, 6, g.Count('.'))

	p, ok := g.FindFirst('#')
	require.True(t, ok)
	require.Equal(t, geo.Pt(0, 0), p)

	_, ok = g.FindFirst('x')
	require.False(t, ok)
}

func TestTransposeAndClone(t *testing.T) {
	g := grid.Parse("abc\ndef\n")
	tr := g.Transpose()
	require.Equal(t, "ad\nbe\ncf\n", tr.String())

	c := g.Clone()
	c.Set(0, 0, 'z')
	require.Equal(t, byte('a'), g.At(0, 0))
	require.Equal(t, byte('z'), c.At(0, 0))
}

func TestNew(t *testing.T) {
	g := grid.New(2, 3)
	require.Equal(t, "...\n...\n", g.String())
	g.SetPoint(geo.Pt(2, 1), '#')
	require.Equal(t, byte('#'), g.AtPoint(geo.Pt(2, 1)))
	require.Equal(t, geo.Bounds{Width: 2, Height: 1}, g.Bounds())
}

func TestGenericGrid(t *testing.T) {
	g := grid.FromLines([]string{"123", "456"}, func(_ geo.Point, c byte) int { return int(c - '0') })
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, 5, g.At(1, 1))
	require.Equal(t, 0, g.At(9, 9))
	require.Equal(t, []geo.Point{{X: 1, Y: 1}, {X: 2, Y: 1}}, g.Find(func(v int) bool { return v > 4 }))
}

func TestVirtualGrid(t *testing.T) {
	g := grid.Parse("@@.\n@.@\n.@@\n")
	v := grid.NewVirtual[byte](g, 3, 3)
	v.Position(1, 1)
	require.Equal(t, 6, v.Count('@'))

	v.Position(0, 0)
	// the window now hangs over the top-left edge
	require.Equal(t, 5, v.Count(grid.Outside))
	require.Equal(t, 3, v.Count('@'))
}
