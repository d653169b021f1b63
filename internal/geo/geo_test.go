package geo_test

import (
	"advent/internal/geo"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	p, err := geo.ParsePoint(" 12,-3 ")
	require.NoError(t, err)
	require.Equal(t, geo.Pt(12, -3), p)

	_, err = geo.ParsePoint("12")
	require.Error(t, err)

	_, err = geo.ParsePoint("a,1")
	require.Error(t, err)
}

func TestRotation(t *testing.T) {
	require.Equal(t, geo.East, geo.North.RotateCW())
	require.Equal(t, geo.South, geo.East.RotateCW())
	require.Equal(t, geo.West, geo.North.RotateCCW())
	require.Equal(t, geo.North, geo.North.RotateCW().RotateCW().RotateCW().RotateCW())
	require.Equal(t, geo.South, geo.North.Inverse())
}

func TestDirectionFromChar(t *testing.T) {
	require.Equal(t, geo.North, geo.DirectionFromChar('U'))
	require.Equal(t, geo.South, geo.DirectionFromChar('S'))
	require.Equal(t, geo.East, geo.DirectionFromChar('R'))
	require.Equal(t, geo.West, geo.DirectionFromChar('L'))
}

func TestTouches(t *testing.T) {
	p := geo.Pt(2, 2)
	require.True(t, p.Touches(geo.Pt(3, 3)))
	require.True(t, p.Touches(p))
	require.False(t, p.Touches(geo.Pt(4, 2)))
}

func TestNeighbours(t *testing.T) {
	p := geo.Pt(0, 0)
	require.ElementsMatch(t,
		[]geo.Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
		p.Neighbours())
	all := p.AllNeighbours()
	require.Len(t, all, 8)
	require.NotContains(t, all, p)
}

func TestVectorPoints(t *testing.T) {
	v := geo.Vector{Start: geo.Pt(1, 1), End: geo.Pt(3, 3)}
	require.True(t, v.IsDiagonal())
	require.Equal(t, []geo.Point{{1, 1}, {2, 2}, {3, 3}}, v.Points())

	h := geo.Vector{Start: geo.Pt(9, 4), End: geo.Pt(3, 4)}
	require.True(t, h.IsHorizontal())
	require.Len(t, h.Points(), 7)
	require.Equal(t, 6, h.Steps())
}

func TestBoundsContains(t *testing.T) {
	b := geo.Bounds{X: 0, Y: 0, Width: 10, Height: 5}
	require.True(t, b.Contains(geo.Pt(10, 5)))
	require.False(t, b.Contains(geo.Pt(11, 0)))
	require.False(t, b.Contains(geo.Pt(0, -1)))
}
