package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esolangs/hilbert/internal/grid"
)

func TestFromLinesIsRowMajor(t *testing.T) {
	// Rectangular mode lays text out by its own rows and columns; the
	// Hilbert curve governs execution order, not placement.
	g := grid.FromLines([]string{"23+p"})
	require.Equal(t, uint(2), g.Order())
	assert.Equal(t, '2', g.At(0, 0))
	assert.Equal(t, '3', g.At(0, 1))
	assert.Equal(t, '+', g.At(0, 2))
	assert.Equal(t, 'p', g.At(0, 3))
}

func TestFromLinesLastLineIsBottom(t *testing.T) {
	g := grid.FromLines([]string{"top", "bottom"})
	assert.Equal(t, 'b', g.At(0, 0))
}

func TestWraparound(t *testing.T) {
	g := grid.New(1)
	g.Set(0, 0, 'a')
	assert.Equal(t, 'a', g.At(2, 0))
	assert.Equal(t, 'a', g.At(-2, 0))
}

func TestFromStreamSkipsWhitespace(t *testing.T) {
	g := grid.FromStream([]rune("2 3\n+\tp"))
	assert.Equal(t, uint(1), g.Order())
	x0, y0 := g.CoordOf(0)
	x1, y1 := g.CoordOf(1)
	x2, y2 := g.CoordOf(2)
	x3, y3 := g.CoordOf(3)
	assert.Equal(t, '2', g.At(x0, y0))
	assert.Equal(t, '3', g.At(x1, y1))
	assert.Equal(t, '+', g.At(x2, y2))
	assert.Equal(t, 'p', g.At(x3, y3))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, grid.SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, grid.SplitLines("a\nb"))
}
