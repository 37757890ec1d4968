package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/esolangs/hilbert/internal/grid"
)

func TestWrapCoordToroidal(t *testing.T) {
	ip := New(grid.New(2)) // side 4
	assert.Equal(t, int64(3), ip.wrapCoord(-1))
	assert.Equal(t, int64(0), ip.wrapCoord(4))
	assert.Equal(t, int64(2), ip.wrapCoord(2))
}

func TestDirectionOpcodesWrapAtEdge(t *testing.T) {
	ip := New(grid.New(1)) // side 2
	ip.x, ip.y = 0, 0

	require_ := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// '<' at y=0 must wrap to y=side-1, not halt.
	require_(opLeft(ip, '<'))
	assert.Equal(t, int64(0), ip.x)
	assert.Equal(t, int64(1), ip.y)

	ip.x, ip.y = 0, 1
	require_(opRight(ip, '>'))
	assert.Equal(t, int64(0), ip.x)
	assert.Equal(t, int64(0), ip.y)

	ip.x, ip.y = 0, 0
	require_(opDown(ip, 'v'))
	assert.Equal(t, int64(1), ip.x)
	assert.Equal(t, int64(0), ip.y)

	ip.x, ip.y = 1, 0
	require_(opUp(ip, '^'))
	assert.Equal(t, int64(0), ip.x)
	assert.Equal(t, int64(0), ip.y)
}
