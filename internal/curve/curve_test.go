package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/esolangs/hilbert/internal/curve"
)

func TestBaseShape(t *testing.T) {
	// order 1: the first 2x2 block visits (0,0) (0,1) (1,1) (1,0).
	want := [][2]uint64{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	for d, xy := range want {
		x, y := curve.CoordOf(uint64(d), 1)
		assert.Equal(t, xy, [2]uint64{x, y}, "CoordOf(%d)", d)
		assert.Equal(t, uint64(d), curve.DistOf(xy[0], xy[1], 1), "DistOf(%v)", xy)
	}
}

func TestRoundTrip(t *testing.T) {
	for p := uint(0); p <= 6; p++ {
		n := curve.Size(p)
		seen := make(map[[2]uint64]bool, n)
		for d := uint64(0); d < n; d++ {
			x, y := curve.CoordOf(d, p)
			assert.True(t, curve.InGrid(int64(x), int64(y), p))
			assert.False(t, seen[[2]uint64{x, y}], "duplicate coord at d=%d p=%d", d, p)
			seen[[2]uint64{x, y}] = true
			assert.Equal(t, d, curve.DistOf(x, y, p))
		}
		assert.Len(t, seen, int(n))
	}
}

func TestAdjacency(t *testing.T) {
	// consecutive distances must map to grid-adjacent coordinates.
	const p = 4
	for d := uint64(0); d+1 < curve.Size(p); d++ {
		x0, y0 := curve.CoordOf(d, p)
		x1, y1 := curve.CoordOf(d+1, p)
		dx := int64(x0) - int64(x1)
		dy := int64(y0) - int64(y1)
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		assert.Equal(t, int64(1), dx+dy, "d=%d -> d=%d not adjacent", d, d+1)
	}
}

func TestOrderFor(t *testing.T) {
	cases := []struct {
		n    uint64
		want uint
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {16, 4}, {17, 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, curve.OrderFor(c.n), "OrderFor(%d)", c.n)
	}
}
