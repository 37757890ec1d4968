// Package curve implements the bijection between a linear distance along a
// Hilbert space-filling curve and (x, y) grid coordinates.
//
// Both directions use the standard iterative Gray-code construction: at
// each order, the current quadrant is reflected and/or transposed so that
// the curve's four sub-quadrants connect endpoint to endpoint. The base
// case (order 1, a single 2x2 block) visits its cells in the order
// (0,0) (0,1) (1,1) (1,0) -- with x as the row and y as the column, a U
// shape open on the left.
package curve

// Side returns the grid's edge length 2^p for curve order p.
func Side(p uint) uint64 { return uint64(1) << p }

// Size returns the number of cells 4^p addressable by curve order p.
func Size(p uint) uint64 { return Side(p) * Side(p) }

// CoordOf maps a curve distance d, 0 <= d < 4^p, to its (x, y) coordinate
// on a grid of side 2^p. Behavior is undefined if d is out of range; call
// InRange first.
func CoordOf(d uint64, p uint) (x, y uint64) {
	for s := uint64(1); s < Side(p); s *= 2 {
		rx := uint64(1) & (d / 2)
		ry := uint64(1) & (d ^ rx)
		x, y = rot(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		d /= 4
	}
	return x, y
}

// DistOf maps an (x, y) coordinate on a grid of side 2^p back to its curve
// distance. Behavior is undefined if x or y is out of [0, 2^p); call
// InRange first.
func DistOf(x, y uint64, p uint) uint64 {
	var d uint64
	for s := Side(p) / 2; s > 0; s /= 2 {
		var rx, ry uint64
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		x, y = rot(s, x, y, rx, ry)
	}
	return d
}

// InRange reports whether d addresses a valid cell of a grid of side 2^p.
func InRange(d uint64, p uint) bool { return d < Size(p) }

// InGrid reports whether (x, y) lies within a grid of side 2^p.
func InGrid(x, y int64, p uint) bool {
	n := int64(Side(p))
	return x >= 0 && x < n && y >= 0 && y < n
}

func rot(n, x, y, rx, ry uint64) (uint64, uint64) {
	if ry == 0 {
		if rx == 1 {
			x = n - 1 - x
			y = n - 1 - y
		}
		x, y = y, x
	}
	return x, y
}

// OrderFor returns the smallest p such that 2^p >= n, i.e. ceil(log2(n)).
// OrderFor(0) and OrderFor(1) are both 0.
func OrderFor(n uint64) uint {
	var p uint
	for Side(p) < n {
		p++
	}
	return p
}
