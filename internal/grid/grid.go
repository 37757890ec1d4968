// Package grid implements the interpreter's mutable 2D character surface
// and the two ways source text is laid onto it: a rectangular layout that
// follows the source's own line breaks, and a linear layout that packs a
// flat character stream onto the smallest Hilbert curve that holds it.
package grid

import (
	"strings"

	"github.com/esolangs/hilbert/internal/curve"
)

// Grid is a square toroidal character surface of side 2^Order(), indexed
// (x, y) with x=0 at the bottom row.
type Grid struct {
	p     uint
	cells [][]rune // cells[x][y]
}

// New returns a grid of curve order p, filled with spaces.
func New(p uint) *Grid {
	side := int(curve.Side(p))
	cells := make([][]rune, side)
	for x := range cells {
		row := make([]rune, side)
		for y := range row {
			row[y] = ' '
		}
		cells[x] = row
	}
	return &Grid{p: p, cells: cells}
}

// Order returns the grid's Hilbert curve order p.
func (g *Grid) Order() uint { return g.p }

// Side returns the grid's edge length, 2^Order().
func (g *Grid) Side() int64 { return int64(curve.Side(g.p)) }

// At returns the rune at (x, y), wrapping both coordinates toroidally.
func (g *Grid) At(x, y int64) rune {
	x, y = g.wrap(x, y)
	return g.cells[x][y]
}

// Set writes r at (x, y), wrapping both coordinates toroidally.
func (g *Grid) Set(x, y int64, r rune) {
	x, y = g.wrap(x, y)
	g.cells[x][y] = r
}

func (g *Grid) wrap(x, y int64) (int64, int64) {
	n := g.Side()
	x %= n
	if x < 0 {
		x += n
	}
	y %= n
	if y < 0 {
		y += n
	}
	return x, y
}

// CoordOf and DistOf expose this grid's order bound to the curve package,
// for the interpreter's position/distance bookkeeping.
func (g *Grid) CoordOf(d uint64) (x, y int64) {
	ux, uy := curve.CoordOf(d, g.p)
	return int64(ux), int64(uy)
}

func (g *Grid) DistOf(x, y int64) uint64 {
	return curve.DistOf(uint64(x), uint64(y), g.p)
}

// Size returns the total number of addressable cells, 4^Order().
func (g *Grid) Size() uint64 { return curve.Size(g.p) }

// FromLines lays out source text in rectangular mode: rows are indexed by
// x from 0 (bottom) to 2^p-1 (top), so the last line of text occupies
// x=0. p is chosen as the smallest order whose side covers both the
// number of lines and the longest line.
func FromLines(lines []string) *Grid {
	maxLen := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > maxLen {
			maxLen = n
		}
	}
	n := len(lines)
	if maxLen > n {
		n = maxLen
	}
	p := curve.OrderFor(uint64(n))
	g := New(p)

	// last line -> x=0, first line -> x=len(lines)-1
	for i, line := range lines {
		x := int64(len(lines) - 1 - i)
		for y, r := range []rune(line) {
			g.Set(x, int64(y), r)
		}
	}
	return g
}

// FromStream lays out source text in linear mode: every non-whitespace
// character of the stream is placed at increasing Hilbert-curve distance
// d = 0, 1, 2, ..., on the smallest grid whose cell count covers the
// stream length.
func FromStream(runes []rune) *Grid {
	stream := make([]rune, 0, len(runes))
	for _, r := range runes {
		if !isLinearSkip(r) {
			stream = append(stream, r)
		}
	}
	p := uint(0)
	for curve.Size(p) < uint64(len(stream)) {
		p++
	}
	g := New(p)
	for d, r := range stream {
		x, y := g.CoordOf(uint64(d))
		g.Set(x, y, r)
	}
	return g
}

func isLinearSkip(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// SplitLines splits decoded source text into lines, stripping the
// trailing newline from each.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
