// Package interp implements the Hilbert-curve esolang's execution engine:
// the grid cursor and direction, the stack family, the lexical modes
// (command/string/char/escape), and the opcode dispatch table.
package interp

import (
	"bufio"
	"errors"
	"io"

	"github.com/esolangs/hilbert/internal/clock"
	"github.com/esolangs/hilbert/internal/curve"
	"github.com/esolangs/hilbert/internal/flushio"
	"github.com/esolangs/hilbert/internal/grid"
	"github.com/esolangs/hilbert/internal/prng"
	"github.com/esolangs/hilbert/internal/regexop"
	"github.com/esolangs/hilbert/internal/stackset"
	"github.com/esolangs/hilbert/internal/term"
	"github.com/esolangs/hilbert/internal/value"
)

// Mode names the interpreter's lexical state.
type Mode int

// The six lexical modes (§4.5).
const (
	ModeCommand Mode = iota
	ModeString
	ModeStringEscape
	ModeChar
	ModeCharEscape
	ModeEscape
)

// Interp runs a single program against a grid. It is not safe for
// concurrent use (§5): one goroutine, one set of stacks, one grid.
type Interp struct {
	g   *grid.Grid
	x   int64
	y   int64
	dir int64

	mode Mode
	buf  []rune

	stacks     *stackset.Set
	quick      value.Value
	catchMark  *[2]int64
	allErrFtl  bool
	prevCmd    rune
	stopwatch  *clock.Elapsed

	out    flushio.WriteFlusher
	in     *bufio.Reader
	getch  term.Getch
	rng    prng.Source
	re     regexop.Engine
	clk    clock.Source
	logf   func(level int, format string, args ...interface{})
}

// New builds an Interp over g, applying opts.
func New(g *grid.Grid, opts ...Option) *Interp {
	ip := &Interp{
		g:      g,
		dir:    1,
		mode:   ModeCommand,
		prevCmd: ' ',
		stacks: stackset.New(),
		quick:  value.Str(""),
		out:    flushio.NewWriteFlusher(io.Discard),
		in:     bufio.NewReader(new(zeroReader)),
		getch:  &term.StaticGetch{},
		rng:    prng.New(1),
		re:     regexop.NewRE2(),
		clk:    clock.Stopwatch{},
	}
	for _, o := range opts {
		o.apply(ip)
	}
	ip.stopwatch = clock.NewElapsed(ip.clk)
	return ip
}

// LoadGrid rebuilds the interpreter around a new grid, resetting the
// cursor, direction, lexical mode, and catch mark, while preserving the
// stack family, quick register, and stopwatch. This backs running
// several source files in sequence against one interpreter instance, the
// way the source language's own CLI loads and runs each file in turn
// without losing state between them.
func (ip *Interp) LoadGrid(g *grid.Grid) {
	ip.g = g
	ip.x, ip.y = 0, 0
	ip.dir = 1
	ip.mode = ModeCommand
	ip.buf = nil
	ip.catchMark = nil
	ip.prevCmd = ' '
}

type zeroReader struct{}

func (zeroReader) Read([]byte) (int, error) { return 0, io.EOF }

// Position returns the cursor's current grid coordinates, for logging and
// dumping.
func (ip *Interp) Position() (x, y int64) { return ip.x, ip.y }

// Run executes the program to completion, returning nil on a normal halt
// and a non-nil error for an uncaught CodeException or a host-level I/O
// failure.
func (ip *Interp) Run() error {
	for {
		err := ip.step()
		if err == nil {
			continue
		}
		var h *Halt
		if errors.As(err, &h) {
			if ferr := ip.out.Flush(); ferr != nil && h.Cause == nil {
				return ferr
			}
			return nil
		}
		var ce *CodeError
		if errors.As(err, &ce) && ip.catchMark != nil && !ip.allErrFtl {
			ip.logAt(2, "caught %v, rewinding to (%d,%d)", ce, ip.catchMark[0], ip.catchMark[1])
			ip.x, ip.y = ip.catchMark[0], ip.catchMark[1]
			continue
		}
		return err
	}
}

func (ip *Interp) step() error {
	cmd := ip.g.At(ip.x, ip.y)
	if ip.logf != nil && cmd != ' ' {
		ip.logf(3, "@(%d,%d) %c stack=%v", ip.x, ip.y, cmd, ip.stacks.All(ip.stacks.Current()))
	}

	var err error
	switch ip.mode {
	case ModeCommand:
		err = ip.stepCommand(cmd)
	case ModeString, ModeStringEscape:
		err = ip.stepString(cmd)
	case ModeChar, ModeCharEscape:
		err = ip.stepChar(cmd)
	case ModeEscape:
		err = ip.stepEscape(cmd)
	}
	return err
}

// advance moves the cursor one step along the curve in the current
// direction, halting cleanly if that would walk off either end of the
// curve. This implements the bounds check shared by every opcode except
// the direct teleports (`j`, `§`, `O`, `;`), `X`, the direction opcodes
// (and `?`), and the mirror opcodes when they jump, which use moveTo.
func (ip *Interp) advance() error {
	d := ip.g.DistOf(ip.x, ip.y)
	nd := int64(d) + ip.dir
	if nd < 0 || uint64(nd) >= ip.g.Size() {
		return halt(nil)
	}
	ip.x, ip.y = ip.g.CoordOf(uint64(nd))
	return nil
}

// moveTo sets the cursor to an explicit grid coordinate (used by the
// direction and mirror opcodes), applying the same bounds check as
// advance. Since direction/mirror targets are always constructed modulo
// the grid side, this never actually halts in practice.
func (ip *Interp) moveTo(x, y int64) error {
	if !curve.InGrid(x, y, ip.g.Order()) {
		return halt(nil)
	}
	ip.x, ip.y = x, y
	return nil
}

// wrapCoord reduces a single direction-opcode coordinate modulo the
// grid's side, so `< > v ^` (and their uppercase, grid-rewriting forms)
// wrap toroidally at the grid's edges instead of halting there.
func (ip *Interp) wrapCoord(c int64) int64 {
	side := ip.g.Side()
	c %= side
	if c < 0 {
		c += side
	}
	return c
}

// teleportTo sets the cursor directly from a curve distance, bypassing
// advance's bounds check the way `j` and `§` do in the source language;
// an out-of-range destination raises a catchable CodeError rather than
// silently halting, since it signals a program logic error rather than
// curve exhaustion.
func (ip *Interp) teleportTo(op rune, d int64) error {
	if d < 0 || uint64(d) >= ip.g.Size() {
		return codeErrorf(op, ip.x, ip.y, "teleport distance %d out of range", d)
	}
	ip.x, ip.y = ip.g.CoordOf(uint64(d))
	return nil
}

func (ip *Interp) curDist() int64 { return int64(ip.g.DistOf(ip.x, ip.y)) }

// pop pops the current stack, defaulting to Int(0) on underflow, matching
// the source language's pop()-never-fails convention.
func (ip *Interp) pop() value.Value {
	v, err := ip.stacks.CurPop()
	if err != nil {
		return value.Int(0)
	}
	return v
}

func (ip *Interp) push(v value.Value) { ip.stacks.CurPush(v) }

func (ip *Interp) logAt(level int, format string, args ...interface{}) {
	if ip.logf != nil {
		ip.logf(level, format, args...)
	}
}
