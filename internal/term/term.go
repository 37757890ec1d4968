// Package term implements the raw single-character terminal read that
// backs the `,` opcode (§4.6, §6c): put a real terminal file descriptor
// into raw mode for exactly one read, then restore it on every exit path.
package term

import (
	"bufio"
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// Getch is the external raw-read adapter an Interp depends on. It is
// implemented by *Terminal and can be replaced (e.g. with a canned
// reader) for non-interactive runs and tests.
type Getch interface {
	// Getch reads a single character. "" with a nil error denotes a
	// carriage return swallowed by the opcode's own newline-suppression
	// rule; io.EOF denotes end of input.
	Getch() (string, error)
}

// Terminal backs Getch with a real *os.File, entering raw mode around
// each read when the file is a terminal, and falling back to buffered
// line input otherwise.
type Terminal struct {
	f  *os.File
	br *bufio.Reader
}

// New wraps f (typically os.Stdin) as a Getch source.
func New(f *os.File) *Terminal {
	return &Terminal{f: f, br: bufio.NewReader(f)}
}

// ErrInterrupt is returned when the read character is ^C or ^Z, matching
// the source language's convention of surfacing those as a host-level
// interruption rather than ordinary input.
var ErrInterrupt = errors.New("input interrupted")

// Getch reads one character, putting the terminal into raw mode for the
// duration of the read when possible.
func (t *Terminal) Getch() (string, error) {
	fd := int(t.f.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return "", err
		}
		defer term.Restore(fd, state) //nolint:errcheck
	}

	r, _, err := t.br.ReadRune()
	if err != nil {
		return "", err
	}
	switch r {
	case '\r', '\n':
		return "", nil
	case 0x03, 0x1a: // ^C, ^Z
		return "", ErrInterrupt
	}
	return string(r), nil
}

// StaticGetch replays a fixed sequence of characters, one per call, for
// deterministic tests; it reports io.EOF once exhausted.
type StaticGetch struct {
	Runes []rune
	pos   int
}

// Getch implements Getch.
func (g *StaticGetch) Getch() (string, error) {
	if g.pos >= len(g.Runes) {
		return "", io.EOF
	}
	r := g.Runes[g.pos]
	g.pos++
	if r == '\r' || r == '\n' {
		return "", nil
	}
	return string(r), nil
}
