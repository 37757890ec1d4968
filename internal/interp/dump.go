package interp

import (
	"fmt"
	"io"

	"github.com/esolangs/hilbert/internal/runeio"
)

// Dump writes a human-readable snapshot of the interpreter's state: the
// cursor, mode, current stack, quick register, catch mark, and previous
// command. It is a debugging aid, not for machine consumption; the CLI
// does not call it, at any -v level.
func (ip *Interp) Dump(w io.Writer) error {
	cmd := ip.g.At(ip.x, ip.y)
	fmt.Fprintf(w, "# Interp Dump\n")
	fmt.Fprintf(w, "  pos: (%d,%d) dir:%+d cmd:%s mode:%v\n", ip.x, ip.y, ip.dir, renderRune(cmd), ip.mode)
	fmt.Fprintf(w, "  stack[%d]: %v\n", ip.stacks.Current(), ip.stacks.All(ip.stacks.Current()))
	fmt.Fprintf(w, "  quick: %v\n", ip.quick)
	if ip.catchMark != nil {
		fmt.Fprintf(w, "  catch-mark: (%d,%d)\n", ip.catchMark[0], ip.catchMark[1])
	} else {
		fmt.Fprintf(w, "  catch-mark: none\n")
	}
	_, err := fmt.Fprintf(w, "  prev: %s\n", renderRune(ip.prevCmd))
	return err
}

func renderRune(r rune) string {
	if caret := runeio.CaretForm(r); caret != "" {
		return caret
	}
	return string(r)
}

func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "command"
	case ModeString:
		return "string"
	case ModeStringEscape:
		return "string-escape"
	case ModeChar:
		return "char"
	case ModeCharEscape:
		return "char-escape"
	case ModeEscape:
		return "escape"
	default:
		return "invalid"
	}
}
