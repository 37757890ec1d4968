package interp

import "fmt"

// CodeError is a CodeException (§7): a recoverable runtime fault raised by
// a running program, such as a type mismatch or a failed assertion. It is
// caught and rewound to the active catch mark unless all-errors-fatal is
// set or no catch mark has been established yet.
type CodeError struct {
	Op     rune
	X, Y   int64
	Reason string
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("%c @(%d,%d): %s", e.Op, e.X, e.Y, e.Reason)
}

func codeErrorf(op rune, x, y int64, format string, args ...interface{}) *CodeError {
	return &CodeError{Op: op, X: x, Y: y, Reason: fmt.Sprintf(format, args...)}
}

// Halt is a sentinel wrapping normal termination: the curve was exhausted
// in the current direction, or the `X` opcode ran. Halt is never caught by
// a catch mark.
type Halt struct {
	Cause error
}

func (h *Halt) Error() string {
	if h.Cause != nil {
		return fmt.Sprintf("halted: %v", h.Cause)
	}
	return "halted"
}

func (h *Halt) Unwrap() error { return h.Cause }

func halt(cause error) *Halt { return &Halt{Cause: cause} }
