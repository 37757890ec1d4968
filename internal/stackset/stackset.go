// Package stackset implements the interpreter's family of value stacks:
// a sparse collection keyed by arbitrary signed integer ids, a movable
// "current stack" cursor, and a sticky set of ids whose stacks are read
// without being consumed.
package stackset

import (
	"fmt"

	"github.com/esolangs/hilbert/internal/value"
)

// Set is a sparse family of value stacks addressed by signed integer id.
// Create one with New; the zero value has nil maps and panics on Push
// or StickyOn.
type Set struct {
	stacks map[int64][]value.Value
	sticky map[int64]bool
	cur    int64
}

// New returns an empty Set with its cursor on stack 0.
func New() *Set {
	return &Set{stacks: make(map[int64][]value.Value), sticky: make(map[int64]bool)}
}

// Current returns the id of the stack under the cursor.
func (s *Set) Current() int64 { return s.cur }

// SetCurrent moves the cursor to the given stack id.
func (s *Set) SetCurrent(sid int64) { s.cur = sid }

// Shift moves the cursor by delta, used by the `(` and `)` opcodes.
func (s *Set) Shift(delta int64) { s.cur += delta }

// StickyOn and StickyOff implement the `k`/`K` opcodes: adding or removing
// sid from the sticky set.
func (s *Set) StickyOn(sid int64)  { s.sticky[sid] = true }
func (s *Set) StickyOff(sid int64) { delete(s.sticky, sid) }

// IsSticky reports whether sid is in the sticky set.
func (s *Set) IsSticky(sid int64) bool { return s.sticky[sid] }

// Push pushes v onto the named stack.
func (s *Set) Push(sid int64, v value.Value) {
	s.stacks[sid] = append(s.stacks[sid], v)
}

// PushTo is an alias for Push reading more naturally at call sites that
// move a value between two named stacks.
func (s *Set) PushTo(sid int64, v value.Value) { s.Push(sid, v) }

// ErrEmpty is returned by Pop and Peek when the named stack has no values.
type ErrEmpty struct{ SID int64 }

func (e ErrEmpty) Error() string { return fmt.Sprintf("stack %d is empty", e.SID) }

// Pop removes and returns the top value of the named stack, unless sid is
// sticky, in which case the top value is returned without being removed.
func (s *Set) Pop(sid int64) (value.Value, error) {
	st := s.stacks[sid]
	if len(st) == 0 {
		return value.Value{}, ErrEmpty{sid}
	}
	top := st[len(st)-1]
	if !s.sticky[sid] {
		s.stacks[sid] = st[:len(st)-1]
	}
	return top, nil
}

// Peek returns the top value of the named stack without consuming it,
// ignoring stickiness.
func (s *Set) Peek(sid int64) (value.Value, error) {
	st := s.stacks[sid]
	if len(st) == 0 {
		return value.Value{}, ErrEmpty{sid}
	}
	return st[len(st)-1], nil
}

// Len returns the number of values on the named stack.
func (s *Set) Len(sid int64) int { return len(s.stacks[sid]) }

// All returns the named stack's values, bottom first. The returned slice
// must not be mutated by the caller.
func (s *Set) All(sid int64) []value.Value { return s.stacks[sid] }

// Replace overwrites the named stack's contents wholesale, bottom first.
func (s *Set) Replace(sid int64, vs []value.Value) { s.stacks[sid] = vs }

// CurPush, CurPop, CurPeek, and CurLen operate on the stack under the
// cursor.
func (s *Set) CurPush(v value.Value)        { s.Push(s.cur, v) }
func (s *Set) CurPop() (value.Value, error) { return s.Pop(s.cur) }
func (s *Set) CurPeek() (value.Value, error) { return s.Peek(s.cur) }
func (s *Set) CurLen() int                  { return s.Len(s.cur) }
