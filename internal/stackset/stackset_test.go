package stackset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esolangs/hilbert/internal/stackset"
	"github.com/esolangs/hilbert/internal/value"
)

func TestPushPop(t *testing.T) {
	s := stackset.New()
	s.CurPush(value.Int(1))
	s.CurPush(value.Int(2))
	v, err := s.CurPop()
	require.NoError(t, err)
	assert.True(t, value.Equal(v, value.Int(2)))
	assert.Equal(t, 1, s.CurLen())
}

func TestEmptyPopErrors(t *testing.T) {
	s := stackset.New()
	_, err := s.Pop(42)
	assert.Error(t, err)
}

func TestStickyDoesNotConsume(t *testing.T) {
	s := stackset.New()
	s.Push(5, value.Int(7))
	s.StickyOn(5)
	for i := 0; i < 3; i++ {
		v, err := s.Pop(5)
		require.NoError(t, err)
		assert.True(t, value.Equal(v, value.Int(7)))
	}
	assert.Equal(t, 1, s.Len(5))
	s.StickyOff(5)
	_, err := s.Pop(5)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len(5))
}

func TestCursorNavigation(t *testing.T) {
	s := stackset.New()
	assert.Equal(t, int64(0), s.Current())
	s.Shift(1)
	assert.Equal(t, int64(1), s.Current())
	s.Shift(-2)
	assert.Equal(t, int64(-1), s.Current())
	s.SetCurrent(99)
	assert.Equal(t, int64(99), s.Current())
}

func TestNegativeStackIDs(t *testing.T) {
	s := stackset.New()
	s.Push(-3, value.Str("a"))
	v, err := s.Pop(-3)
	require.NoError(t, err)
	assert.Equal(t, "a", v.RawStr())
}
