package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esolangs/hilbert/internal/value"
)

func TestAddNumeric(t *testing.T) {
	v, err := value.Add(value.Int(2), value.Int(3))
	require.NoError(t, err)
	assert.True(t, value.Equal(v, value.Int(5)))

	v, err = value.Add(value.Int(2), value.Float(0.5))
	require.NoError(t, err)
	assert.True(t, value.Equal(v, value.Float(2.5)))
}

func TestAddStringConcat(t *testing.T) {
	v, err := value.Add(value.Str("foo"), value.Str("bar"))
	require.NoError(t, err)
	assert.Equal(t, "foobar", v.RawStr())
}

func TestAddStringAndNumericFails(t *testing.T) {
	_, err := value.Add(value.Str("n="), value.Int(3))
	assert.Error(t, err)
}

func TestMulRepeat(t *testing.T) {
	v, err := value.Mul(value.Str("ab"), value.Int(3))
	require.NoError(t, err)
	assert.Equal(t, "ababab", v.RawStr())
}

func TestDivByZero(t *testing.T) {
	_, err := value.Div(value.Int(1), value.Int(0))
	assert.Error(t, err)
}

func TestDivIsTrueDivision(t *testing.T) {
	v, err := value.Div(value.Int(5), value.Int(2))
	require.NoError(t, err)
	assert.True(t, value.Equal(v, value.Float(2.5)))
}

func TestFloorDivIsIntegerOnly(t *testing.T) {
	v, err := value.FloorDiv(value.Int(5), value.Int(2))
	require.NoError(t, err)
	assert.True(t, value.Equal(v, value.Int(2)))

	v, err = value.FloorDiv(value.Int(-5), value.Int(2))
	require.NoError(t, err)
	assert.True(t, value.Equal(v, value.Int(-3)))

	_, err = value.FloorDiv(value.Float(5), value.Int(2))
	assert.Error(t, err)

	_, err = value.FloorDiv(value.Int(1), value.Int(0))
	assert.Error(t, err)
}

func TestNegReversesString(t *testing.T) {
	v, err := value.Neg(value.Str("abc"))
	require.NoError(t, err)
	assert.Equal(t, "cba", v.RawStr())
}

func TestIncrOnStringYieldsOne(t *testing.T) {
	assert.True(t, value.Equal(value.Incr(value.Str("x")), value.Int(1)))
}

func TestCrossTypeEquality(t *testing.T) {
	assert.True(t, value.Equal(value.Int(1), value.Bool(true)))
	assert.True(t, value.Equal(value.Int(0), value.Bool(false)))
	assert.False(t, value.Equal(value.Str("1"), value.Int(1)))
}

func TestLessOrdering(t *testing.T) {
	assert.True(t, value.Less(value.Int(1), value.Float(1.5)))
	assert.True(t, value.Less(value.Str("a"), value.Str("b")))
}

func TestTruthy(t *testing.T) {
	assert.False(t, value.Int(0).Truthy())
	assert.True(t, value.Int(-1).Truthy())
	assert.False(t, value.Str("").Truthy())
	assert.True(t, value.Str("0").Truthy())
}
