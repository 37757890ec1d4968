package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esolangs/hilbert/internal/grid"
	"github.com/esolangs/hilbert/internal/interp"
)

func runProgram(t *testing.T, src string, opts ...interp.Option) string {
	t.Helper()
	var out bytes.Buffer
	g := grid.FromLines(grid.SplitLines(src))
	ip := interp.New(g, append([]interp.Option{interp.WithOutput(&out)}, opts...)...)
	err := ip.Run()
	require.NoError(t, err)
	return out.String()
}

func TestAddAndPrint(t *testing.T) {
	// matches the first testable scenario: push 2, push 3, add, print.
	assert.Equal(t, "5", runProgram(t, "23+p"))
}

func TestStringLiteralPrint(t *testing.T) {
	// Five characters need an 8x8 grid: the curve visits 'h' at (0,1),
	// then 12 blank cells off the bottom row, then 'i' at (0,2); string
	// mode keeps those blanks.
	assert.Equal(t, "h"+strings.Repeat(" ", 12)+"i", runProgram(t, `"hi"p`))
}

func TestDieHalts(t *testing.T) {
	assert.Equal(t, "", runProgram(t, "X5p"))
}

func TestRaiseWithoutCatchMarkIsFatal(t *testing.T) {
	var out bytes.Buffer
	g := grid.FromLines(grid.SplitLines("&"))
	ip := interp.New(g, interp.WithOutput(&out))
	err := ip.Run()
	assert.Error(t, err)
}

func TestAllErrorsFatalDisablesCatch(t *testing.T) {
	var out bytes.Buffer
	g := grid.FromLines(grid.SplitLines("@&"))
	ip := interp.New(g, interp.WithOutput(&out), interp.WithAllErrorsFatal(true))
	err := ip.Run()
	assert.Error(t, err)
}

func TestIncrementOnStringPushesOne(t *testing.T) {
	assert.Equal(t, "1", runProgram(t, `"x"Ip`))
}

func TestSwap(t *testing.T) {
	assert.Equal(t, "12", runProgram(t, "12s∑p∑p"))
}

func TestSlashIsFloorDivision(t *testing.T) {
	assert.Equal(t, "2", runProgram(t, "52/p"))
}

func TestColonIsTrueDivision(t *testing.T) {
	assert.Equal(t, "2.5", runProgram(t, "52:p"))
}

func TestAddStringAndNumberIsTypeMismatch(t *testing.T) {
	var out bytes.Buffer
	g := grid.FromLines(grid.SplitLines(`"x"3+`))
	ip := interp.New(g, interp.WithOutput(&out))
	assert.Error(t, ip.Run())
}

func TestOrderUpLeavesMinimumOnTop(t *testing.T) {
	// G sorts [3,5], pushing max then min: popping reads ascending.
	assert.Equal(t, "35", runProgram(t, "53Gpp"))
}

func TestOrderDownLeavesMaximumOnTop(t *testing.T) {
	// g sorts [3,5], pushing min then max: popping reads descending.
	assert.Equal(t, "53", runProgram(t, "53gpp"))
}

func TestLoadGridPreservesStackAcrossFiles(t *testing.T) {
	var out bytes.Buffer
	ip := interp.New(grid.FromLines(grid.SplitLines("7")), interp.WithOutput(&out))
	require.NoError(t, ip.Run())

	ip.LoadGrid(grid.FromLines(grid.SplitLines("p")))
	require.NoError(t, ip.Run())

	assert.Equal(t, "7", out.String())
}
