package interp

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/esolangs/hilbert/internal/value"
)

// opFunc implements one opcode. Each opFunc is responsible for its own
// cursor advance: most end by calling ip.advance(), the direction and
// mirror opcodes call ip.moveTo with an explicit target, and the four
// teleports plus `X` move the cursor without any bounds-checked advance
// at all.
type opFunc func(ip *Interp, cmd rune) error

// opTable is the command-mode dispatch table, keyed by opcode rune. Its
// construction mirrors the source language's own annotation-driven
// registry: one entry per opcode character, several opcodes sharing a
// single handler.
var opTable = buildOpTable()

func buildOpTable() map[rune]opFunc {
	t := make(map[rune]opFunc)
	reg := func(f opFunc, chars string) {
		for _, c := range chars {
			t[c] = f
		}
	}

	reg(opNop, " ")
	reg(opLeft, "<W")
	reg(opRight, ">E")
	reg(opDown, "vS")
	reg(opUp, "^N")
	reg(opNumeric, "0123456789")
	reg(opAdd, "+")
	reg(opPowFindChar, "F")
	reg(opMinusSplit1, "-")
	reg(opTimes, "*")
	reg(opModReReplace, "%")
	reg(opDivReMatches, "/")
	reg(opFloatDivSplit2, ":")
	reg(opEquals, "=")
	reg(opPrint, "p")
	reg(opPrintQuick, "B")
	reg(opStickyOn, "k")
	reg(opStickyOff, "K")
	reg(opNewline, "n")
	reg(opRead, "r")
	reg(opSwap, "s")
	reg(opCastInt, "i")
	reg(opCastBool, "b")
	reg(opCastString, "∑") // ∑
	reg(opIncrement, "I")
	reg(opDecrement, "D")
	reg(opChr, "c")
	reg(opOrd, "o")
	reg(opCastFloat, "f")
	reg(opDuplicate, "d")
	reg(opHead, "h")
	reg(opNextStack, ")")
	reg(opPrevStack, "(")
	reg(opMoveNextStack, "}")
	reg(opMovePrevStack, "{")
	reg(opMoveGoNextStack, "]")
	reg(opMoveGoPrevStack, "[")
	reg(opNegation, "!")
	reg(opDie, "X")
	reg(opMirrorH, "|")
	reg(opMirrorV, "_")
	reg(opMirrorVH, "#")
	reg(opReverse, "u")
	reg(opReverseStack, "U")
	reg(opStringLiteral, "\"")
	reg(opCharLiteral, "'")
	reg(opEscape, "\\")
	reg(opCondEscape, "`")
	reg(opRandomDirection, "?")
	reg(opRandomNumber, "R")
	reg(opPi, "P")
	reg(opEuler, "e")
	reg(opInvert, "~")
	reg(opBitwiseNegate, "a")
	reg(opRestart, "O")
	reg(opFinalize, ";")
	reg(opGetch, ",")
	reg(opRepeat, ".")
	reg(opEmptyStack, "ø") // ø
	reg(opJump, "j")
	reg(opGoto, "§") // §
	reg(opJoin, "J")
	reg(opCatchMark, "@")
	reg(opRaise, "&")
	reg(opAssert, "$")
	reg(opGetStopwatch, "t")
	reg(opSetStopwatch, "T")
	reg(opGetDatetime, "™τ") // ™τ
	reg(opDrop, "x")
	reg(opContains, "C")
	reg(opLength, "l")
	reg(opQueue, "q")
	reg(opUnqueue, "Q")
	reg(opMemorizeQuick, "M")
	reg(opLoadQuick, "L")
	reg(opMore, "m")
	reg(opLessOrEqual, "w")
	reg(opBitwiseAnd, "A")
	reg(opBitwiseOr, "V")
	reg(opBitwiseXor, "H")
	reg(opRangeDown, "z")
	reg(opRangeUp, "Z")
	reg(opOrderUp, "G")
	reg(opOrderDown, "g")
	reg(opShuffle, "Y")
	reg(opSign, "y")
	reg(opBitwiseLeft, "«")  // «
	reg(opBitwiseRight, "»") // »
	reg(opMultiplyStack, "×") // ×
	reg(opAbs, "±")           // ±
	reg(opExplodeString, "€") // €
	reg(opImplodeString, "£¥") // £¥

	return t
}

// OpNames lists every registered opcode rune together with a short name,
// for the CLI's zero-argument opcode table (§6). Names drop the leading
// underscore convention of the grounding source and use the language's
// own terms.
func OpNames() map[rune]string {
	return map[rune]string{
		'0': "numeric", '1': "numeric", '2': "numeric", '3': "numeric", '4': "numeric",
		'5': "numeric", '6': "numeric", '7': "numeric", '8': "numeric", '9': "numeric",
		' ': "nop", '<': "left", 'W': "left", '>': "right", 'E': "right",
		'v': "down", 'S': "down", '^': "up", 'N': "up",
		'+': "add", 'F': "pow/find", '-': "sub/split", '*': "mul",
		'%': "mod/re-replace", '/': "div/re-count", ':': "fdiv/split2",
		'=': "equals", 'p': "print", 'B': "print-quick",
		'k': "sticky-on", 'K': "sticky-off", 'n': "newline", 'r': "read-line",
		's': "swap", 'i': "cast-int", 'b': "cast-bool", '∑': "cast-string",
		'I': "increment", 'D': "decrement", 'c': "chr", 'o': "ord",
		'f': "cast-float", 'd': "duplicate", 'h': "head",
		')': "next-stack", '(': "prev-stack", '}': "move-next-stack",
		'{': "move-prev-stack", ']': "move-go-next-stack", '[': "move-go-prev-stack",
		'!': "negation", 'X': "die", '|': "mirror-h", '_': "mirror-v",
		'#': "mirror-vh", 'u': "reverse-dir", 'U': "reverse-stack",
		'"': "string-literal", '\'': "char-literal", '\\': "escape",
		'`': "cond-escape", '?': "random-direction", 'R': "random-number",
		'P': "pi", 'e': "euler", '~': "invert", 'a': "bitwise-negate/re-findall",
		'O': "restart", ';': "finalize", ',': "getch", '.': "repeat",
		'ø': "empty-stack", 'j': "jump", '§': "goto", 'J': "join",
		'@': "catch-mark", '&': "raise", '$': "assert", 't': "get-stopwatch",
		'T': "set-stopwatch", '™': "get-datetime", 'τ': "get-datetime", 'x': "drop",
		'C': "contains", 'l': "length", 'q': "queue", 'Q': "unqueue",
		'M': "memorize-quick", 'L': "load-quick", 'm': "more",
		'w': "less-or-equal", 'A': "bitwise-and", 'V': "bitwise-or",
		'H': "bitwise-xor", 'z': "range-down", 'Z': "range-up",
		'G': "order-up", 'g': "order-down", 'Y': "shuffle", 'y': "sign",
		'«': "bitwise-left", '»': "bitwise-right",
		'×': "multiply-stack", '±': "abs", '€': "explode-string",
		'£': "implode-string", '¥': "implode-string",
	}
}

// WriteOpTable writes a column-aligned listing of every opcode, for the
// CLI's zero-argument invocation (§6).
func WriteOpTable(w io.Writer, columns int) error {
	names := OpNames()
	chars := make([]rune, 0, len(names))
	for c := range names {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	if columns < 1 {
		columns = 1
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, c := range chars {
		fmt.Fprintf(tw, "%c\t%s", c, names[c])
		if (i+1)%columns == 0 || i == len(chars)-1 {
			fmt.Fprintln(tw)
		} else {
			fmt.Fprint(tw, "\t")
		}
	}
	return tw.Flush()
}

func (ip *Interp) stepCommand(cmd rune) error {
	f, ok := opTable[cmd]
	if !ok {
		f = opNop
	}
	err := f(ip, cmd)
	ip.prevCmd = cmd
	return err
}

func opNop(ip *Interp, cmd rune) error { return ip.advance() }

func opLeft(ip *Interp, cmd rune) error {
	if cmd == 'W' {
		ip.g.Set(ip.x, ip.y, 'N')
	}
	return ip.moveTo(ip.x, ip.wrapCoord(ip.y-1))
}

func opRight(ip *Interp, cmd rune) error {
	if cmd == 'E' {
		ip.g.Set(ip.x, ip.y, 'S')
	}
	return ip.moveTo(ip.x, ip.wrapCoord(ip.y+1))
}

func opDown(ip *Interp, cmd rune) error {
	if cmd == 'S' {
		ip.g.Set(ip.x, ip.y, 'W')
	}
	return ip.moveTo(ip.wrapCoord(ip.x-1), ip.y)
}

func opUp(ip *Interp, cmd rune) error {
	if cmd == 'N' {
		ip.g.Set(ip.x, ip.y, 'E')
	}
	return ip.moveTo(ip.wrapCoord(ip.x+1), ip.y)
}

func opNumeric(ip *Interp, cmd rune) error {
	n, _ := strconv.Atoi(string(cmd))
	ip.push(value.Int(int64(n)))
	return ip.advance()
}

func opAdd(ip *Interp, cmd rune) error {
	x, y := ip.pop(), ip.pop()
	v, err := value.Add(y, x)
	if err != nil {
		return codeErrorf(cmd, ip.x, ip.y, "can't add %v to %v", x, y)
	}
	ip.push(v)
	return ip.advance()
}

func opPowFindChar(ip *Interp, cmd rune) error {
	x, y := ip.pop(), ip.pop()
	if y.IsStr() {
		idx, ok := x.AsInt()
		r := []rune(y.RawStr())
		if !ok || idx < 0 || int(idx) >= len(r) {
			return codeErrorf(cmd, ip.x, ip.y, "index out of range")
		}
		ip.push(value.Str(string(r[idx])))
	} else {
		yf, _ := y.AsFloat()
		xf, _ := x.AsFloat()
		ip.push(value.Float(mathPow(yf, xf)))
	}
	return ip.advance()
}

func opMinusSplit1(ip *Interp, cmd rune) error {
	x := ip.pop()
	if x.IsStr() {
		parts := splitWhitespace(x.RawStr())
		pushReversed(ip, parts)
	} else {
		y := ip.pop()
		v, err := value.Sub(y, x)
		if err != nil {
			return codeErrorf(cmd, ip.x, ip.y, "can't subtract %v from %v", x, y)
		}
		ip.push(v)
	}
	return ip.advance()
}

func opTimes(ip *Interp, cmd rune) error {
	x, y := ip.pop(), ip.pop()
	v, err := value.Mul(y, x)
	if err != nil {
		return codeErrorf(cmd, ip.x, ip.y, "can't multiply %v with %v", y, x)
	}
	ip.push(v)
	return ip.advance()
}

func opModReReplace(ip *Interp, cmd rune) error {
	x, y := ip.pop(), ip.pop()
	if !x.IsStr() {
		v, err := value.Mod(y, x)
		if err != nil {
			return codeErrorf(cmd, ip.x, ip.y, "%v", err)
		}
		ip.push(v)
		return ip.advance()
	}
	z := ip.pop()
	out, err := ip.re.ReplaceAll(y.RawStr(), z.String(), x.RawStr())
	if err != nil {
		return codeErrorf(cmd, ip.x, ip.y, "%v", err)
	}
	ip.push(value.Str(out))
	return ip.advance()
}

func opDivReMatches(ip *Interp, cmd rune) error {
	x, y := ip.pop(), ip.pop()
	if !x.IsStr() {
		v, err := value.FloorDiv(y, x)
		if err != nil {
			return codeErrorf(cmd, ip.x, ip.y, "%v", err)
		}
		ip.push(v)
		return ip.advance()
	}
	matches, err := ip.re.FindAll(y.RawStr(), x.RawStr())
	if err != nil {
		return codeErrorf(cmd, ip.x, ip.y, "%v", err)
	}
	ip.push(value.Int(int64(len(matches))))
	return ip.advance()
}

func opFloatDivSplit2(ip *Interp, cmd rune) error {
	x := ip.pop()
	if !x.IsStr() {
		y := ip.pop()
		v, err := value.Div(y, x)
		if err != nil {
			return codeErrorf(cmd, ip.x, ip.y, "%v", err)
		}
		ip.push(v)
		return ip.advance()
	}
	y := ip.pop()
	parts, err := ip.re.Split(x.RawStr(), y.String())
	if err != nil {
		parts = []string{y.String()}
	}
	pushReversed(ip, parts)
	return ip.advance()
}

func opEquals(ip *Interp, cmd rune) error {
	x, y := ip.pop(), ip.pop()
	ip.push(value.Bool(value.Equal(y, x)))
	return ip.advance()
}

func opPrint(ip *Interp, cmd rune) error {
	_, err := io.WriteString(ip.out, ip.pop().String())
	if err != nil {
		return err
	}
	return ip.advance()
}

func opPrintQuick(ip *Interp, cmd rune) error {
	if _, err := io.WriteString(ip.out, ip.quick.String()); err != nil {
		return err
	}
	return ip.advance()
}

func opStickyOn(ip *Interp, cmd rune) error {
	ip.stacks.StickyOn(ip.stacks.Current())
	return ip.advance()
}

func opStickyOff(ip *Interp, cmd rune) error {
	ip.stacks.StickyOff(ip.stacks.Current())
	return ip.advance()
}

func opNewline(ip *Interp, cmd rune) error {
	if _, err := io.WriteString(ip.out, "\n"); err != nil {
		return err
	}
	return ip.advance()
}

func opRead(ip *Interp, cmd rune) error {
	line, err := ip.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	line = trimNewline(line)
	ip.push(value.Str(line))
	return ip.advance()
}

func opSwap(ip *Interp, cmd rune) error {
	x, y := ip.pop(), ip.pop()
	ip.push(x)
	ip.push(y)
	return ip.advance()
}

func opCastInt(ip *Interp, cmd rune) error {
	x := ip.pop()
	n, ok := x.AsInt()
	if !ok {
		return codeErrorf(cmd, ip.x, ip.y, "can't cast %v to int", x)
	}
	ip.push(value.Int(n))
	return ip.advance()
}

func opCastBool(ip *Interp, cmd rune) error {
	ip.push(value.Bool(ip.pop().Truthy()))
	return ip.advance()
}

func opCastString(ip *Interp, cmd rune) error {
	ip.push(value.Str(ip.pop().String()))
	return ip.advance()
}

func opIncrement(ip *Interp, cmd rune) error {
	ip.push(value.Incr(ip.pop()))
	return ip.advance()
}

func opDecrement(ip *Interp, cmd rune) error {
	ip.push(value.Decr(ip.pop()))
	return ip.advance()
}

func opChr(ip *Interp, cmd rune) error {
	x := ip.pop()
	n, ok := x.AsInt()
	if !ok || n < 0 || n > 0x10FFFF {
		ip.push(value.Str("�"))
	} else {
		ip.push(value.Str(string(rune(n))))
	}
	return ip.advance()
}

func opOrd(ip *Interp, cmd rune) error {
	x := ip.pop()
	if x.IsStr() {
		r := []rune(x.RawStr())
		if len(r) == 1 {
			ip.push(value.Int(int64(r[0])))
			return ip.advance()
		}
	}
	ip.push(value.Int(0))
	return ip.advance()
}

func opCastFloat(ip *Interp, cmd rune) error {
	x := ip.pop()
	f, ok := x.AsFloat()
	if !ok {
		f = 0
	}
	ip.push(value.Float(f))
	return ip.advance()
}

func opDuplicate(ip *Interp, cmd rune) error {
	x := ip.pop()
	ip.push(x)
	ip.push(x)
	return ip.advance()
}

func opHead(ip *Interp, cmd rune) error {
	x := ip.pop()
	ip.stacks.Replace(ip.stacks.Current(), nil)
	ip.push(x)
	return ip.advance()
}

func opNextStack(ip *Interp, cmd rune) error { ip.stacks.Shift(1); return ip.advance() }
func opPrevStack(ip *Interp, cmd rune) error { ip.stacks.Shift(-1); return ip.advance() }

func opMoveNextStack(ip *Interp, cmd rune) error {
	x := ip.pop()
	ip.stacks.Push(ip.stacks.Current()+1, x)
	return ip.advance()
}

func opMovePrevStack(ip *Interp, cmd rune) error {
	x := ip.pop()
	ip.stacks.Push(ip.stacks.Current()-1, x)
	return ip.advance()
}

func opMoveGoNextStack(ip *Interp, cmd rune) error {
	x := ip.pop()
	ip.stacks.Shift(1)
	ip.push(x)
	return ip.advance()
}

func opMoveGoPrevStack(ip *Interp, cmd rune) error {
	x := ip.pop()
	ip.stacks.Shift(-1)
	ip.push(x)
	return ip.advance()
}

func opNegation(ip *Interp, cmd rune) error {
	ip.push(value.Bool(!ip.pop().Truthy()))
	return ip.advance()
}

func opDie(ip *Interp, cmd rune) error { return halt(nil) }

func opMirrorH(ip *Interp, cmd rune) error {
	if ip.pop().Truthy() {
		return ip.moveTo(ip.x, ip.g.Side()-1-ip.y)
	}
	return ip.advance()
}

func opMirrorV(ip *Interp, cmd rune) error {
	if ip.pop().Truthy() {
		return ip.moveTo(ip.g.Side()-1-ip.x, ip.y)
	}
	return ip.advance()
}

func opMirrorVH(ip *Interp, cmd rune) error {
	if ip.pop().Truthy() {
		return ip.moveTo(ip.g.Side()-1-ip.x, ip.g.Side()-1-ip.y)
	}
	return ip.advance()
}

func opReverse(ip *Interp, cmd rune) error {
	ip.dir = -ip.dir
	return ip.advance()
}

func opReverseStack(ip *Interp, cmd rune) error {
	cur := ip.stacks.Current()
	vs := append([]value.Value(nil), ip.stacks.All(cur)...)
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
	ip.stacks.Replace(cur, vs)
	return ip.advance()
}

func opStringLiteral(ip *Interp, cmd rune) error {
	ip.mode = ModeString
	return ip.advance()
}

func opCharLiteral(ip *Interp, cmd rune) error {
	ip.mode = ModeChar
	return ip.advance()
}

func opEscape(ip *Interp, cmd rune) error {
	ip.mode = ModeEscape
	return ip.advance()
}

func opCondEscape(ip *Interp, cmd rune) error {
	if !ip.pop().Truthy() {
		ip.mode = ModeEscape
	}
	return ip.advance()
}

func opRandomDirection(ip *Interp, cmd rune) error {
	choices := []rune{'v', '^', '<', '>'}
	pick := choices[ip.rng.Choice4()]
	return opTable[pick](ip, pick)
}

func opRandomNumber(ip *Interp, cmd rune) error {
	ip.push(value.Float(ip.rng.Float64()))
	return ip.advance()
}

func opPi(ip *Interp, cmd rune) error {
	ip.push(value.Float(mathPi))
	return ip.advance()
}

func opEuler(ip *Interp, cmd rune) error {
	ip.push(value.Float(mathE))
	return ip.advance()
}

func opInvert(ip *Interp, cmd rune) error {
	v, err := value.Neg(ip.pop())
	if err != nil {
		return codeErrorf(cmd, ip.x, ip.y, "%v", err)
	}
	ip.push(v)
	return ip.advance()
}

func opBitwiseNegate(ip *Interp, cmd rune) error {
	x := ip.pop()
	if !x.IsStr() {
		n, ok := x.AsInt()
		if !ok {
			return codeErrorf(cmd, ip.x, ip.y, "can't invert %v", x)
		}
		ip.push(value.Int(^n))
		return ip.advance()
	}
	y := ip.pop()
	matches, err := ip.re.FindAll(y.RawStr(), x.RawStr())
	if err != nil {
		return codeErrorf(cmd, ip.x, ip.y, "%v", err)
	}
	pushReversed(ip, matches)
	return ip.advance()
}

func opRestart(ip *Interp, cmd rune) error {
	if ip.dir == 1 {
		ip.x, ip.y = ip.g.CoordOf(0)
	} else {
		ip.x, ip.y = ip.g.CoordOf(ip.g.Size() - 1)
	}
	return nil
}

func opFinalize(ip *Interp, cmd rune) error {
	if ip.dir == -1 {
		ip.x, ip.y = ip.g.CoordOf(0)
	} else {
		ip.x, ip.y = ip.g.CoordOf(ip.g.Size() - 1)
	}
	return nil
}

func opGetch(ip *Interp, cmd rune) error {
	ch, err := ip.getch.Getch()
	if err != nil && err != io.EOF {
		return err
	}
	ip.push(value.Str(ch))
	return ip.advance()
}

func opRepeat(ip *Interp, cmd rune) error {
	f, ok := opTable[ip.prevCmd]
	if !ok {
		f = opNop
	}
	return f(ip, ip.prevCmd)
}

func opEmptyStack(ip *Interp, cmd rune) error {
	ip.stacks.Replace(ip.stacks.Current(), nil)
	return ip.advance()
}

func opJump(ip *Interp, cmd rune) error {
	steps, _ := ip.pop().AsInt()
	return ip.teleportTo(cmd, ip.curDist()+ip.dir*steps)
}

func opGoto(ip *Interp, cmd rune) error {
	d, _ := ip.pop().AsInt()
	return ip.teleportTo(cmd, d)
}

func opJoin(ip *Interp, cmd rune) error {
	x, y := ip.pop(), ip.pop()
	ip.push(value.Str(x.String() + y.String()))
	return ip.advance()
}

func opCatchMark(ip *Interp, cmd rune) error {
	mark := [2]int64{ip.x, ip.y}
	ip.catchMark = &mark
	return ip.advance()
}

func opRaise(ip *Interp, cmd rune) error {
	return codeErrorf(cmd, ip.x, ip.y, "raised an &rror")
}

func opAssert(ip *Interp, cmd rune) error {
	if !ip.pop().Truthy() {
		return codeErrorf(cmd, ip.x, ip.y, "a$$ertion failed")
	}
	return ip.advance()
}

func opGetStopwatch(ip *Interp, cmd rune) error {
	ip.push(value.Float(ip.stopwatch.Seconds()))
	return ip.advance()
}

func opSetStopwatch(ip *Interp, cmd rune) error {
	ip.stopwatch.Reset()
	return ip.advance()
}

func opGetDatetime(ip *Interp, cmd rune) error {
	now := ip.clk.Now()
	// pushed in reverse order so that popping yields year, month, day,
	// hour, minute, second.
	fields := []int64{int64(now.Second()), int64(now.Minute()), int64(now.Hour()),
		int64(now.Day()), int64(now.Month()), int64(now.Year())}
	for _, f := range fields {
		ip.push(value.Int(f))
	}
	return ip.advance()
}

func opDrop(ip *Interp, cmd rune) error {
	ip.pop()
	return ip.advance()
}

func opContains(ip *Interp, cmd rune) error {
	x := ip.pop()
	found := false
	for _, v := range ip.stacks.All(ip.stacks.Current()) {
		if value.Equal(v, x) {
			found = true
			break
		}
	}
	ip.push(value.Bool(found))
	return ip.advance()
}

func opLength(ip *Interp, cmd rune) error {
	ip.push(value.Int(int64(ip.stacks.CurLen())))
	return ip.advance()
}

func opQueue(ip *Interp, cmd rune) error {
	x := ip.pop()
	cur := ip.stacks.Current()
	vs := append([]value.Value{x}, ip.stacks.All(cur)...)
	ip.stacks.Replace(cur, vs)
	return ip.advance()
}

func opUnqueue(ip *Interp, cmd rune) error {
	cur := ip.stacks.Current()
	vs := ip.stacks.All(cur)
	if len(vs) == 0 {
		ip.push(value.Int(0))
		return ip.advance()
	}
	head := vs[0]
	ip.stacks.Replace(cur, append([]value.Value(nil), vs[1:]...))
	ip.push(head)
	return ip.advance()
}

func opMemorizeQuick(ip *Interp, cmd rune) error {
	ip.quick = ip.pop()
	return ip.advance()
}

func opLoadQuick(ip *Interp, cmd rune) error {
	ip.push(ip.quick)
	return ip.advance()
}

func opMore(ip *Interp, cmd rune) error {
	x, y := ip.pop(), ip.pop()
	ip.push(value.Bool(value.Less(x, y)))
	return ip.advance()
}

func opLessOrEqual(ip *Interp, cmd rune) error {
	x, y := ip.pop(), ip.pop()
	ip.push(value.Bool(!value.Less(x, y)))
	return ip.advance()
}

func intBinOp(ip *Interp, cmd rune, f func(a, b int64) int64) error {
	x, y := ip.pop(), ip.pop()
	xi, okx := x.AsInt()
	yi, oky := y.AsInt()
	if !okx || !oky {
		return codeErrorf(cmd, ip.x, ip.y, "unsupported operand types")
	}
	ip.push(value.Int(f(yi, xi)))
	return ip.advance()
}

func opBitwiseAnd(ip *Interp, cmd rune) error {
	return intBinOp(ip, cmd, func(a, b int64) int64 { return a & b })
}
func opBitwiseOr(ip *Interp, cmd rune) error {
	return intBinOp(ip, cmd, func(a, b int64) int64 { return a | b })
}
func opBitwiseXor(ip *Interp, cmd rune) error {
	return intBinOp(ip, cmd, func(a, b int64) int64 { return a ^ b })
}
func opBitwiseLeft(ip *Interp, cmd rune) error {
	return intBinOp(ip, cmd, func(a, b int64) int64 { return a << uint(b) })
}
func opBitwiseRight(ip *Interp, cmd rune) error {
	return intBinOp(ip, cmd, func(a, b int64) int64 { return a >> uint(b) })
}

// pushRangeSeq pushes a conceptual mathematical sequence such that the
// first element of the sequence ends up on top of the stack and repeated
// pops walk the sequence in its natural reading order: elements are
// pushed from last to first.
func pushRangeSeq(ip *Interp, seq []int64) {
	for i := len(seq) - 1; i >= 0; i-- {
		ip.push(value.Int(seq[i]))
	}
}

func opRangeDown(ip *Interp, cmd rune) error {
	val, ok := ip.pop().AsInt()
	if !ok || val == 0 {
		return codeErrorf(cmd, ip.x, ip.y, "can only construct range with non-0 integer")
	}
	step := int64(-1)
	if val < 0 {
		step = 1
	}
	var seq []int64
	for v := val; (step < 0 && v > 0) || (step > 0 && v < 0); v += step {
		seq = append(seq, v)
	}
	pushRangeSeq(ip, seq)
	return ip.advance()
}

func opRangeUp(ip *Interp, cmd rune) error {
	val, ok := ip.pop().AsInt()
	if !ok || val == 0 {
		return codeErrorf(cmd, ip.x, ip.y, "can only construct range with non-0 integer")
	}
	step := int64(1)
	if val < 0 {
		step = -1
	}
	var seq []int64
	for v := step; (step > 0 && v <= val) || (step < 0 && v >= val); v += step {
		seq = append(seq, v)
	}
	pushRangeSeq(ip, seq)
	return ip.advance()
}

// opOrderUp implements `G`: pops two values, sorts them, and pushes the
// maximum then the minimum, so popping afterwards reads ascending (the
// minimum comes off the stack first).
func opOrderUp(ip *Interp, cmd rune) error {
	a, b := ip.pop(), ip.pop()
	lo, hi := a, b
	if value.Less(hi, lo) {
		lo, hi = hi, lo
	}
	ip.push(hi)
	ip.push(lo)
	return ip.advance()
}

// opOrderDown implements `g`, the mirror of `G`: pushes the minimum then
// the maximum, so popping afterwards reads descending.
func opOrderDown(ip *Interp, cmd rune) error {
	a, b := ip.pop(), ip.pop()
	lo, hi := a, b
	if value.Less(hi, lo) {
		lo, hi = hi, lo
	}
	ip.push(lo)
	ip.push(hi)
	return ip.advance()
}

func opShuffle(ip *Interp, cmd rune) error {
	cur := ip.stacks.Current()
	vs := append([]value.Value(nil), ip.stacks.All(cur)...)
	ip.rng.Shuffle(len(vs), func(i, j int) { vs[i], vs[j] = vs[j], vs[i] })
	ip.stacks.Replace(cur, vs)
	return ip.advance()
}

func opSign(ip *Interp, cmd rune) error {
	x := ip.pop()
	f, _ := x.AsFloat()
	switch {
	case f > 0:
		ip.push(value.Int(1))
	case f < 0:
		ip.push(value.Int(-1))
	default:
		ip.push(value.Int(0))
	}
	return ip.advance()
}

func opMultiplyStack(ip *Interp, cmd rune) error {
	x, ok := ip.pop().AsInt()
	cur := ip.stacks.Current()
	base := ip.stacks.All(cur)
	if !ok || x <= 0 {
		ip.stacks.Replace(cur, nil)
		return ip.advance()
	}
	out := make([]value.Value, 0, len(base)*int(x))
	for i := int64(0); i < x; i++ {
		out = append(out, base...)
	}
	ip.stacks.Replace(cur, out)
	return ip.advance()
}

func opAbs(ip *Interp, cmd rune) error {
	x := ip.pop()
	switch {
	case x.IsFloat():
		f := x.RawFloat()
		if f < 0 {
			f = -f
		}
		ip.push(value.Float(f))
	default:
		n, _ := x.AsInt()
		if n < 0 {
			n = -n
		}
		ip.push(value.Int(n))
	}
	return ip.advance()
}

func opExplodeString(ip *Interp, cmd rune) error {
	x := ip.pop()
	runes := []rune(x.String())
	cur := ip.stacks.Current()
	vs := ip.stacks.All(cur)
	for i := len(runes) - 1; i >= 0; i-- {
		vs = append(vs, value.Str(string(runes[i])))
	}
	ip.stacks.Replace(cur, vs)
	return ip.advance()
}

func opImplodeString(ip *Interp, cmd rune) error {
	cur := ip.stacks.Current()
	vs := ip.stacks.All(cur)
	var sb []rune
	for i := len(vs) - 1; i >= 0; i-- {
		sb = append(sb, []rune(vs[i].String())...)
	}
	ip.stacks.Replace(cur, []value.Value{value.Str(string(sb))})
	return ip.advance()
}

func pushReversed(ip *Interp, parts []string) {
	for i := len(parts) - 1; i >= 0; i-- {
		ip.push(value.Str(parts[i]))
	}
}
