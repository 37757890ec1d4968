package interp

import "github.com/esolangs/hilbert/internal/value"

var escapeMap = map[rune]rune{'n': '\n', 't': '\t'}

// stepString implements the string-literal and string-escape modes
// (§4.5): characters accumulate into a buffer until a closing `"`, with
// `\n`/`\t` escapes recognized inside a `\`-led escape.
func (ip *Interp) stepString(cmd rune) error {
	switch {
	case cmd == '"' && ip.mode == ModeString:
		ip.push(value.Str(string(ip.buf)))
		ip.buf = nil
		ip.mode = ModeCommand
	case cmd == '\\' && ip.mode == ModeString:
		ip.mode = ModeStringEscape
	case ip.mode == ModeStringEscape:
		if r, ok := escapeMap[cmd]; ok {
			ip.buf = append(ip.buf, r)
		} else {
			ip.buf = append(ip.buf, cmd)
		}
		ip.mode = ModeString
	default:
		ip.buf = append(ip.buf, cmd)
		ip.mode = ModeString
	}
	return ip.advance()
}

// stepChar implements the char-literal and char-escape modes (§4.5): the
// very next character becomes a one-rune Str push, honoring the same
// `\n`/`\t` escapes as string mode.
func (ip *Interp) stepChar(cmd rune) error {
	switch {
	case cmd == '\\' && ip.mode == ModeChar:
		ip.mode = ModeCharEscape
		return ip.advance()
	case ip.mode == ModeCharEscape:
		if r, ok := escapeMap[cmd]; ok {
			ip.push(value.Str(string(r)))
		} else {
			ip.push(value.Str(string(cmd)))
		}
	default:
		ip.push(value.Str(string(cmd)))
	}
	ip.mode = ModeCommand
	return ip.advance()
}

// stepEscape implements plain escape mode (§4.5): the next cell is
// skipped without being interpreted, entered by `\` and, conditionally,
// by `` ` ``.
func (ip *Interp) stepEscape(cmd rune) error {
	_ = cmd
	ip.mode = ModeCommand
	return ip.advance()
}
