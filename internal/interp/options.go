package interp

import (
	"bufio"
	"io"

	"github.com/esolangs/hilbert/internal/clock"
	"github.com/esolangs/hilbert/internal/flushio"
	"github.com/esolangs/hilbert/internal/prng"
	"github.com/esolangs/hilbert/internal/regexop"
	"github.com/esolangs/hilbert/internal/term"
)

// Option configures an Interp at construction, following the same
// functional-options shape as the teacher's VMOption.
type Option interface{ apply(ip *Interp) }

type optionFunc func(ip *Interp)

func (f optionFunc) apply(ip *Interp) { f(ip) }

// WithOutput sets the program's standard output stream.
func WithOutput(w io.Writer) Option {
	return optionFunc(func(ip *Interp) { ip.out = flushio.NewWriteFlusher(w) })
}

// WithInput sets the stream `r` reads lines from.
func WithInput(r io.Reader) Option {
	return optionFunc(func(ip *Interp) { ip.in = bufio.NewReader(r) })
}

// WithGetch sets the raw single-character adapter `,` reads from.
func WithGetch(g term.Getch) Option {
	return optionFunc(func(ip *Interp) { ip.getch = g })
}

// WithRNG sets the external random source backing `R`, `?`, and `Y`.
func WithRNG(src prng.Source) Option {
	return optionFunc(func(ip *Interp) { ip.rng = src })
}

// WithClock sets the external clock backing `t`/`T`/`™`.
func WithClock(src clock.Source) Option {
	return optionFunc(func(ip *Interp) { ip.clk = src })
}

// WithRegexEngine sets the engine backing the regex-branch opcodes.
func WithRegexEngine(re regexop.Engine) Option {
	return optionFunc(func(ip *Interp) { ip.re = re })
}

// WithAllErrorsFatal disables catch-mark rewinding (§4.7): every
// CodeException becomes an uncaught, program-terminating error.
func WithAllErrorsFatal(fatal bool) Option {
	return optionFunc(func(ip *Interp) { ip.allErrFtl = fatal })
}

// WithLogf sets a leveled logging sink; level follows the CLI's -v
// verbosity scale (§6, AMBIENT STACK Logging).
func WithLogf(logf func(level int, format string, args ...interface{})) Option {
	return optionFunc(func(ip *Interp) { ip.logf = logf })
}

// Options composes multiple Option values into one, mirroring the
// teacher's VMOptions combinator.
func Options(opts ...Option) Option {
	return optionFunc(func(ip *Interp) {
		for _, o := range opts {
			if o != nil {
				o.apply(ip)
			}
		}
	})
}
