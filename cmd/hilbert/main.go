// Command hilbert runs programs written in the Hilbert-curve esolang: a
// two-dimensional language whose source is traversed along a Hilbert
// space-filling curve rather than read line by line.
//
// Invoked with no file arguments, it prints the opcode table instead of
// running anything. Each file argument is loaded and run in turn, sharing
// stack and register state with the files that ran before it but getting
// its own grid and cursor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/esolangs/hilbert/internal/clock"
	"github.com/esolangs/hilbert/internal/flushio"
	"github.com/esolangs/hilbert/internal/grid"
	"github.com/esolangs/hilbert/internal/interp"
	"github.com/esolangs/hilbert/internal/logio"
	"github.com/esolangs/hilbert/internal/panicerr"
	"github.com/esolangs/hilbert/internal/prng"
	"github.com/esolangs/hilbert/internal/regexop"
	"github.com/esolangs/hilbert/internal/srcenc"
	"github.com/esolangs/hilbert/internal/term"
)

func main() {
	var (
		linear         bool
		allErrorsFatal bool
		eagerFlush     bool
		verbosity      int
		seed           int64
		columns        int
		windows1252    bool
		iso88597       bool
	)
	flag.BoolVar(&linear, "l", false, "load source in linear mode instead of rectangular")
	flag.BoolVar(&allErrorsFatal, "e", false, "make every code error fatal, disabling catch-mark recovery")
	flag.BoolVar(&eagerFlush, "F", false, "flush output after every write instead of buffering it")
	flag.BoolVar(&windows1252, "w", false, "decode source as windows-1252 instead of utf-8")
	flag.BoolVar(&iso88597, "g", false, "decode source as iso-8859-7 instead of utf-8")
	flag.Int64Var(&seed, "seed", 1, "seed the pseudo-random source")
	flag.IntVar(&columns, "columns", 3, "column count for the opcode table listing")
	flag.BoolFunc("v", "increase log verbosity (repeatable)", func(string) error {
		verbosity++
		return nil
	})
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	files := flag.Args()
	if len(files) == 0 {
		if err := interp.WriteOpTable(os.Stdout, columns); err != nil {
			log.Errorf("%v", err)
		}
		return
	}

	encoding := srcenc.UTF8
	switch {
	case windows1252:
		encoding = srcenc.Windows1252
	case iso88597:
		encoding = srcenc.ISO88597
	}

	var out flushio.WriteFlusher
	if eagerFlush {
		out = unbufferedFlusher{os.Stdout}
	} else {
		out = flushio.NewWriteFlusher(os.Stdout)
	}

	opts := []interp.Option{
		interp.WithOutput(out),
		interp.WithInput(os.Stdin),
		interp.WithGetch(term.New(os.Stdin)),
		interp.WithRNG(prng.New(seed)),
		interp.WithClock(clock.Stopwatch{}),
		interp.WithRegexEngine(regexop.NewRE2()),
		interp.WithAllErrorsFatal(allErrorsFatal),
		interp.WithLogf(levelf(&log, verbosity)),
	}

	loadGrid := func(name string) (*grid.Grid, error) {
		raw, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		text, err := srcenc.Decode(encoding, raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		if linear {
			return grid.FromStream([]rune(text)), nil
		}
		return grid.FromLines(grid.SplitLines(text)), nil
	}

	// One Interp runs every file in sequence: the grid and cursor are
	// rebuilt per file via LoadGrid, but the stack family, quick
	// register, and stopwatch persist across the whole run.
	var ip *interp.Interp
	for _, name := range files {
		g, err := loadGrid(name)
		if err != nil {
			log.Errorf("%s: %v", name, err)
			return
		}
		if verbosity > 0 {
			log.Printf("LOAD", "%s: %dx%d grid", name, g.Side(), g.Side())
		}

		if ip == nil {
			ip = interp.New(g, opts...)
		} else {
			ip.LoadGrid(g)
		}
		if err := panicerr.Recover(name, ip.Run); err != nil {
			log.Errorf("%s: %v", name, err)
			return
		}
	}
}

// levelf adapts the CLI's -v count to the interpreter's numeric log
// levels: 1 logs file loads, 2 adds catch-mark rewinds, 3 adds a line
// per non-blank cell executed. Halts, teleports and mirrors are not
// logged at any level.
func levelf(log *logio.Logger, verbosity int) func(level int, format string, args ...interface{}) {
	logf := log.Leveledf("TRACE")
	return func(level int, format string, args ...interface{}) {
		if level <= verbosity {
			logf(format, args...)
		}
	}
}

type unbufferedFlusher struct{ *os.File }

func (unbufferedFlusher) Flush() error { return nil }
