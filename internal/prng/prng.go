// Package prng implements the external random-number adapter (§6a): a
// uniform float generator, a four-way direction choice, and a Fisher-Yates
// shuffle, all seeded from a single source so runs are reproducible when
// seeded explicitly.
package prng

import "math/rand"

// Source is the external random adapter an Interp depends on. It is
// implemented by *Rand and can be replaced for deterministic testing.
type Source interface {
	Float64() float64
	Choice4() int
	Shuffle(n int, swap func(i, j int))
}

// Rand is the default Source, backed by math/rand.
type Rand struct {
	r *rand.Rand
}

// New returns a Rand seeded with seed. Use a fixed seed for reproducible
// test runs.
func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform float in [0, 1).
func (rg *Rand) Float64() float64 { return rg.r.Float64() }

// Choice4 returns a uniform integer in [0, 4), used to pick among the
// four direction opcodes for `?`.
func (rg *Rand) Choice4() int { return rg.r.Intn(4) }

// Shuffle performs an in-place Fisher-Yates shuffle of n elements via
// swap, for the bulk stack-shuffle opcode.
func (rg *Rand) Shuffle(n int, swap func(i, j int)) { rg.r.Shuffle(n, swap) }
