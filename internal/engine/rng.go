package engine

import "math/rand"

// RNG is the engine's only source of randomness: dice rolls, event draws and
// black-market draws. Injected so tests can script exact outcomes.
type RNG interface {
	// Roll returns a uniform die roll in [1,6].
	Roll() int
	// Pick returns a uniform index in [0,n).
	Pick(n int) int
}

type stdRNG struct{}

func (stdRNG) Roll() int      { return rand.Intn(6) + 1 }
func (stdRNG) Pick(n int) int { return rand.Intn(n) }

// DefaultRNG draws from the process-wide math/rand source.
var DefaultRNG RNG = stdRNG{}
