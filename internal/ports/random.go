package ports

import "math/rand/v2"

// Random picks indexes for the greedy fill. IntN returns a value in [0, n).
type Random interface {
	IntN(n int) int
}

// NewSeededRandom returns a PCG-backed source. A zero seed draws a fresh one.
func NewSeededRandom(seed uint64) Random {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
