package syclop

import "math/rand/v2"

// RNG is the random source used by the planner for lead selection, random
// DFS ordering, availability sampling, and the abandon-lead-early decision.
// A zero-valued RNG is not usable; construct one with [NewRNG].
type RNG struct {
	r *rand.Rand
}

// NewRNG returns a deterministic RNG seeded from seed. Two RNGs created
// with the same seed produce identical sequences, which combined with a
// deterministic [Extender] makes a [Planner] run reproducible.
func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform01 returns a pseudo-random float in [0, 1).
func (g *RNG) Uniform01() float64 {
	return g.r.Float64()
}

// UniformInt returns a pseudo-random integer in [low, high], inclusive on
// both ends, matching ompl::RNG::uniformInt's contract.
func (g *RNG) UniformInt(low, high int) int {
	if high <= low {
		return low
	}
	return low + g.r.IntN(high-low+1)
}
