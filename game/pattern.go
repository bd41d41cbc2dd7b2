package game

import "math/rand/v2"

// Generator produces random color sequences from a session-seeded source
type Generator struct {
	rng  *rand.Rand
	seed uint64
}

// NewGenerator seeds a PCG source. The second word is derived from the
// first so equal seeds always replay the same sequences.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// SeedFrom mixes the ambient analog channels with the clock, the way the
// board avoids replaying the same game after every power cycle.
func SeedFrom(sampler Sampler, clock Clock) uint64 {
	a1 := uint64(sampler.Analog(ChannelAmbient1))
	a2 := uint64(sampler.Analog(ChannelAmbient2))
	now := uint64(clock.NowMS())
	return (a1 + a2 + now) | now<<32
}

// Seed returns the seed the generator was built with
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Generate returns n independent uniform picks, n clamped to [1, MaxPatternLength]
func (g *Generator) Generate(n int) []Color {
	if n < 1 {
		n = 1
	}
	if n > MaxPatternLength {
		n = MaxPatternLength
	}
	out := make([]Color, n)
	for i := range out {
		out[i] = Color(g.rng.IntN(NumColors))
	}
	return out
}
