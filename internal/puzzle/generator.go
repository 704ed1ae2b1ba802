package puzzle

import "math/rand"

// Generator produces pebble colors for new pieces from an injected random
// source, so a seed fully determines the color sequence.
type Generator struct {
	rng        *rand.Rand
	glowChance float64
}

// NewGenerator creates a generator. glowChance is the probability that a
// single pebble comes out as glow; it is clamped to [0, 1].
func NewGenerator(rng *rand.Rand, glowChance float64) *Generator {
	if glowChance < 0 {
		glowChance = 0
	}
	if glowChance > 1 {
		glowChance = 1
	}
	return &Generator{rng: rng, glowChance: glowChance}
}

// Next returns a single pebble color.
func (g *Generator) Next() Color {
	if g.glowChance > 0 && g.rng.Float64() < g.glowChance {
		return ColorGlow
	}
	return Color(g.rng.Intn(ConcreteColorCount))
}

// NextPair returns the colors for a new piece, pivot first.
func (g *Generator) NextPair() (pivot, side Color) {
	return g.Next(), g.Next()
}
