// Package arraygen produces the random sequences the visualizer searches.
package arraygen

import (
	"math/rand/v2"

	"binsearchviz/internal/domain"
)

// Generator draws fixed-size sequences of values in [1, maxValue)
type Generator struct {
	rng      *rand.Rand
	size     int
	maxValue int
}

// New creates a generator. A zero seed selects a random one.
func New(size, maxValue int, seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	if size < 0 {
		size = 0
	}
	if maxValue < 2 {
		maxValue = 2
	}
	return &Generator{
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		size:     size,
		maxValue: maxValue,
	}
}

// Size returns the length of every generated sequence
func (g *Generator) Size() int {
	return g.size
}

// Generate returns a new unsorted sequence
func (g *Generator) Generate() domain.Sequence {
	seq := make(domain.Sequence, g.size)
	for i := range seq {
		seq[i] = 1 + g.rng.IntN(g.maxValue-1)
	}
	return seq
}
