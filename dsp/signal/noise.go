package signal

import (
	"math"
	"math/rand"
)

// Noise is a seeded real-time noise source. It allocates only at
// construction and is safe to call once per sample from a render loop.
type Noise struct {
	rng       *rand.Rand
	seed      int64
	spare     float64
	haveSpare bool
}

// NewNoise returns a noise source with a deterministic seed.
func NewNoise(seed int64) *Noise {
	return &Noise{
		rng:  rand.New(rand.NewSource(seed)), //nolint:gosec // reproducible audio noise
		seed: seed,
	}
}

// Reseed restarts the sequence from seed.
func (n *Noise) Reseed(seed int64) {
	n.seed = seed
	n.rng.Seed(seed)
	n.haveSpare = false
}

// Seed returns the current seed.
func (n *Noise) Seed() int64 { return n.seed }

// White returns a uniform sample in [-1, 1).
func (n *Noise) White() float64 {
	return n.rng.Float64()*2 - 1
}

// Unipolar returns a uniform sample in [0, 1).
func (n *Noise) Unipolar() float64 {
	return n.rng.Float64()
}

// Gaussian returns a normally distributed sample with unit variance using
// the polar Box-Muller method.
func (n *Noise) Gaussian() float64 {
	if n.haveSpare {
		n.haveSpare = false
		return n.spare
	}

	for {
		u := n.White()
		v := n.White()
		s := u*u + v*v
		if s > 0 && s < 1 {
			m := math.Sqrt(-2 * math.Log(s) / s)
			n.spare = v * m
			n.haveSpare = true

			return u * m
		}
	}
}
