package grid

import "math/rand"

// Noise produces uniform random samples in [-1,1), the perturbation source
// used to seed pattern formation in the case initial conditions. A fixed
// seed keeps runs reproducible; sweeps reseed per run.
type Noise struct {
	rng *rand.Rand
}

func NewNoise(seed int64) *Noise {
	return &Noise{rng: rand.New(rand.NewSource(seed))}
}

func (n *Noise) Sample() float64 {
	return 2*n.rng.Float64() - 1
}
