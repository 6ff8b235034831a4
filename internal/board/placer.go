package board

import "math/rand"

// Placer picks spawn cells and rolls spawn probabilities from one seeded
// source, so a session replays identically for the same seed.
type Placer struct {
	rng *rand.Rand
	n   int
}

// NewPlacer creates a placer over n cells.
func NewPlacer(seed int64, n int) *Placer {
	return &Placer{
		rng: rand.New(rand.NewSource(seed)),
		n:   max(n, 1),
	}
}

// Pick returns a uniformly random cell index in [0, n). It does not look at
// occupancy; a colliding pick is rejected by the caller and not retried.
func (p *Placer) Pick() int {
	return p.rng.Intn(p.n)
}

// Float64 returns a uniform value in [0, 1).
func (p *Placer) Float64() float64 {
	return p.rng.Float64()
}

// Int63n returns a uniform value in [0, n).
func (p *Placer) Int63n(n int64) int64 {
	return p.rng.Int63n(n)
}
