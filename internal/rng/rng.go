// Package rng provides the random sources used to shuffle decks.
package rng

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Generator returns uniform integers in [0, n). *poker.Deck accepts any
// Generator as its shuffle source.
type Generator interface {
	Intn(n int) int
}

// Seeded is a reproducible PCG generator.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a generator seeded deterministically from seed. The two
// 64-bit PCG seeds are derived by mixing, so nearby seeds give unrelated
// streams.
func NewSeeded(seed int64) *Seeded {
	u := uint64(seed)
	return &Seeded{r: rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))}
}

// Intn returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Seeded) Intn(n int) int {
	return s.r.IntN(n)
}

// Int64 returns a non-negative pseudo-random int64, used to seed child
// generators.
func (s *Seeded) Int64() int64 {
	return s.r.Int64()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
