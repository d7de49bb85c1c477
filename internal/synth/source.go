package synth

import (
	"hash/fnv"
	"math/rand/v2"
)

// Source is the random state of one generation branch. Every draw in the
// engine goes through a Source so that a fixed seed reproduces a run.
//
// A Source is not safe for concurrent use; parallel branches get their own
// stream through Fork.
type Source struct {
	seed uint64
	rng  *rand.Rand
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) *Source {
	s := uint64(seed)
	return &Source{
		seed: s,
		rng:  rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)),
	}
}

// NewEntropySource returns a Source seeded from the runtime entropy pool.
// The drawn seed is still available through Seed so it can be reported.
func NewEntropySource() *Source {
	return NewSource(int64(rand.Uint64()))
}

// Seed reports the seed this Source was created with.
func (s *Source) Seed() int64 {
	return int64(s.seed)
}

// Fork derives an independent stream from the master seed and a branch tag.
// The result depends only on (seed, tag), never on how much of the parent
// stream has been consumed.
func (s *Source) Fork(tag string) *Source {
	h := fnv.New64a()
	h.Write([]byte(tag))
	sub := s.seed ^ h.Sum64()
	return &Source{
		seed: sub,
		rng:  rand.New(rand.NewPCG(sub, s.seed)),
	}
}

// Rand exposes the underlying generator for collaborators (text providers)
// that must draw from the same stream.
func (s *Source) Rand() *rand.Rand {
	return s.rng
}

// IntN returns a uniform int in [0, n). Panics if n <= 0.
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// IntBetween returns a uniform int in [lo, hi], both inclusive.
func (s *Source) IntBetween(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

// Int64N returns a uniform int64 in [0, n).
func (s *Source) Int64N(n int64) int64 {
	return s.rng.Int64N(n)
}

// Float64 returns a uniform float in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Shuffle randomizes the order of n elements using swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// Sample returns k distinct indices from [0, n) chosen uniformly without
// replacement (partial Fisher-Yates). k is clamped to n.
func (s *Source) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// Pick returns a uniformly chosen element of items. Panics on empty input.
func Pick[T any](s *Source, items []T) T {
	return items[s.rng.IntN(len(items))]
}

// ShuffleSlice randomizes items in place.
func ShuffleSlice[T any](s *Source, items []T) {
	s.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
