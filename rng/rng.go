package rng

import (
	"math/rand"
)

// Source is a seeded pseudo-random stream with the draws awpgen needs:
// uniform integers and floats, choice without replacement, shuffle and
// weighted choice.
type Source struct {
	*rand.Rand
	seed int64
}

// New returns a Source seeded with seed.
func New(seed int64) *Source {
	return &Source{Rand: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed reports the seed the Source was created with.
func (s *Source) Seed() int64 { return s.seed }

// Derive mixes (runSeed, index, attempt) into an independent sub-seed.
// The mix is splitmix64 applied in three rounds, so neighbouring indices
// produce uncorrelated streams.
func Derive(runSeed int64, index, attempt int) int64 {
	x := splitmix64(uint64(runSeed))
	x = splitmix64(x ^ uint64(index))
	x = splitmix64(x ^ uint64(attempt)<<32)

	return int64(x &^ (1 << 63))
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// IntRange returns a uniform integer in [lo, hi]. If hi < lo it returns lo.
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + s.Intn(hi-lo+1)
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}

	return s.Float64() < p
}

// Pick returns a uniformly chosen element of items. It panics on an empty slice.
func Pick[T any](s *Source, items []T) T {
	return items[s.Intn(len(items))]
}

// Sample returns k distinct elements of items in draw order (choice without
// replacement). k is clamped to len(items); items is not modified.
func Sample[T any](s *Source, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return nil
	}
	idx := s.Perm(len(items))[:k]
	out := make([]T, k)
	for i, j := range idx {
		out[i] = items[j]
	}

	return out
}

// Shuffle permutes items in place.
func Shuffle[T any](s *Source, items []T) {
	s.Rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
}

// WeightedIndex picks index i with probability weights[i]/Σweights.
// Non-positive weights are never picked. It returns -1 when no weight is positive.
func WeightedIndex(s *Source, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	r := s.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if r < w {
			return i
		}
		r -= w
	}

	return last
}
