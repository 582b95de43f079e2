package rnd

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source is the randomness provider threaded through every sampler.
type Source = *rand.Rand

func New(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// ForFixture derives the source of fixture idx from the run seed. Fixtures
// drawn from derived sources do not depend on generation order.
func ForFixture(seed uint64, idx int) Source {
	return New(mix(seed + uint64(idx)*0x9e3779b97f4a7c15))
}

// TimeSeed is used when neither the config nor the command line pins a seed.
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// IntRange returns a uniform value in the half-open range [lo, hi). lo < hi.
func IntRange(r Source, lo, hi int64) int64 {
	return lo + int64(r.Uint64n(uint64(hi-lo)))
}

// IntClosed returns a uniform value in the closed range [lo, hi]. lo <= hi.
func IntClosed(r Source, lo, hi int64) int64 {
	span := uint64(hi-lo) + 1
	if span == 0 {
		// full 64 bit domain
		return int64(r.Uint64())
	}
	return lo + int64(r.Uint64n(span))
}

// splitmix64 finalizer
func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
