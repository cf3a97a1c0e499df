// Package randutil centralises how rand/v2 sources are seeded so every
// call site gets reproducible sequences from a single int64 seed.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. The two
// 64-bit PCG seeds are derived by mixing so nearby seeds still give
// unrelated streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// FromClock seeds from the clock's current time. Handy at process start
// while keeping tests deterministic with a mock clock.
func FromClock(clock quartz.Clock) *rand.Rand {
	return New(clock.Now().UnixNano())
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
