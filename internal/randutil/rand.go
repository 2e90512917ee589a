// Package randutil centralises how random sources are constructed so every
// consumer of randomness (deck shuffling, simulation workers, the decision
// policy's bluff draw) can be made reproducible from a single int64 seed.
package randutil

import (
	"crypto/rand"
	"encoding/binary"
	rand2 "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// rand/v2's PCG wants two 64-bit seeds; deriving both through a mixer keeps
// nearby seeds from producing correlated streams.
func New(seed int64) *rand2.Rand {
	u := uint64(seed)
	return rand2.New(rand2.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewNondeterministic returns a *rand.Rand seeded from the OS entropy pool,
// for production use where reproducibility is not wanted.
func NewNondeterministic() *rand2.Rand {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// The OS entropy pool failing is not recoverable mid-run.
		panic("randutil: reading entropy: " + err.Error())
	}
	return New(int64(binary.LittleEndian.Uint64(buf[:])))
}

// splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
