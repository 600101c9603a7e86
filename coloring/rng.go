// Package coloring - RNG utilities shared by the randomized solvers.
//
// Goals:
//   - Determinism: same seed ⇒ identical colorings across platforms.
//   - Independence: DeriveSeed gives each worker its own well-mixed stream,
//     so no two particles of a run share a seed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share one across workers.
package coloring

import "math/rand"

// DefaultSeed is used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand. seed==0 ⇒ DefaultSeed.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer; neighbouring stream ids yield unrelated seeds.
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Random draws n independent uniform labels from rng.
func Random(n int, rng *rand.Rand) Coloring {
	c := make(Coloring, n)
	Randomize(c, rng)

	return c
}

// Randomize overwrites every entry of c with a uniform label from rng.
func Randomize(c Coloring, rng *rand.Rand) {
	for i := range c {
		c[i] = rng.Intn(NumColors)
	}
}
