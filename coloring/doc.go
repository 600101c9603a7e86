// Package coloring defines the Coloring value type over the fixed 4-label
// alphabet and the pure evaluation functions shared by every solver.
//
// Fitness:
//
//	fitness(A, c) = Σ_i |{ j : A[i][j]=1 ∧ c[i]=c[j] }|
//
// Each monochromatic edge is counted once from each endpoint, so on a
// symmetric instance fitness = 2 × (number of conflicting edges), and
// fitness == 0 iff c is a proper coloring.
//
// SuccessRate normalizes fitness into [0,1]:
//
//	rate = 1 − fitness / ArcCount(A)
//
// where ArcCount equals 2×|E| for a symmetric instance. It is undefined on a
// graph with no edges (ErrNoEdges).
//
// Similarity and Hamming measure how far two colorings are apart; the swarm
// movement rule is expressed in terms of Similarity.
//
// RNG helpers give every solver deterministic, independent streams:
// NewRNG(seed) and DeriveSeed(parent, stream). A *rand.Rand is NOT safe for
// concurrent use; derive one stream per goroutine.
//
// Complexity:
//   - Fitness, SuccessRate, IsProper: O(n + m) using neighbor lists.
//   - Hamming, Similarity: O(n).
package coloring
