// Package reference provides the baseline colorers that validate and bound
// the swarm solver: an exhaustive BruteForce oracle and a randomized Greedy
// heuristic.
//
// Algorithms:
//
//   - BruteForce - enumerates {0,1,2,3}^n in lexicographic order, starting
//     from the all-zero coloring as best-so-far, and stops at the first
//     coloring with fitness 0. Run to completion it returns the global
//     optimum over the 4-label alphabet.
//   - Complexity: O(4ⁿ·(n+m)) time, O(n) memory.
//   - Guarded by MaxBruteForceOrder (ErrOrderTooLarge) unless
//     WithoutOrderLimit is given.
//
//   - Greedy - visits vertices in a random order and gives each the first
//     label in 0..3 unused by its already-colored neighbors, or a uniform
//     random label when all four are taken.
//   - Complexity: O(n + m) time, O(n) memory.
//
// Both return a Result carrying the coloring, its fitness and success rate,
// the number of candidate colorings evaluated and the wall-clock time.
//
// Example:
//
//	res, err := reference.Greedy(g, reference.WithSeed(7))
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Coloring, res.Fitness)
package reference
