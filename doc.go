// Package lvcolor colors graphs with four labels using a discrete particle
// swarm, with exact and greedy reference solvers for comparison.
//
// A problem is a square 0/1 adjacency matrix; a solution assigns each vertex
// a label in {0,1,2,3}. Quality is measured by the conflict count
//
//	fitness(c) = Σ_i |{ j : A[i][j]=1 ∧ c[i]=c[j] }|
//
// which is 0 exactly for a proper coloring, and by the success rate
// 1 − fitness/ArcCount.
//
// Packages:
//
//	graph/       - immutable adjacency instance
//	coloring/    - colorings, fitness, Hamming similarity, seeded RNG helpers
//	reference/   - BruteForce (lexicographic, exact for small n) and Greedy
//	swarm/       - particles, the movement rule and the generation loop
//	instance/    - CSV problem files, solution store, synthetic generators
//	experiment/  - parameter sweeps with CSV reports
//	cmd/lvcolor  - command-line front end (solve, generate, experiment)
//
// Quick start:
//
//	g, _ := instance.CubicPlanar(20, coloring.NewRNG(7))
//	res, _ := swarm.Solve(ctx, g, swarm.WithParticles(30), swarm.WithMaxIterations(200))
//	fmt.Println(res.Fitness, res.SuccessRate)
//
// Determinism: every stochastic component draws from a *rand.Rand seeded
// explicitly; swarm particles use independent streams derived from
// (seed, particle id), so a fixed seed reproduces a run exactly.
package lvcolor
