// Package swarm implements discrete Particle Swarm Optimization for
// low-conflict 4-colorings of a graph.Instance.
//
// A run is a small state machine:
//
//	INIT → (ITERATE)* → DONE
//
// INIT spawns one goroutine per particle. Each draws a uniform random
// position, starts with velocity 1.0 and no previous position, and takes its
// position as personal best. After the join barrier the engine scans all
// personal bests for the first global best.
//
// ITERATE (generation t = 1, 2, …) runs while the global best fitness is
// non-zero and t ≤ MaxIterations. Every particle is moved by its own
// goroutine, which receives the particle BY VALUE together with an immutable
// snapshot of the global best and returns the updated particle as a message.
// The engine owns the particle table exclusively and applies the messages
// only after the barrier, then rescans personal bests; the global best is
// replaced only when strictly better, ties going to the lowest particle id.
//
// Movement rule for one particle with inertia w, attractions c1, c2:
//
//	velocity   = w·velocity                       (first move)
//	           = 1 − hamming(pos, prev)/n          (afterwards)
//	v_inertia  = w·velocity
//	v_personal = c1·r1·(1 − hamming(pos, pbest)/n)
//	v_global   = c2·r2·(1 − hamming(pos, gbest)/n) r1, r2 ~ U(0,1)
//	v_total    = v_inertia + v_personal + v_global
//
// With v_total == 0 the particle restarts at a fresh random position.
// Otherwise every vertex independently takes a random label with
// probability v_inertia/v_total, its personal-best label with probability
// v_personal/v_total, and the global-best label otherwise.
//
// DONE is reached when a proper coloring (fitness 0) is found or the
// generation budget is spent; the best coloring is returned either way.
//
// Determinism: each particle owns a math/rand stream seeded with
// coloring.DeriveSeed(Seed, id), so a run is reproducible for a fixed Seed
// regardless of goroutine scheduling.
//
// Cancellation: the context is checked only between generations; a
// generation that has started always runs to its barrier.
package swarm
