// Package swarm - particle state and the discrete movement rule.
//
// Ownership:
//   - A Particle travels by value between the engine and exactly one worker.
//   - move never writes into slices it received; it allocates the new
//     position and clones the personal best, so the engine's table and the
//     worker never alias mutable memory.
//   - The RNG pointer moves with the particle; only its current holder draws.
package swarm

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/graph"
)

// Particle is one candidate solution of the swarm.
type Particle struct {
	// ID is the particle index in the engine table.
	ID int

	// Position is the current coloring.
	Position coloring.Coloring

	// Previous is the position before the last move; nil until the first move.
	Previous coloring.Coloring

	// Velocity is the scalar velocity computed by the last move.
	Velocity float64

	// Best is the lowest-fitness position this particle has visited.
	Best coloring.Coloring

	// BestFitness is the fitness of Best; non-increasing across moves.
	BestFitness int

	rng *rand.Rand
}

// newParticle draws a fresh particle on g: uniform random position, velocity
// 1.0, no previous position, personal best = position.
func newParticle(g *graph.Instance, id int, seed int64) (Particle, error) {
	var (
		rng = rand.New(rand.NewSource(coloring.DeriveSeed(seed, uint64(id))))
		pos = coloring.Random(g.Order(), rng)
	)
	f, err := coloring.Fitness(g, pos)
	if err != nil {
		return Particle{}, fmt.Errorf("particle %d: %w", id, err)
	}

	return Particle{
		ID:          id,
		Position:    pos,
		Velocity:    initialVelocity,
		Best:        pos.Clone(),
		BestFitness: f,
		rng:         rng,
	}, nil
}

// Moved reports whether the particle has made at least one move.
func (p Particle) Moved() bool { return p.Previous != nil }

// clone returns a deep copy sharing only the RNG pointer. The engine hands
// clones to callers so that inspection never aliases live state.
func (p Particle) clone() Particle {
	p.Position = p.Position.Clone()
	p.Previous = p.Previous.Clone()
	p.Best = p.Best.Clone()

	return p
}

// drives are the three competing movement terms of one move.
type drives struct {
	inertia  float64
	personal float64
	global   float64
}

func (d drives) total() float64 { return d.inertia + d.personal + d.global }

// params carries the tunables a worker needs.
type params struct {
	w, c1, c2 float64
}

// move applies one generation step to p against the global-best snapshot
// gbest and returns the updated particle and whether it restarted.
//
// Errors: those of coloring.Fitness, which would signal a broken label or
// length invariant in the new position.
func (p Particle) move(g *graph.Instance, gbest coloring.Coloring, prm params) (Particle, bool, error) {
	var velocity float64
	if p.Moved() {
		velocity = coloring.Similarity(p.Position, p.Previous)
	} else {
		velocity = prm.w * p.Velocity
	}

	d := drives{
		inertia:  prm.w * velocity,
		personal: prm.c1 * p.rng.Float64() * coloring.Similarity(p.Position, p.Best),
		global:   prm.c2 * p.rng.Float64() * coloring.Similarity(p.Position, gbest),
	}

	var (
		next      = make(coloring.Coloring, len(p.Position))
		total     = d.total()
		restarted = total == 0
	)
	if restarted {
		coloring.Randomize(next, p.rng)
	} else {
		var u float64
		for i := range next {
			u = p.rng.Float64() * total
			switch {
			case u < d.inertia:
				next[i] = p.rng.Intn(coloring.NumColors)
			case u < d.inertia+d.personal:
				next[i] = p.Best[i]
			default:
				next[i] = gbest[i]
			}
		}
	}

	f, err := coloring.Fitness(g, next)
	if err != nil {
		return p, restarted, fmt.Errorf("particle %d: %w", p.ID, err)
	}

	p.Previous = p.Position
	p.Position = next
	p.Velocity = velocity
	if f < p.BestFitness {
		p.Best = next.Clone()
		p.BestFitness = f
	}

	return p, restarted, nil
}
