// Package swarm - engine and convergence loop.
//
// Concurrency:
//   - Every phase (INIT, each generation) is a synchronous fork-join:
//     exactly one goroutine per particle, joined by errgroup.Wait before
//     any global-best recomputation.
//   - Workers report through a channel buffered to the population size, so
//     no worker blocks on send and none outlives its phase.
//   - The engine goroutine is the only writer of the particle table and the
//     global best.
package swarm

import (
	"context"
	"time"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/graph"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine runs the swarm on one instance. An Engine is not safe for
// concurrent use; each Run starts from a fresh INIT.
type Engine struct {
	g    *graph.Instance
	opts Options

	particles []Particle
	best      coloring.Coloring
	bestFit   int
}

// update is the message a worker sends back at the end of its phase.
type update struct {
	p         Particle
	restarted bool
}

// New returns an Engine for g configured by opts.
func New(g *graph.Instance, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilInstance
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Engine{g: g, opts: o}, nil
}

// Solve is a shorthand for New followed by Run.
func Solve(ctx context.Context, g *graph.Instance, opts ...Option) (Result, error) {
	e, err := New(g, opts...)
	if err != nil {
		return Result{}, err
	}

	return e.Run(ctx)
}

// Options returns the effective configuration.
func (e *Engine) Options() Options { return e.opts }

// Particles returns deep copies of the particle table as of the last
// barrier, indexed by particle id.
func (e *Engine) Particles() []Particle {
	out := make([]Particle, len(e.particles))
	for i := range e.particles {
		out[i] = e.particles[i].clone()
	}

	return out
}

// Run executes INIT, then ITERATE until a proper coloring is found or
// MaxIterations generations have run, and returns the global best.
//
// ctx is polled between generations only. When it is done Run returns the
// best found so far together with ctx.Err().
func (e *Engine) Run(ctx context.Context) (Result, error) {
	var (
		start = time.Now()
		log   = e.opts.Logger
	)
	log.Debug("swarm init",
		zap.Int("order", e.g.Order()),
		zap.Int("particles", e.opts.Particles),
		zap.Int("max_iterations", e.opts.MaxIterations),
		zap.Float64("w", e.opts.Inertia),
		zap.Float64("c1", e.opts.Cognitive),
		zap.Float64("c2", e.opts.Social),
		zap.Int64("seed", e.opts.Seed))

	if err := e.initialize(); err != nil {
		return Result{}, err
	}
	history := []int{e.bestFit}

	var (
		prm = params{w: e.opts.Inertia, c1: e.opts.Cognitive, c2: e.opts.Social}
		gen int
	)
	for gen = 1; e.bestFit != 0 && gen <= e.opts.MaxIterations; gen++ {
		if err := ctx.Err(); err != nil {
			log.Debug("swarm cancelled", zap.Int("generation", gen), zap.Error(err))
			return e.result(gen-1, history, start), err
		}

		genStart := time.Now()
		snapshot := e.best.Clone()
		restarts, err := e.fork(func(p Particle) (Particle, bool, error) {
			return p.move(e.g, snapshot, prm)
		})
		if err != nil {
			return e.result(gen-1, history, start), err
		}
		improved := e.scan()
		history = append(history, e.bestFit)

		stats := Generation{
			Index:       gen,
			BestFitness: e.bestFit,
			Improved:    improved,
			Restarts:    restarts,
			Elapsed:     time.Since(genStart),
		}
		if e.opts.Observer != nil {
			e.opts.Observer(stats)
		}
		log.Debug("swarm generation",
			zap.Int("generation", gen),
			zap.Int("best_fitness", e.bestFit),
			zap.Bool("improved", improved),
			zap.Int("restarts", restarts))
	}

	res := e.result(gen-1, history, start)
	log.Info("swarm finished",
		zap.Int("generations", res.Generations),
		zap.Int("fitness", res.Fitness),
		zap.Float64("success_rate", res.SuccessRate),
		zap.Bool("solved", res.Solved()),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

// initialize runs the INIT phase and computes the first global best. With an
// empty population the all-zero coloring stands in as the initial best.
func (e *Engine) initialize() error {
	var (
		n    = e.opts.Particles
		seed = e.opts.Seed
	)
	if n < 0 {
		n = 0
	}
	if seed == 0 {
		seed = coloring.DefaultSeed
	}

	e.particles = make([]Particle, n)
	e.best = nil
	e.bestFit = 0

	var (
		results = make(chan update, n)
		eg      errgroup.Group
	)
	for id := 0; id < n; id++ {
		eg.Go(func() error {
			p, err := newParticle(e.g, id, seed)
			if err != nil {
				return err
			}
			results <- update{p: p}

			return nil
		})
	}
	err := eg.Wait()
	close(results)
	if err != nil {
		return err
	}
	for u := range results {
		e.particles[u.p.ID] = u.p
	}

	if !e.scan() {
		e.best = coloring.Zero(e.g.Order())
		e.bestFit = coloring.MustFitness(e.g, e.best)
	}

	return nil
}

// fork runs work once per particle, each in its own goroutine, waits for all
// of them and then commits the returned particles to the table.
func (e *Engine) fork(work func(Particle) (Particle, bool, error)) (int, error) {
	var (
		results = make(chan update, len(e.particles))
		eg      errgroup.Group
	)
	for _, p := range e.particles {
		eg.Go(func() error {
			np, restarted, err := work(p)
			if err != nil {
				return err
			}
			results <- update{p: np, restarted: restarted}

			return nil
		})
	}
	err := eg.Wait()
	close(results)
	if err != nil {
		return 0, err
	}

	restarts := 0
	for u := range results {
		e.particles[u.p.ID] = u.p
		if u.restarted {
			restarts++
		}
	}

	return restarts, nil
}

// scan finds the minimum personal best (lowest id on ties) and adopts it as
// global best if none is set yet or it is strictly better. It reports
// whether the global best changed.
func (e *Engine) scan() bool {
	if len(e.particles) == 0 {
		return false
	}

	bi := 0
	for i := 1; i < len(e.particles); i++ {
		if e.particles[i].BestFitness < e.particles[bi].BestFitness {
			bi = i
		}
	}
	if e.best != nil && e.particles[bi].BestFitness >= e.bestFit {
		return false
	}
	e.best = e.particles[bi].Best.Clone()
	e.bestFit = e.particles[bi].BestFitness

	return true
}

func (e *Engine) result(generations int, history []int, start time.Time) Result {
	return Result{
		Best:        e.best.Clone(),
		Fitness:     e.bestFit,
		SuccessRate: coloring.RateOf(e.g, e.bestFit),
		Generations: generations,
		History:     history,
		Elapsed:     time.Since(start),
	}
}
