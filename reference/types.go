package reference

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvcolor/coloring"
	"go.uber.org/zap"
)

// MaxBruteForceOrder is the largest order BruteForce accepts by default
// (4¹³ ≈ 6.7·10⁷ candidates).
const MaxBruteForceOrder = 13

// ctxCheckEvery is the number of brute-force candidates between context polls.
const ctxCheckEvery = 4096

// Sentinel errors returned by the reference solvers.
var (
	// ErrNilInstance indicates that a nil *graph.Instance was supplied.
	ErrNilInstance = errors.New("reference: instance is nil")

	// ErrOrderTooLarge indicates that BruteForce was asked to enumerate an
	// instance larger than MaxBruteForceOrder without WithoutOrderLimit.
	ErrOrderTooLarge = errors.New("reference: instance too large for brute force")
)

// Result holds the outcome of a reference solver.
type Result struct {
	// Coloring is the best coloring found; len(Coloring) == n.
	Coloring coloring.Coloring

	// Fitness is the doubled conflict count of Coloring (0 = proper).
	Fitness int

	// SuccessRate is 1 − Fitness/ArcCount; 1 on a graph without edges.
	SuccessRate float64

	// Evaluated is the number of candidate colorings scored.
	Evaluated int64

	// Elapsed is the wall-clock duration of the solve.
	Elapsed time.Duration
}

// Options configures the reference solvers.
type Options struct {
	Seed    int64           // Greedy RNG seed (0 ⇒ coloring.DefaultSeed)
	Rand    *rand.Rand      // explicit Greedy RNG; overrides Seed
	NoLimit bool            // disable the MaxBruteForceOrder guard
	Context context.Context // polled by BruteForce every ctxCheckEvery candidates
	Logger  *zap.Logger     // never nil after DefaultOptions
}

// Option represents a functional option for the reference solvers.
type Option func(*Options)

// DefaultOptions returns Options with a fixed seed, the order guard enabled,
// a background context and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Seed:    coloring.DefaultSeed,
		Context: context.Background(),
		Logger:  zap.NewNop(),
	}
}

// WithSeed sets the Greedy RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies the Greedy RNG directly. The solver does not retain it
// after returning, but it must not be used concurrently during the call.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithoutOrderLimit lets BruteForce enumerate instances of any order.
func WithoutOrderLimit() Option {
	return func(o *Options) { o.NoLimit = true }
}

// WithContext makes BruteForce stop early when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Context = ctx
		}
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return coloring.NewRNG(o.Seed)
}
