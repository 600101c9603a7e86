package swarm

import (
	"errors"
	"time"

	"github.com/katalvlaran/lvcolor/coloring"
	"go.uber.org/zap"
)

// Defaults for Options. The attraction and inertia values follow the
// classic pswarm mover (cognition 0.5, social 0.5, inertia 0.8).
const (
	DefaultParticles     = 10
	DefaultMaxIterations = 50
	DefaultInertia       = 0.8
	DefaultCognitive     = 0.5
	DefaultSocial        = 0.5
)

// initialVelocity is the velocity every particle starts with.
const initialVelocity = 1.0

// ErrNilInstance indicates that a nil *graph.Instance was supplied.
var ErrNilInstance = errors.New("swarm: instance is nil")

// Options configures a swarm run. No range validation is performed: a
// population of zero or a non-positive budget degenerates to returning the
// initial best.
type Options struct {
	Particles     int     // population size
	MaxIterations int     // generation budget
	Inertia       float64 // w
	Cognitive     float64 // c1, personal-best attraction
	Social        float64 // c2, global-best attraction
	Seed          int64   // run seed; particle streams are derived from it

	Logger   *zap.Logger      // never nil after DefaultOptions
	Observer func(Generation) // optional; called at every generation barrier
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// DefaultOptions returns the package defaults with a no-op logger.
func DefaultOptions() Options {
	return Options{
		Particles:     DefaultParticles,
		MaxIterations: DefaultMaxIterations,
		Inertia:       DefaultInertia,
		Cognitive:     DefaultCognitive,
		Social:        DefaultSocial,
		Seed:          coloring.DefaultSeed,
		Logger:        zap.NewNop(),
	}
}

// WithParticles sets the population size.
func WithParticles(n int) Option {
	return func(o *Options) { o.Particles = n }
}

// WithMaxIterations sets the generation budget.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithInertia sets w.
func WithInertia(w float64) Option {
	return func(o *Options) { o.Inertia = w }
}

// WithCognitive sets c1.
func WithCognitive(c1 float64) Option {
	return func(o *Options) { o.Cognitive = c1 }
}

// WithSocial sets c2.
func WithSocial(c2 float64) Option {
	return func(o *Options) { o.Social = c2 }
}

// WithSeed sets the run seed (0 ⇒ coloring.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers fn to be called after every generation barrier,
// from the engine goroutine.
func WithObserver(fn func(Generation)) Option {
	return func(o *Options) { o.Observer = fn }
}

// Generation summarizes one completed ITERATE round.
type Generation struct {
	Index       int           // 1-based generation counter
	BestFitness int           // global best fitness after the barrier
	Improved    bool          // global best strictly improved in this round
	Restarts    int           // particles that hit v_total == 0 and restarted
	Elapsed     time.Duration // wall-clock time of the round
}

// Result is the outcome of a run.
type Result struct {
	// Best is the global best coloring; len(Best) == n.
	Best coloring.Coloring

	// Fitness is the doubled conflict count of Best.
	Fitness int

	// SuccessRate is 1 − Fitness/ArcCount; 1 on a graph without edges.
	SuccessRate float64

	// Generations is the number of ITERATE rounds executed.
	Generations int

	// History[0] is the global best fitness after INIT, History[t] after
	// generation t; len(History) == Generations+1.
	History []int

	// Elapsed is the wall-clock time from INIT to DONE.
	Elapsed time.Duration
}

// Solved reports whether Best is a proper coloring.
func (r Result) Solved() bool { return r.Fitness == 0 }
