package experiment

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/graph"
	"github.com/katalvlaran/lvcolor/instance"
	"github.com/katalvlaran/lvcolor/internal/metrics"
	"github.com/katalvlaran/lvcolor/swarm"
	"go.uber.org/zap"
)

// valueTolerance absorbs float drift when stepping toward Max.
const valueTolerance = 1e-9

// SolveFunc is the solver the Runner sweeps; swarm.Solve by default.
type SolveFunc func(ctx context.Context, g *graph.Instance, opts ...swarm.Option) (swarm.Result, error)

// Row is one solve of a sweep.
type Row struct {
	Value   float64
	Fitness int
	Elapsed time.Duration
}

// Report is the outcome of one sweep.
type Report struct {
	RunID string
	Plan  Plan
	Rows  []Row
}

// Runner executes plans against problems resolved through Store.
// Metrics is optional; when set every solve and generation is recorded.
type Runner struct {
	Store      instance.Store
	ResultsDir string
	Logger     *zap.Logger
	Metrics    *metrics.Collector
	Solve      SolveFunc
}

// DefaultResultsDir is where RunFile writes reports when ResultsDir is empty.
const DefaultResultsDir = "experiment-results"

// NewRunner returns a Runner with default directories and a no-op logger.
func NewRunner() *Runner {
	return &Runner{
		Store:      instance.NewStore("", ""),
		ResultsDir: DefaultResultsDir,
		Logger:     zap.NewNop(),
		Solve:      swarm.Solve,
	}
}

// Values returns the steered-parameter schedule min, min+step, … ≤ max.
func (s Steered) Values() []float64 {
	if s.Step <= 0 || s.Max < s.Min {
		return nil
	}

	var out []float64
	for k := 0; ; k++ {
		v := s.Min + float64(k)*s.Step
		if v > s.Max+valueTolerance {
			break
		}
		out = append(out, v)
	}

	return out
}

// options returns the swarm options for one solve with the steered
// parameter set to v.
func (p Plan) options(v float64, seed int64) []swarm.Option {
	var (
		w         = p.Others.W
		c1        = p.Others.C1
		c2        = p.Others.C2
		particles = p.Others.Particles
		maxIter   = p.Others.MaxIter
	)
	switch p.Steered.Name {
	case ParamInertia:
		w = v
	case ParamCognitive:
		c1 = v
	case ParamSocial:
		c2 = v
	case ParamParticles:
		particles = int(math.Trunc(v))
	case ParamMaxIterations:
		maxIter = int(math.Trunc(v))
	}

	return []swarm.Option{
		swarm.WithInertia(w),
		swarm.WithCognitive(c1),
		swarm.WithSocial(c2),
		swarm.WithParticles(particles),
		swarm.WithMaxIterations(maxIter),
		swarm.WithSeed(seed),
	}
}

// Run validates p, loads its problem and performs the sweep.
//
// Solves run sequentially; each uses its own seed derived from p.Seed and
// the run index. ctx cancellation stops the sweep and returns the rows
// collected so far together with the error.
func (r *Runner) Run(ctx context.Context, p Plan) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var (
		log   = r.logger()
		solve = r.Solve
		rep   = &Report{RunID: uuid.NewString(), Plan: p}
	)
	if solve == nil {
		solve = swarm.Solve
	}
	log = log.With(zap.String("run_id", rep.RunID), zap.String("steered", p.Steered.Name))

	t, err := r.Store.Load(p.Others.Filename,
		instance.WithHeaderRow(p.headerRow()),
		instance.WithIndexColumn(p.IndexCol))
	if err != nil {
		return nil, err
	}

	seed := p.Seed
	if seed == 0 {
		seed = coloring.DefaultSeed
	}

	values := p.Steered.Values()
	log.Info("experiment started",
		zap.String("file", p.Others.Filename),
		zap.Int("order", t.Instance.Order()),
		zap.Int("values", len(values)),
		zap.Int("repetitions", p.Steered.Repetitions))

	run := uint64(0)
	for _, v := range values {
		for k := 0; k < p.Steered.Repetitions; k++ {
			if err = ctx.Err(); err != nil {
				return rep, err
			}
			opts := append(p.options(v, coloring.DeriveSeed(seed, run)), swarm.WithLogger(log))
			if r.Metrics != nil {
				opts = append(opts, swarm.WithObserver(r.Metrics.ObserveGeneration))
			}
			res, serr := solve(ctx, t.Instance, opts...)
			if serr != nil {
				return rep, fmt.Errorf("value %g repetition %d: %w", v, k, serr)
			}
			if r.Metrics != nil {
				r.Metrics.ObserveSolve(p.Algorithm, res.Fitness, res.Elapsed)
			}
			rep.Rows = append(rep.Rows, Row{Value: v, Fitness: res.Fitness, Elapsed: res.Elapsed})
			run++
		}
		log.Debug("experiment value done", zap.Float64("value", v))
	}
	log.Info("experiment finished", zap.Int("rows", len(rep.Rows)))

	return rep, nil
}

// RunFile loads the plan at path, runs it and writes the report to
// ResultsDir. It returns the report and its path.
func (r *Runner) RunFile(ctx context.Context, path string) (*Report, string, error) {
	p, err := LoadPlan(path)
	if err != nil {
		return nil, "", err
	}
	rep, err := r.Run(ctx, p)
	if err != nil {
		return rep, "", err
	}

	dir := r.ResultsDir
	if dir == "" {
		dir = DefaultResultsDir
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return rep, "", fmt.Errorf("RunFile: %w", err)
	}
	out := filepath.Join(dir, ReportFileName(path))
	f, err := os.Create(out)
	if err != nil {
		return rep, "", fmt.Errorf("RunFile: %w", err)
	}
	if err = WriteReport(f, rep); err != nil {
		_ = f.Close()
		return rep, "", fmt.Errorf("RunFile: %w", err)
	}
	if err = f.Close(); err != nil {
		return rep, "", fmt.Errorf("RunFile: %w", err)
	}

	return rep, out, nil
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}

	return r.Logger
}
