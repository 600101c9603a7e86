package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/graph"
	"github.com/katalvlaran/lvcolor/instance"
	"github.com/katalvlaran/lvcolor/reference"
	"github.com/katalvlaran/lvcolor/swarm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Algorithm names accepted by --algo.
const (
	algoNature    = "nature"
	algoReference = "reference"
	algoGreedy    = "greedy"
)

type solveFlags struct {
	algo      string
	seed      int64
	particles int
	maxIter   int
	w, c1, c2 float64
	header    bool
	indexCol  bool
	noLimit   bool
	save      bool
}

// outcome is the algorithm-independent view of one solve.
type outcome struct {
	best        coloring.Coloring
	fitness     int
	successRate float64
	elapsed     time.Duration
	detail      string
}

func newSolveCmd(a *app) *cobra.Command {
	def := swarm.DefaultOptions()
	f := solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Color a problem file and save the best coloring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd.Context(), args[0], f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.algo, "algo", "a", algoNature, "algorithm: nature, reference or greedy")
	fl.Int64Var(&f.seed, "seed", coloring.DefaultSeed, "random seed")
	fl.IntVar(&f.particles, "particles", def.Particles, "swarm size")
	fl.IntVar(&f.maxIter, "max-iter", def.MaxIterations, "generation budget")
	fl.Float64Var(&f.w, "w", def.Inertia, "inertia weight")
	fl.Float64Var(&f.c1, "c1", def.Cognitive, "cognitive weight")
	fl.Float64Var(&f.c2, "c2", def.Social, "social weight")
	fl.BoolVar(&f.header, "header", true, "row 0 of the file holds labels")
	fl.BoolVar(&f.indexCol, "index-col", false, "column 0 of the file holds labels")
	fl.BoolVar(&f.noLimit, "no-limit", false, "lift the brute-force order limit")
	fl.BoolVar(&f.save, "save", true, "write the coloring to the solved directory")

	return cmd
}

func (a *app) solve(ctx context.Context, name string, f solveFlags) error {
	st := a.store()
	t, err := st.Load(name, instance.WithHeaderRow(f.header), instance.WithIndexColumn(f.indexCol))
	if err != nil {
		return err
	}
	g := t.Instance
	log := a.log.With(zap.String("file", name), zap.String("algo", f.algo))

	var o outcome
	switch f.algo {
	case algoNature:
		o, err = a.solveNature(ctx, g, f, log)
	case algoReference:
		o, err = solveReference(ctx, g, f, log)
	case algoGreedy:
		o, err = solveGreedy(g, f, log)
	default:
		return fmt.Errorf("--algo %q: %w", f.algo, ErrUnknownAlgorithm)
	}
	if err != nil {
		return err
	}
	if a.metrics != nil {
		a.metrics.ObserveSolve(f.algo, o.fitness, o.elapsed)
	}

	conflicts, err := coloring.Conflicts(g, o.best)
	if err != nil {
		return err
	}

	w := a.out
	fmt.Fprintf(w, "algorithm: %s\n", f.algo)
	fmt.Fprintf(w, "file:      %s\n", name)
	fmt.Fprintf(w, "order:     %d\n", g.Order())
	fmt.Fprintf(w, "edges:     %d\n", g.EdgeCount())
	fmt.Fprintf(w, "fitness:   %d\n", o.fitness)
	fmt.Fprintf(w, "success:   %.4f\n", o.successRate)
	fmt.Fprintf(w, "coloring:  %s\n", joinLabels(t.Labels, o.best))
	fmt.Fprintf(w, "conflicts: %s\n", formatConflicts(t.Labels, conflicts))
	if o.detail != "" {
		fmt.Fprintf(w, "%s\n", o.detail)
	}
	fmt.Fprintf(w, "elapsed:   %s\n", o.elapsed)

	if !f.save {
		return nil
	}
	path, err := st.SaveSolution(name, o.best)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "saved:     %s\n", path)

	return nil
}

func (a *app) solveNature(ctx context.Context, g *graph.Instance, f solveFlags, log *zap.Logger) (outcome, error) {
	opts := []swarm.Option{
		swarm.WithParticles(f.particles),
		swarm.WithMaxIterations(f.maxIter),
		swarm.WithInertia(f.w),
		swarm.WithCognitive(f.c1),
		swarm.WithSocial(f.c2),
		swarm.WithSeed(f.seed),
		swarm.WithLogger(log),
	}
	if a.metrics != nil {
		opts = append(opts, swarm.WithObserver(a.metrics.ObserveGeneration))
	}
	res, err := swarm.Solve(ctx, g, opts...)
	if err != nil {
		return outcome{}, err
	}

	return outcome{
		best:        res.Best,
		fitness:     res.Fitness,
		successRate: res.SuccessRate,
		elapsed:     res.Elapsed,
		detail:      "generations: " + strconv.Itoa(res.Generations),
	}, nil
}

func solveReference(ctx context.Context, g *graph.Instance, f solveFlags, log *zap.Logger) (outcome, error) {
	opts := []reference.Option{reference.WithContext(ctx), reference.WithLogger(log)}
	if f.noLimit {
		opts = append(opts, reference.WithoutOrderLimit())
	}
	res, err := reference.BruteForce(g, opts...)
	if err != nil {
		return outcome{}, err
	}

	return fromReference(res), nil
}

func solveGreedy(g *graph.Instance, f solveFlags, log *zap.Logger) (outcome, error) {
	res, err := reference.Greedy(g, reference.WithSeed(f.seed), reference.WithLogger(log))
	if err != nil {
		return outcome{}, err
	}

	return fromReference(res), nil
}

func fromReference(res reference.Result) outcome {
	return outcome{
		best:        res.Coloring,
		fitness:     res.Fitness,
		successRate: res.SuccessRate,
		elapsed:     res.Elapsed,
		detail:      "evaluated: " + strconv.FormatInt(res.Evaluated, 10),
	}
}

// joinLabels renders c as label=color pairs.
func joinLabels(labels []string, c coloring.Coloring) string {
	parts := make([]string, len(c))
	for i, col := range c {
		parts[i] = labels[i] + "=" + strconv.Itoa(col)
	}

	return strings.Join(parts, " ")
}

func formatConflicts(labels []string, pairs [][2]int) string {
	if len(pairs) == 0 {
		return "none"
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = labels[p[0]] + "-" + labels[p[1]]
	}

	return strings.Join(parts, " ")
}
