// Package reference - exhaustive enumeration oracle.
//
// The candidate stream is an odometer over {0..NumColors-1}^n with the last
// vertex as the fastest digit, so candidates appear in lexicographic order
// and the first candidate is the all-zero coloring.
package reference

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/graph"
	"go.uber.org/zap"
)

// BruteForce returns a minimum-fitness coloring of g over the 4-label
// alphabet. It stops at the first proper coloring in lexicographic order.
// Among equally good colorings the lexicographically first is kept.
//
// Errors:
//   - ErrNilInstance for g == nil.
//   - ErrOrderTooLarge for n > MaxBruteForceOrder without WithoutOrderLimit.
//   - ctx.Err() of WithContext; the partial best is still returned.
func BruteForce(g *graph.Instance, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilInstance
	}
	o := gatherOptions(opts)

	n := g.Order()
	if n > MaxBruteForceOrder && !o.NoLimit {
		return Result{}, fmt.Errorf("BruteForce: n=%d > %d: %w", n, MaxBruteForceOrder, ErrOrderTooLarge)
	}

	var (
		start     = time.Now()
		cur       = coloring.Zero(n)
		best      = cur.Clone()
		bestFit   = coloring.MustFitness(g, cur)
		evaluated = int64(1)
		f         int
	)
	for bestFit > 0 && advance(cur) {
		if evaluated%ctxCheckEvery == 0 {
			if err := o.Context.Err(); err != nil {
				o.Logger.Debug("brute force interrupted",
					zap.Int("order", n), zap.Int64("evaluated", evaluated), zap.Error(err))
				return newResult(g, best, bestFit, evaluated, start), err
			}
		}
		f = coloring.MustFitness(g, cur)
		evaluated++
		if f < bestFit {
			bestFit = f
			copy(best, cur)
		}
	}

	res := newResult(g, best, bestFit, evaluated, start)
	o.Logger.Debug("brute force finished",
		zap.Int("order", n),
		zap.Int64("evaluated", evaluated),
		zap.Int("fitness", bestFit),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

// advance moves c to its lexicographic successor in place and reports whether
// one exists. On false c has wrapped back to all zeros.
func advance(c coloring.Coloring) bool {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]++
		if c[i] < coloring.NumColors {
			return true
		}
		c[i] = 0
	}

	return false
}

func newResult(g *graph.Instance, c coloring.Coloring, fitness int, evaluated int64, start time.Time) Result {
	return Result{
		Coloring:    c,
		Fitness:     fitness,
		SuccessRate: coloring.RateOf(g, fitness),
		Evaluated:   evaluated,
		Elapsed:     time.Since(start),
	}
}
