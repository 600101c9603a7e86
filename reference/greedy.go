package reference

import (
	"time"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/graph"
	"go.uber.org/zap"
)

// Greedy colors g in a single randomized pass.
//
// Vertices are visited in a uniformly shuffled order. Each vertex receives
// the lowest label in 0..3 not used by an already-colored neighbor (per row
// of A); if all four are used it receives a uniform random label and the
// conflict is accepted. There are no retries: every call yields exactly one
// coloring, and different seeds give different colorings.
//
// Complexity: O(n + m) time, O(n) memory.
func Greedy(g *graph.Instance, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilInstance
	}
	o := gatherOptions(opts)

	var (
		start   = time.Now()
		rng     = o.rng()
		n       = g.Order()
		c       = make(coloring.Coloring, n)
		colored = make([]bool, n)
		forced  int
	)
	for _, v := range rng.Perm(n) {
		var used [coloring.NumColors]bool
		g.EachNeighbor(v, func(u int) {
			if colored[u] {
				used[c[u]] = true
			}
		})

		label := -1
		for l := 0; l < coloring.NumColors; l++ {
			if !used[l] {
				label = l
				break
			}
		}
		if label < 0 {
			label = rng.Intn(coloring.NumColors)
			forced++
		}
		c[v] = label
		colored[v] = true
	}

	fitness := coloring.MustFitness(g, c)
	res := newResult(g, c, fitness, 1, start)
	o.Logger.Debug("greedy finished",
		zap.Int("order", n),
		zap.Int("forced", forced),
		zap.Int("fitness", fitness),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}
