// Package coloring - fitness evaluation.
//
// Fitness walks every row of A through the instance neighbor lists, so
// malformed input (asymmetric rows, diagonal ones) is counted exactly as
// given: a self-loop always conflicts with itself.
package coloring

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/graph"
)

// Fitness returns the doubled conflict count of c on g.
//
// Errors: ErrNilInstance, ErrLengthMismatch, ErrLabelOutOfRange.
//
// Complexity: O(n + m).
func Fitness(g *graph.Instance, c Coloring) (int, error) {
	if err := check(g, c); err != nil {
		return 0, err
	}

	return MustFitness(g, c), nil
}

// MustFitness is Fitness without validation. The caller guarantees that g is
// non-nil and c is a valid coloring of order g.Order(); solvers use it in
// their inner loops after validating once.
func MustFitness(g *graph.Instance, c Coloring) int {
	var (
		n     = g.Order()
		total int
		i     int
	)
	for i = 0; i < n; i++ {
		li := c[i]
		g.EachNeighbor(i, func(j int) {
			if c[j] == li {
				total++
			}
		})
	}

	return total
}

// IsProper reports whether no edge joins two vertices with the same label.
func IsProper(g *graph.Instance, c Coloring) (bool, error) {
	f, err := Fitness(g, c)
	if err != nil {
		return false, err
	}

	return f == 0, nil
}

// SuccessRate returns 1 − fitness/ArcCount, a score in [0,1] where 1 means
// fully proper.
//
// Errors: ErrNoEdges when g has no edge, plus those of Fitness.
func SuccessRate(g *graph.Instance, c Coloring) (float64, error) {
	if err := check(g, c); err != nil {
		return 0, err
	}
	if g.ArcCount() == 0 {
		return 0, ErrNoEdges
	}

	return RateOf(g, MustFitness(g, c)), nil
}

// RateOf converts an already computed fitness into a success rate.
// It returns 1 for a graph without edges, where every coloring is vacuously
// proper.
func RateOf(g *graph.Instance, fitness int) float64 {
	if g.ArcCount() == 0 {
		return 1
	}

	return 1 - float64(fitness)/float64(g.ArcCount())
}

// Conflicts lists every unordered pair {i,j}, i<j, joined by an edge in
// either direction whose endpoints share a label, in (i,j) ascending order.
func Conflicts(g *graph.Instance, c Coloring) ([][2]int, error) {
	if err := check(g, c); err != nil {
		return nil, err
	}

	var (
		n   = g.Order()
		out [][2]int
		i   int
		j   int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if c[i] == c[j] && (g.HasEdge(i, j) || g.HasEdge(j, i)) {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out, nil
}

// check validates the (instance, coloring) pair.
func check(g *graph.Instance, c Coloring) error {
	if g == nil {
		return ErrNilInstance
	}
	if len(c) != g.Order() {
		return fmt.Errorf("len=%d n=%d: %w", len(c), g.Order(), ErrLengthMismatch)
	}

	return c.Validate()
}
