package reference_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/graph"
	"github.com/katalvlaran/lvcolor/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// complete returns K_n as an Instance.
func complete(t *testing.T, n int) *graph.Instance {
	t.Helper()
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g, err := graph.FromEdges(n, edges)
	require.NoError(t, err)

	return g
}

func TestBruteForce_Triangle(t *testing.T) {
	g, err := graph.NewInstance([][]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}})
	require.NoError(t, err)

	res, err := reference.BruteForce(g)
	require.NoError(t, err)
	assert.Zero(t, res.Fitness)
	assert.LessOrEqual(t, res.Coloring.Distinct(), 3)
	assert.Equal(t, 1.0, res.SuccessRate)

	// Lexicographic order: 000, 001, …, 012 is the first proper coloring.
	assert.Equal(t, coloring.Coloring{0, 1, 2}, res.Coloring)
	assert.Equal(t, int64(7), res.Evaluated)
}

// TestBruteForce_K5 checks the pigeonhole bound: five mutually adjacent
// vertices cannot be properly colored with four labels.
func TestBruteForce_K5(t *testing.T) {
	g := complete(t, 5)

	res, err := reference.BruteForce(g)
	require.NoError(t, err)
	assert.Greater(t, res.Fitness, 0)
	assert.Equal(t, 2, res.Fitness) // optimum: exactly one shared pair
	assert.Equal(t, int64(1024), res.Evaluated)
}

func TestBruteForce_EmptyAndEdgeless(t *testing.T) {
	g0, err := graph.NewInstance(nil)
	require.NoError(t, err)
	res, err := reference.BruteForce(g0)
	require.NoError(t, err)
	assert.Empty(t, res.Coloring)
	assert.Zero(t, res.Fitness)

	g, err := graph.FromEdges(5, nil)
	require.NoError(t, err)
	res, err = reference.BruteForce(g)
	require.NoError(t, err)
	assert.Equal(t, coloring.Zero(5), res.Coloring)
	assert.Equal(t, int64(1), res.Evaluated)
}

// TestBruteForce_MatchesGreedyBound checks on random graphs that the oracle
// is never worse than a greedy coloring.
func TestBruteForce_MatchesGreedyBound(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 25; trial++ {
		n := 2 + r.Intn(6)
		var edges [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if r.Float64() < 0.6 {
					edges = append(edges, [2]int{i, j})
				}
			}
		}
		g, err := graph.FromEdges(n, edges)
		require.NoError(t, err)

		bf, err := reference.BruteForce(g)
		require.NoError(t, err)
		gr, err := reference.Greedy(g, reference.WithRand(r))
		require.NoError(t, err)
		require.LessOrEqual(t, bf.Fitness, gr.Fitness)

		f, err := coloring.Fitness(g, bf.Coloring)
		require.NoError(t, err)
		require.Equal(t, bf.Fitness, f)
	}
}

func TestBruteForce_Guards(t *testing.T) {
	_, err := reference.BruteForce(nil)
	assert.ErrorIs(t, err, reference.ErrNilInstance)

	big, err := graph.FromEdges(reference.MaxBruteForceOrder+1, nil)
	require.NoError(t, err)
	_, err = reference.BruteForce(big)
	assert.ErrorIs(t, err, reference.ErrOrderTooLarge)

	// Edgeless: the all-zero start is already optimal, so no enumeration happens.
	res, err := reference.BruteForce(big, reference.WithoutOrderLimit())
	require.NoError(t, err)
	assert.Zero(t, res.Fitness)
}

func TestBruteForce_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := reference.BruteForce(complete(t, 9), reference.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, res.Coloring, 9)
	assert.Greater(t, res.Fitness, 0)
}

func TestGreedy_ShapeAndRange(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 100; trial++ {
		n := r.Intn(40)
		var edges [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if r.Float64() < 0.3 {
					edges = append(edges, [2]int{i, j})
				}
			}
		}
		g, err := graph.FromEdges(n, edges)
		require.NoError(t, err)

		res, err := reference.Greedy(g, reference.WithSeed(int64(trial)))
		require.NoError(t, err)
		require.Len(t, res.Coloring, n)
		require.NoError(t, res.Coloring.Validate())
	}
}

// TestGreedy_ProperOnLowDegree: with maximum degree ≤ 3 a free label always
// exists, so Greedy never accepts a conflict.
func TestGreedy_ProperOnLowDegree(t *testing.T) {
	// Cube graph Q3: 3-regular.
	g, err := graph.FromEdges(8, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	})
	require.NoError(t, err)

	for seed := int64(1); seed <= 20; seed++ {
		res, err := reference.Greedy(g, reference.WithSeed(seed))
		require.NoError(t, err)
		require.Zero(t, res.Fitness, "seed %d", seed)
	}
}

func TestGreedy_SeedDeterminism(t *testing.T) {
	g := complete(t, 7)

	a, err := reference.Greedy(g, reference.WithSeed(3))
	require.NoError(t, err)
	b, err := reference.Greedy(g, reference.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, a.Coloring, b.Coloring)

	_, err = reference.Greedy(nil)
	assert.ErrorIs(t, err, reference.ErrNilInstance)
}

func TestGreedy_SeedsVaryColorings(t *testing.T) {
	g, err := graph.FromEdges(12, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6},
		{6, 7}, {7, 8}, {8, 9}, {9, 10}, {10, 11}, {11, 0},
	})
	require.NoError(t, err)

	seen := map[string]bool{}
	for seed := int64(1); seed <= 10; seed++ {
		res, err := reference.Greedy(g, reference.WithSeed(seed))
		require.NoError(t, err)
		seen[fmt.Sprint(res.Coloring)] = true
	}
	assert.Greater(t, len(seen), 1)
}
