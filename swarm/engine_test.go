package swarm_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/graph"
	"github.com/katalvlaran/lvcolor/swarm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func triangle(t *testing.T) *graph.Instance {
	t.Helper()
	g, err := graph.NewInstance([][]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}})
	require.NoError(t, err)

	return g
}

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

// ring returns the cycle C_n.
func ring(t *testing.T, n int) *graph.Instance {
	t.Helper()
	edges := make([][2]int, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]int{i, (i + 1) % n}
	}
	g, err := graph.FromEdges(n, edges)
	require.NoError(t, err)

	return g
}

// TestSolve_TriangleHighProbability repeats the triangle scenario with
// different seeds and requires a high success rate; PSO is stochastic, so
// the assertion is statistical rather than per run.
func TestSolve_TriangleHighProbability(t *testing.T) {
	const runs = 40
	g := triangle(t)

	solved := 0
	for seed := int64(1); seed <= runs; seed++ {
		res, err := swarm.Solve(context.Background(), g,
			swarm.WithParticles(10),
			swarm.WithMaxIterations(50),
			swarm.WithSeed(seed))
		require.NoError(t, err)
		require.LessOrEqual(t, res.Generations, 50)
		if res.Solved() {
			solved++
			ok, err := coloring.IsProper(g, res.Best)
			require.NoError(t, err)
			require.True(t, ok)
		}
	}
	assert.GreaterOrEqual(t, float64(solved)/runs, 0.9)
}

// TestRun_MonotoneAndStopsAtFirstZero checks the convergence contract on a
// solvable instance: the observed best never increases, and the loop ends at
// the first generation reaching zero.
func TestRun_MonotoneAndStopsAtFirstZero(t *testing.T) {
	g := ring(t, 15)

	var seen []swarm.Generation
	res, err := swarm.Solve(context.Background(), g,
		swarm.WithParticles(12),
		swarm.WithMaxIterations(300),
		swarm.WithSeed(5),
		swarm.WithObserver(func(gen swarm.Generation) { seen = append(seen, gen) }))
	require.NoError(t, err)

	require.Len(t, res.History, res.Generations+1)
	require.Len(t, seen, res.Generations)
	for i := 1; i < len(res.History); i++ {
		require.LessOrEqual(t, res.History[i], res.History[i-1])
		require.Equal(t, i, seen[i-1].Index)
		require.Equal(t, res.History[i], seen[i-1].BestFitness)
	}
	for i := 0; i < len(res.History)-1; i++ {
		require.NotZero(t, res.History[i], "loop continued after reaching zero")
	}

	f, err := coloring.Fitness(g, res.Best)
	require.NoError(t, err)
	assert.Equal(t, res.Fitness, f)
	if res.Solved() {
		assert.Zero(t, res.History[len(res.History)-1])
	} else {
		assert.Equal(t, 300, res.Generations)
	}
}

// TestRun_ExhaustsBudget uses K5, which has no proper 4-coloring, so the
// engine must run exactly MaxIterations generations.
func TestRun_ExhaustsBudget(t *testing.T) {
	g := complete(t, 5)

	res, err := swarm.Solve(context.Background(), g,
		swarm.WithParticles(6),
		swarm.WithMaxIterations(25),
		swarm.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 25, res.Generations)
	assert.Len(t, res.History, 26)
	assert.GreaterOrEqual(t, res.Fitness, 2)
	assert.False(t, res.Solved())
	assert.Less(t, res.SuccessRate, 1.0)
}

func TestRun_SeedDeterminism(t *testing.T) {
	g := complete(t, 6)
	opts := []swarm.Option{
		swarm.WithParticles(8),
		swarm.WithMaxIterations(30),
		swarm.WithSeed(1234),
	}

	a, err := swarm.Solve(context.Background(), g, opts...)
	require.NoError(t, err)
	b, err := swarm.Solve(context.Background(), g, opts...)
	require.NoError(t, err)

	assert.Equal(t, a.Best, b.Best)
	assert.Equal(t, a.History, b.History)
	assert.Equal(t, a.Generations, b.Generations)
}

// TestRun_ZeroParticles: an empty population keeps the all-zero fallback
// best and spends the whole budget without changing it.
func TestRun_ZeroParticles(t *testing.T) {
	g := triangle(t)

	res, err := swarm.Solve(context.Background(), g,
		swarm.WithParticles(0),
		swarm.WithMaxIterations(7))
	require.NoError(t, err)
	assert.Equal(t, coloring.Zero(3), res.Best)
	assert.Equal(t, 6, res.Fitness)
	assert.Equal(t, 7, res.Generations)
}

func TestRun_NonPositiveBudget(t *testing.T) {
	g := complete(t, 5)

	res, err := swarm.Solve(context.Background(), g, swarm.WithMaxIterations(-3))
	require.NoError(t, err)
	assert.Zero(t, res.Generations)
	assert.Len(t, res.History, 1)
	assert.Len(t, res.Best, 5)
}

func TestRun_EdgelessSolvedAtInit(t *testing.T) {
	g, err := graph.FromEdges(10, nil)
	require.NoError(t, err)

	res, err := swarm.Solve(context.Background(), g)
	require.NoError(t, err)
	assert.True(t, res.Solved())
	assert.Zero(t, res.Generations)
	assert.Equal(t, 1.0, res.SuccessRate)
}

func TestRun_ContextCancelledBetweenGenerations(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := swarm.Solve(ctx, complete(t, 5), swarm.WithParticles(4))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Generations)
	assert.Len(t, res.Best, 5) // INIT still completed
}

func TestEngine_ParticlesAreSnapshots(t *testing.T) {
	g := complete(t, 5)
	e, err := swarm.New(g, swarm.WithParticles(5), swarm.WithMaxIterations(3))
	require.NoError(t, err)

	res, err := e.Run(context.Background())
	require.NoError(t, err)

	ps := e.Particles()
	require.Len(t, ps, 5)
	best := ps[0].BestFitness
	for i, p := range ps {
		require.Equal(t, i, p.ID)
		require.True(t, p.Moved())
		require.NoError(t, p.Position.Validate())
		if p.BestFitness < best {
			best = p.BestFitness
		}
	}
	assert.Equal(t, res.Fitness, best)

	// Mutating a snapshot does not reach the engine.
	orig := ps[0].Position[0]
	ps[0].Position[0] = (orig + 1) % coloring.NumColors
	assert.Equal(t, orig, e.Particles()[0].Position[0])
	assert.Equal(t, 5, e.Options().Particles)
}

func TestNew_NilInstance(t *testing.T) {
	_, err := swarm.New(nil)
	assert.ErrorIs(t, err, swarm.ErrNilInstance)

	_, err = swarm.Solve(context.Background(), nil)
	assert.ErrorIs(t, err, swarm.ErrNilInstance)
}

func TestRun_LogsSummary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	_, err := swarm.Solve(context.Background(), triangle(t), swarm.WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("swarm finished").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap(), "fitness")
}
