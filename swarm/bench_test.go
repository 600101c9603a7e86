package swarm_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvcolor/graph"
	"github.com/katalvlaran/lvcolor/swarm"
)

// BenchmarkSolve_Ring60 measures a full run on C_60 with the default
// parameters and a fixed budget.
func BenchmarkSolve_Ring60(b *testing.B) {
	edges := make([][2]int, 60)
	for i := range edges {
		edges[i] = [2]int{i, (i + 1) % 60}
	}
	g, err := graph.FromEdges(60, edges)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = swarm.Solve(context.Background(), g,
			swarm.WithParticles(20),
			swarm.WithMaxIterations(100),
			swarm.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}
