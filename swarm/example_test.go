// Package swarm_test provides runnable examples for the PSO engine.
package swarm_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcolor/graph"
	"github.com/katalvlaran/lvcolor/swarm"
)

// ExampleSolve colors a triangle with the default swarm.
func ExampleSolve() {
	g, _ := graph.NewInstance([][]int{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})

	res, err := swarm.Solve(context.Background(), g,
		swarm.WithParticles(10),
		swarm.WithMaxIterations(50),
		swarm.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Solved(), len(res.Best))
	// Output: true 3
}
