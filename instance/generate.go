// SPDX-License-Identifier: MIT

// Package instance - synthetic instance generators.
//
// Determinism:
//   - Vertex indices are 0..n-1; pair trials run i asc, j asc (j>i).
//   - Stochastic generators draw only from the supplied RNG, so a fixed seed
//     reproduces the same instance.
package instance

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcolor/graph"
)

// File-local method tags and domain minima.
const (
	methodComplete     = "Complete"
	methodCycle        = "Cycle"
	methodRandomSparse = "RandomSparse"
	methodCubicPlanar  = "CubicPlanar"

	minCycleOrder = 3
	minCubicOrder = 4
	cubicDegree   = 3
)

// Complete returns K_n.
func Complete(n int) (*graph.Instance, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodComplete, n, ErrInvalidOrder)
	}
	edges := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return graph.FromEdges(n, edges)
}

// Cycle returns C_n: 0-1-…-(n-1)-0.
func Cycle(n int) (*graph.Instance, error) {
	if n < minCycleOrder {
		return nil, fmt.Errorf("%s: n=%d < %d: %w", methodCycle, n, minCycleOrder, ErrInvalidOrder)
	}
	edges := make([][2]int, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]int{i, (i + 1) % n}
	}

	return graph.FromEdges(n, edges)
}

// RandomSparse samples an Erdős–Rényi graph: each unordered pair is an edge
// independently with probability p.
func RandomSparse(n int, p float64, rng *rand.Rand) (*graph.Instance, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodRandomSparse, n, ErrInvalidOrder)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	if rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p == 1 || (p > 0 && rng.Float64() < p) {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return graph.FromEdges(n, edges)
}

// CubicPlanar returns a random 3-regular planar graph of even order n ≥ 4.
//
// The graph is kept as a rotation system (cyclic neighbor order per vertex)
// starting from K4. Each growth step picks a random dart u→v, takes w, the
// successor of u in v's rotation, subdivides uv with a and vw with b and
// joins a–b. Every step adds two vertices and preserves 3-regularity and
// planarity.
//
// Complexity: O(n) steps, O(n) memory.
func CubicPlanar(n int, rng *rand.Rand) (*graph.Instance, error) {
	if n < minCubicOrder || n%2 != 0 {
		return nil, fmt.Errorf("%s: n=%d must be even and ≥ %d: %w",
			methodCubicPlanar, n, minCubicOrder, ErrInvalidOrder)
	}
	if rng == nil && n > minCubicOrder {
		return nil, fmt.Errorf("%s: %w", methodCubicPlanar, ErrNeedRandSource)
	}

	rot := make([][cubicDegree]int, 0, n)
	rot = append(rot,
		[cubicDegree]int{2, 1, 3},
		[cubicDegree]int{0, 2, 3},
		[cubicDegree]int{3, 1, 0},
		[cubicDegree]int{0, 1, 2},
	)

	var u, v, w, a, b, k int
	for len(rot) < n {
		u = rng.Intn(len(rot))
		v = rot[u][rng.Intn(cubicDegree)]
		k = slot(rot[v], u)
		w = rot[v][(k+1)%cubicDegree]
		a, b = len(rot), len(rot)+1

		rot[u][slot(rot[u], v)] = a
		rot[w][slot(rot[w], v)] = b
		rot[v][k] = a
		rot[v][(k+1)%cubicDegree] = b

		rot = append(rot,
			[cubicDegree]int{u, b, v},
			[cubicDegree]int{v, a, w},
		)
	}

	edges := make([][2]int, 0, n*cubicDegree/2)
	for i := range rot {
		for _, j := range rot[i] {
			if i < j {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return graph.FromEdges(n, edges)
}

// slot returns the position of x in r; callers guarantee presence.
func slot(r [cubicDegree]int, x int) int {
	for i := range r {
		if r[i] == x {
			return i
		}
	}

	return -1
}

// FileName returns the conventional problem-file name for order n.
func FileName(n int) string {
	return "size" + strconv.Itoa(n) + "_instance.csv"
}

// WriteCSV writes g in the problem-file format. With header=true a row of
// positional labels 0..n-1 precedes the matrix, matching WithHeaderRow(true).
func WriteCSV(w io.Writer, g *graph.Instance, header bool) error {
	if g == nil {
		return graph.ErrNilInstance
	}

	var (
		n     = g.Order()
		cells = make([]string, n)
		sb    strings.Builder
		i, j  int
	)
	if header {
		for j = 0; j < n; j++ {
			cells[j] = strconv.Itoa(j)
		}
		sb.WriteString(strings.Join(cells, ","))
		sb.WriteByte('\n')
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g.HasEdge(i, j) {
				cells[j] = "1"
			} else {
				cells[j] = "0"
			}
		}
		sb.WriteString(strings.Join(cells, ","))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}
