// SPDX-License-Identifier: MIT

// Package graph - Instance constructors and read-only accessors.
//
// Design principles:
//   - Input is deep-copied; any non-zero cell is normalized to 1.
//   - No symmetry or diagonal enforcement: rows are taken as given.
//   - Accessors never expose internal storage.
package graph

import "fmt"

// NewInstance builds an Instance from integer adjacency rows.
//
// Contract:
//   - len(rows[i]) == len(rows) for every i (else ErrNonSquare).
//   - A zero-length input yields the empty graph.
//
// Complexity: O(n²).
func NewInstance(rows [][]int) (*Instance, error) {
	var (
		n = len(rows)
		i int
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("NewInstance: row %d has %d columns, want %d: %w",
				i, len(rows[i]), n, ErrNonSquare)
		}
	}

	return build(n, func(i, j int) bool { return rows[i][j] != 0 }), nil
}

// NewInstanceFloat builds an Instance from numeric rows, as produced by a CSV
// reader. Any value other than 0 is an edge.
//
// Complexity: O(n²).
func NewInstanceFloat(rows [][]float64) (*Instance, error) {
	var (
		n = len(rows)
		i int
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("NewInstanceFloat: row %d has %d columns, want %d: %w",
				i, len(rows[i]), n, ErrNonSquare)
		}
	}

	return build(n, func(i, j int) bool { return rows[i][j] != 0 }), nil
}

// FromEdges builds a symmetric Instance of order n from an undirected edge list.
// Self-loops are stored on the diagonal as given.
//
// Errors: ErrVertexOutOfRange for an endpoint outside [0, n).
//
// Complexity: O(n² + m).
func FromEdges(n int, edges [][2]int) (*Instance, error) {
	if n < 0 {
		return nil, fmt.Errorf("FromEdges: n=%d: %w", n, ErrVertexOutOfRange)
	}
	cells := make([]bool, n*n)

	var e [2]int
	for _, e = range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("FromEdges: edge (%d,%d) with n=%d: %w",
				e[0], e[1], n, ErrVertexOutOfRange)
		}
		cells[e[0]*n+e[1]] = true
		cells[e[1]*n+e[0]] = true
	}

	return build(n, func(i, j int) bool { return cells[i*n+j] }), nil
}

// build fills the bitmap, neighbor lists and counters in a single i→j pass.
func build(n int, at func(i, j int) bool) *Instance {
	g := &Instance{
		n:   n,
		adj: make([]uint8, n*n),
		nbr: make([][]int, n),
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if !at(i, j) {
				continue
			}
			g.adj[i*n+j] = 1
			g.nbr[i] = append(g.nbr[i], j)
			g.arcs++
		}
	}
	// Unordered pairs: count (i,j), i<j, present in either direction.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if g.adj[i*n+j] == 1 || g.adj[j*n+i] == 1 {
				g.edges++
			}
		}
	}

	return g
}

// Order returns the number of vertices n.
func (g *Instance) Order() int { return g.n }

// ArcCount returns the number of non-zero cells of A. For a symmetric matrix
// with a zero diagonal this equals 2×EdgeCount.
func (g *Instance) ArcCount() int { return g.arcs }

// EdgeCount returns the number of unordered vertex pairs {i,j}, i≠j, joined by
// an edge in at least one direction.
func (g *Instance) EdgeCount() int { return g.edges }

// HasEdge reports whether A[i][j]==1. Out-of-range indices report false.
func (g *Instance) HasEdge(i, j int) bool {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return false
	}

	return g.adj[i*g.n+j] == 1
}

// Degree returns the number of non-zero cells in row i.
func (g *Instance) Degree(i int) (int, error) {
	if i < 0 || i >= g.n {
		return 0, fmt.Errorf("Degree(%d): %w", i, ErrVertexOutOfRange)
	}

	return len(g.nbr[i]), nil
}

// Neighbors returns a copy of the ascending column indices j with A[i][j]==1.
func (g *Instance) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= g.n {
		return nil, fmt.Errorf("Neighbors(%d): %w", i, ErrVertexOutOfRange)
	}

	return append([]int(nil), g.nbr[i]...), nil
}

// EachNeighbor calls fn for every j with A[i][j]==1 in ascending order,
// without allocating. i must be in range; solvers call it after validation.
func (g *Instance) EachNeighbor(i int, fn func(j int)) {
	for _, j := range g.nbr[i] {
		fn(j)
	}
}

// Row returns a copy of row i as 0/1 integers.
func (g *Instance) Row(i int) ([]int, error) {
	if i < 0 || i >= g.n {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrVertexOutOfRange)
	}
	out := make([]int, g.n)
	for j := range out {
		out[j] = int(g.adj[i*g.n+j])
	}

	return out, nil
}

// Rows returns a deep copy of the adjacency matrix as 0/1 integers.
//
// Complexity: O(n²).
func (g *Instance) Rows() [][]int {
	out := make([][]int, g.n)

	var i, j int
	for i = 0; i < g.n; i++ {
		out[i] = make([]int, g.n)
		for j = 0; j < g.n; j++ {
			out[i][j] = int(g.adj[i*g.n+j])
		}
	}

	return out
}

// IsSymmetric reports whether A equals its transpose.
func (g *Instance) IsSymmetric() bool {
	var i, j int
	for i = 0; i < g.n; i++ {
		for j = i + 1; j < g.n; j++ {
			if g.adj[i*g.n+j] != g.adj[j*g.n+i] {
				return false
			}
		}
	}

	return true
}
