// SPDX-License-Identifier: MIT

package graph

import "errors"

// Sentinel errors for instance construction and access.
var (
	// ErrNilInstance indicates that a nil *Instance was supplied.
	ErrNilInstance = errors.New("graph: instance is nil")

	// ErrNonSquare indicates that the adjacency input is not an n×n matrix.
	ErrNonSquare = errors.New("graph: adjacency matrix is not square")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")
)

// Instance is an immutable binary adjacency matrix.
//
// The zero value is an empty graph with no vertices.
type Instance struct {
	n     int     // order (number of vertices)
	adj   []uint8 // row-major n*n bitmap, adj[i*n+j] ∈ {0,1}
	nbr   [][]int // nbr[i] = ascending column indices j with adj[i*n+j]==1
	arcs  int     // number of non-zero cells
	edges int     // number of unordered pairs i<j with an edge in either direction
}
