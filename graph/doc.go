// SPDX-License-Identifier: MIT

// Package graph defines Instance, the immutable adjacency-matrix view of an
// undirected graph that every lvcolor solver colors.
//
// An Instance is an n×n binary matrix A where A[i][j]==1 iff the edge (i,j)
// exists. Symmetry and a zero diagonal are expected but NOT enforced:
// malformed input is a caller concern and solvers treat the matrix row by row.
//
// Construction:
//
//	g, err := graph.NewInstance([][]int{
//		{0, 1, 1},
//		{1, 0, 1},
//		{1, 1, 0},
//	})
//
// Constructors deep-copy their input; every accessor that exposes rows
// returns a copy, so an Instance can be shared freely between goroutines.
//
// Errors:
//
//	ErrNilInstance     - nil *Instance passed to a consumer.
//	ErrNonSquare       - input rows have a different length than the row count.
//	ErrVertexOutOfRange - vertex index outside [0, n).
//
// Complexity:
//   - Construction: O(n²) time, O(n² + m) space (dense bitmap + neighbor lists).
//   - HasEdge / Degree / Order: O(1).
//   - Neighbors: O(deg) copy.
package graph
