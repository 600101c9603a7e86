// SPDX-License-Identifier: MIT

// Package instance moves coloring problems and their solutions between
// files and the in-memory graph.Instance used by the solvers.
//
// Problem files are rectangular numeric CSV adjacency matrices. Two
// independent flags describe their framing:
//
//	WithHeaderRow(true)    row 0 holds vertex labels (default)
//	WithIndexColumn(true)  column 0 holds row labels (default false)
//
// Solution files hold one comma-separated row of integer labels and are
// named after the problem file with the "solved_" prefix:
//
//	problem-instances/size11_instance.csv
//	solved-instances/solved_size11_instance.csv
//
// Generators build synthetic instances: CubicPlanar grows random 3-regular
// planar graphs from K4 by face splitting; Complete, Cycle and RandomSparse
// cover the usual test families. WriteCSV serializes any instance in the
// problem-file format.
//
// Errors:
//
//	ErrInstanceNotFound  - the problem file does not exist.
//	ErrEmptyInstance     - the problem file holds no matrix rows.
//	ErrMalformed         - ragged rows or non-numeric cells.
//	ErrInvalidOrder      - generator order outside its domain.
//	ErrInvalidProbability - RandomSparse probability outside [0,1].
//	ErrNeedRandSource    - a stochastic generator was called without RNG.
package instance
