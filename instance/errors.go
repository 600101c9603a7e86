// SPDX-License-Identifier: MIT

package instance

import "errors"

// Sentinel errors for loading, persistence and generation.
var (
	// ErrInstanceNotFound indicates that the problem file does not exist.
	ErrInstanceNotFound = errors.New("instance: file does not exist")

	// ErrEmptyInstance indicates a problem file without data rows.
	ErrEmptyInstance = errors.New("instance: file does not contain data")

	// ErrMalformed indicates ragged rows or a cell that is not a number.
	ErrMalformed = errors.New("instance: malformed data")

	// ErrSolutionNotFound indicates that no solution file exists for a problem.
	ErrSolutionNotFound = errors.New("instance: no solution for the given problem")

	// ErrInvalidOrder indicates a generator order outside its domain.
	ErrInvalidOrder = errors.New("instance: invalid order for generator")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("instance: probability must be in [0,1]")

	// ErrNeedRandSource indicates a stochastic generator called with a nil RNG.
	ErrNeedRandSource = errors.New("instance: random source is required")
)
