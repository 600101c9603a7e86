package coloring

import (
	"errors"
	"fmt"
)

// NumColors is the size of the label alphabet. Labels are 0..NumColors-1.
const NumColors = 4

// Sentinel errors for coloring validation and evaluation.
var (
	// ErrNilInstance indicates that a nil *graph.Instance was supplied.
	ErrNilInstance = errors.New("coloring: instance is nil")

	// ErrLengthMismatch indicates len(coloring) != instance order.
	ErrLengthMismatch = errors.New("coloring: length does not match instance order")

	// ErrLabelOutOfRange indicates a label outside [0, NumColors).
	ErrLabelOutOfRange = errors.New("coloring: label out of range")

	// ErrNoEdges indicates SuccessRate was requested on a graph without edges.
	ErrNoEdges = errors.New("coloring: success rate undefined on a graph without edges")
)

// Coloring assigns one label in [0, NumColors) to each vertex, by index.
// Colorings are values: use Clone before handing one to another owner.
type Coloring []int

// New validates labels against order n and returns an independent copy.
func New(labels []int, n int) (Coloring, error) {
	if len(labels) != n {
		return nil, fmt.Errorf("New: len=%d n=%d: %w", len(labels), n, ErrLengthMismatch)
	}
	c := Coloring(append([]int(nil), labels...))
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Zero returns the all-zero coloring of order n.
func Zero(n int) Coloring { return make(Coloring, n) }

// Clone returns an independent copy. Clone of nil is nil.
func (c Coloring) Clone() Coloring {
	if c == nil {
		return nil
	}
	out := make(Coloring, len(c))
	copy(out, c)

	return out
}

// Validate checks that every label lies in [0, NumColors).
func (c Coloring) Validate() error {
	for i, l := range c {
		if l < 0 || l >= NumColors {
			return fmt.Errorf("Validate: vertex %d has label %d: %w", i, l, ErrLabelOutOfRange)
		}
	}

	return nil
}

// Distinct returns the number of different labels used.
func (c Coloring) Distinct() int {
	var (
		seen [NumColors]bool
		k    int
	)
	for _, l := range c {
		if l >= 0 && l < NumColors && !seen[l] {
			seen[l] = true
			k++
		}
	}

	return k
}

// Equal reports whether c and o assign the same labels to the same vertices.
func (c Coloring) Equal(o Coloring) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}

	return true
}
