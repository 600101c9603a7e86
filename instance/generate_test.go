package instance_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcolor/graph"
	"github.com/katalvlaran/lvcolor/instance"
	"github.com/katalvlaran/lvcolor/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connected reports whether every vertex is reachable from vertex 0.
func connected(g *graph.Instance) bool {
	n := g.Order()
	if n == 0 {
		return true
	}
	seen := make([]bool, n)
	stack := []int{0}
	seen[0] = true
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		g.EachNeighbor(v, func(u int) {
			if !seen[u] {
				seen[u] = true
				stack = append(stack, u)
			}
		})
	}
	for _, s := range seen {
		if !s {
			return false
		}
	}

	return true
}

func TestCubicPlanar_Regularity(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for n := 4; n <= 40; n += 2 {
		g, err := instance.CubicPlanar(n, r)
		require.NoError(t, err)
		require.Equal(t, n, g.Order())
		require.True(t, g.IsSymmetric())
		require.Equal(t, 3*n/2, g.EdgeCount(), "n=%d", n)
		for v := 0; v < n; v++ {
			d, err := g.Degree(v)
			require.NoError(t, err)
			require.Equal(t, 3, d, "n=%d v=%d", n, v)
			require.False(t, g.HasEdge(v, v))
		}
		require.True(t, connected(g))
	}
}

// TestCubicPlanar_FourColorable: planar graphs are 4-colorable, so the
// brute-force oracle must reach fitness 0 on small generated instances.
func TestCubicPlanar_FourColorable(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for n := 4; n <= 10; n += 2 {
		g, err := instance.CubicPlanar(n, r)
		require.NoError(t, err)

		res, err := reference.BruteForce(g)
		require.NoError(t, err)
		require.Zero(t, res.Fitness, "n=%d", n)
	}
}

func TestGenerators_Domains(t *testing.T) {
	_, err := instance.CubicPlanar(5, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, instance.ErrInvalidOrder)
	_, err = instance.CubicPlanar(8, nil)
	assert.ErrorIs(t, err, instance.ErrNeedRandSource)
	_, err = instance.Cycle(2)
	assert.ErrorIs(t, err, instance.ErrInvalidOrder)
	_, err = instance.Complete(0)
	assert.ErrorIs(t, err, instance.ErrInvalidOrder)
	_, err = instance.RandomSparse(4, 1.5, nil)
	assert.ErrorIs(t, err, instance.ErrInvalidProbability)
	_, err = instance.RandomSparse(4, 0.5, nil)
	assert.ErrorIs(t, err, instance.ErrNeedRandSource)

	k, err := instance.RandomSparse(5, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, k.EdgeCount())

	c, err := instance.Cycle(6)
	require.NoError(t, err)
	assert.Equal(t, 6, c.EdgeCount())

	k4, err := instance.Complete(4)
	require.NoError(t, err)
	assert.Equal(t, 6, k4.EdgeCount())
}

func TestRandomSparse_SeedDeterminism(t *testing.T) {
	a, err := instance.RandomSparse(20, 0.3, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	b, err := instance.RandomSparse(20, 0.3, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	assert.Equal(t, a.Rows(), b.Rows())
}

// TestWriteCSV_RoundTrip writes generated instances and reads them back with
// the matching framing.
func TestWriteCSV_RoundTrip(t *testing.T) {
	g, err := instance.CubicPlanar(12, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	for _, header := range []bool{true, false} {
		var buf bytes.Buffer
		require.NoError(t, instance.WriteCSV(&buf, g, header))

		tbl, err := instance.ReadCSV(&buf, instance.WithHeaderRow(header))
		require.NoError(t, err)
		assert.Equal(t, g.Rows(), tbl.Instance.Rows())
	}

	assert.Equal(t, "size12_instance.csv", instance.FileName(12))
	assert.ErrorIs(t, instance.WriteCSV(&bytes.Buffer{}, nil, true), graph.ErrNilInstance)
}
