package instance_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolution_RoundTrip persists a coloring and reloads the identical vector.
func TestSolution_RoundTrip(t *testing.T) {
	root := t.TempDir()
	s := instance.NewStore(filepath.Join(root, "problems"), filepath.Join(root, "solved"))
	want := coloring.Coloring{0, 3, 1, 2, 2, 0, 1}

	path, err := s.SaveSolution("size7_instance.csv", want)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "solved", "solved_size7_instance.csv"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0,3,1,2,2,0,1\n", string(raw))

	got, err := s.LoadSolution("size7_instance.csv")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSolution_PathUsesBasename(t *testing.T) {
	s := instance.NewStore("p", "out")
	assert.Equal(t, filepath.Join("out", "solved_g.csv"), s.SolutionPath(filepath.Join("nested", "g.csv")))
}

func TestSolution_Errors(t *testing.T) {
	s := instance.NewStore(t.TempDir(), t.TempDir())

	_, err := s.LoadSolution("nope.csv")
	assert.ErrorIs(t, err, instance.ErrSolutionNotFound)

	_, err = s.SaveSolution("bad.csv", coloring.Coloring{0, 7})
	assert.ErrorIs(t, err, coloring.ErrLabelOutOfRange)

	_, err = instance.ReadSolution(strings.NewReader("0,a,1\n"))
	assert.ErrorIs(t, err, instance.ErrMalformed)

	_, err = instance.ReadSolution(strings.NewReader("0,9\n"))
	assert.ErrorIs(t, err, coloring.ErrLabelOutOfRange)

	_, err = instance.ReadSolution(strings.NewReader(""))
	assert.ErrorIs(t, err, instance.ErrEmptyInstance)
}

func TestWriteSolution_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, instance.WriteSolution(&buf, coloring.Coloring{}))
	assert.Equal(t, "\n", buf.String())

	got, err := instance.ReadSolution(&buf)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSolution_RoundTripOrderZero(t *testing.T) {
	root := t.TempDir()
	s := instance.NewStore(filepath.Join(root, "problems"), filepath.Join(root, "solved"))

	_, err := s.SaveSolution("size0_instance.csv", coloring.Coloring{})
	require.NoError(t, err)
	got, err := s.LoadSolution("size0_instance.csv")
	require.NoError(t, err)
	assert.Equal(t, coloring.Coloring{}, got)
}
