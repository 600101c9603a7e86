// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcolor/coloring"
)

// Default directory layout, relative to the working directory.
const (
	DefaultProblemDir = "problem-instances"
	DefaultSolvedDir  = "solved-instances"

	// SolvedPrefix is prepended to the problem basename to name its solution.
	SolvedPrefix = "solved_"
)

// Store resolves problem and solution files under two directories.
type Store struct {
	ProblemDir string
	SolvedDir  string
}

// NewStore returns a Store; empty arguments select the default directories.
func NewStore(problemDir, solvedDir string) Store {
	if problemDir == "" {
		problemDir = DefaultProblemDir
	}
	if solvedDir == "" {
		solvedDir = DefaultSolvedDir
	}

	return Store{ProblemDir: problemDir, SolvedDir: solvedDir}
}

// ProblemPath returns the path of the named problem file.
func (s Store) ProblemPath(name string) string {
	return filepath.Join(s.ProblemDir, name)
}

// SolutionPath returns the path of the solution for the named problem.
func (s Store) SolutionPath(name string) string {
	return filepath.Join(s.SolvedDir, SolvedPrefix+filepath.Base(name))
}

// Load reads the named problem file.
func (s Store) Load(name string, opts ...LoadOption) (*Table, error) {
	return LoadCSV(s.ProblemPath(name), opts...)
}

// SaveSolution writes c as the solution of the named problem, creating
// SolvedDir when needed, and returns the written path.
func (s Store) SaveSolution(name string, c coloring.Coloring) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.SolvedDir, 0o755); err != nil {
		return "", fmt.Errorf("SaveSolution: %w", err)
	}

	path := s.SolutionPath(name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("SaveSolution: %w", err)
	}
	if err = WriteSolution(f, c); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("SaveSolution: %w", err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("SaveSolution: %w", err)
	}

	return path, nil
}

// LoadSolution reads back the solution of the named problem.
func (s Store) LoadSolution(name string) (coloring.Coloring, error) {
	path := s.SolutionPath(name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("LoadSolution %q: %w", path, ErrSolutionNotFound)
		}
		return nil, fmt.Errorf("LoadSolution %q: %w", path, err)
	}
	defer f.Close()

	return ReadSolution(f)
}

// WriteSolution writes c as one comma-separated row terminated by '\n'.
func WriteSolution(w io.Writer, c coloring.Coloring) error {
	cells := make([]string, len(c))
	for i, l := range c {
		cells[i] = strconv.Itoa(l)
	}
	_, err := io.WriteString(w, strings.Join(cells, ",")+"\n")

	return err
}

// ReadSolution parses the first non-blank line of r as a coloring. Input
// made only of blank lines is the order-0 coloring written by WriteSolution;
// input without any line is ErrEmptyInstance.
func ReadSolution(r io.Reader) (coloring.Coloring, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	blank := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			blank = true
			continue
		}
		fields := strings.Split(line, ",")
		c := make(coloring.Coloring, len(fields))
		for i, fld := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(fld))
			if err != nil {
				return nil, fmt.Errorf("ReadSolution: cell %d %q: %w", i, fld, ErrMalformed)
			}
			c[i] = v
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}

		return c, nil
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadSolution: %w", err)
	}
	if blank {
		return coloring.Coloring{}, nil
	}

	return nil, fmt.Errorf("ReadSolution: %w", ErrEmptyInstance)
}
