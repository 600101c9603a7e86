package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/graph"
	"github.com/katalvlaran/lvcolor/instance"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Generator family names accepted by --family.
const (
	familyCubic    = "cubic"
	familyComplete = "complete"
	familyCycle    = "cycle"
	familyRandom   = "random"
)

type generateFlags struct {
	family string
	n      int
	p      float64
	seed   int64
	header bool
}

func newGenerateCmd(a *app) *cobra.Command {
	f := generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic problem file into the problems directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.family, "family", familyCubic, "graph family: cubic, complete, cycle or random")
	fl.IntVar(&f.n, "n", 10, "number of vertices")
	fl.Float64Var(&f.p, "p", 0.3, "edge probability for --family random")
	fl.Int64Var(&f.seed, "seed", coloring.DefaultSeed, "random seed")
	fl.BoolVar(&f.header, "header", true, "write a label row before the matrix")

	return cmd
}

func (a *app) generate(f generateFlags) error {
	var (
		g   *graph.Instance
		err error
		rng = coloring.NewRNG(f.seed)
	)
	switch f.family {
	case familyCubic:
		g, err = instance.CubicPlanar(f.n, rng)
	case familyComplete:
		g, err = instance.Complete(f.n)
	case familyCycle:
		g, err = instance.Cycle(f.n)
	case familyRandom:
		g, err = instance.RandomSparse(f.n, f.p, rng)
	default:
		return fmt.Errorf("--family %q: %w", f.family, ErrUnknownFamily)
	}
	if err != nil {
		return err
	}

	dir := a.store().ProblemDir
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	path := filepath.Join(dir, instance.FileName(f.n))
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err = instance.WriteCSV(out, g, f.header); err != nil {
		_ = out.Close()
		return fmt.Errorf("generate: %w", err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	a.log.Info("instance generated",
		zap.String("family", f.family),
		zap.Int("order", g.Order()),
		zap.Int("edges", g.EdgeCount()),
		zap.String("path", path))
	fmt.Fprintf(a.out, "wrote %s (%d vertices, %d edges)\n", path, g.Order(), g.EdgeCount())

	return nil
}
