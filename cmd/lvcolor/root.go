package main

import (
	"errors"
	"io"

	"github.com/katalvlaran/lvcolor/instance"
	"github.com/katalvlaran/lvcolor/internal/metrics"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Flag value errors.
var (
	ErrUnknownAlgorithm = errors.New("lvcolor: unknown algorithm")
	ErrUnknownFamily    = errors.New("lvcolor: unknown graph family")
)

// loggerFactory builds the command logger from the --verbose flag.
type loggerFactory func(verbose bool) (*zap.Logger, error)

// app is the state shared by all subcommands.
type app struct {
	out       io.Writer
	newLogger loggerFactory

	verbose    bool
	problemDir string
	solvedDir  string
	metricsOut string

	log     *zap.Logger
	metrics *metrics.Collector
}

func (a *app) store() instance.Store {
	return instance.NewStore(a.problemDir, a.solvedDir)
}

func newRootCmd(out io.Writer, newLogger loggerFactory) *cobra.Command {
	a := &app{out: out, newLogger: newLogger, log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "lvcolor",
		Short:         "lvcolor - 4-coloring of graphs by particle swarm and reference solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.newLogger(a.verbose)
			if err != nil {
				return err
			}
			a.log = l
			if a.metricsOut != "" {
				a.metrics = metrics.NewCollector("lvcolor")
			}

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			_ = a.log.Sync()
			if a.metrics == nil {
				return nil
			}

			return a.metrics.WriteTextfile(a.metricsOut)
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")
	pf.StringVar(&a.problemDir, "problems", instance.DefaultProblemDir, "directory holding problem files")
	pf.StringVar(&a.solvedDir, "solved", instance.DefaultSolvedDir, "directory receiving solutions")
	pf.StringVar(&a.metricsOut, "metrics", "", "write Prometheus metrics to this textfile")

	root.AddCommand(newSolveCmd(a), newGenerateCmd(a), newExperimentCmd(a))

	return root
}
