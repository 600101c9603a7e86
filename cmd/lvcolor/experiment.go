package main

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/experiment"
	"github.com/spf13/cobra"
)

func newExperimentCmd(a *app) *cobra.Command {
	var resultsDir string

	cmd := &cobra.Command{
		Use:   "experiment <plan>",
		Short: "Run a parameter sweep described by a JSON or YAML plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := experiment.NewRunner()
			r.Store = a.store()
			r.ResultsDir = resultsDir
			r.Logger = a.log
			r.Metrics = a.metrics

			rep, path, err := r.RunFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "run %s: %d rows written to %s\n", rep.RunID, len(rep.Rows), path)

			return nil
		},
	}
	cmd.Flags().StringVar(&resultsDir, "results", experiment.DefaultResultsDir, "directory receiving reports")

	return cmd
}
