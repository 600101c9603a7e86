// Command lvcolor solves, generates and benchmarks 4-coloring instances.
//
// Usage:
//
//	lvcolor solve size11_instance.csv --algo nature
//	lvcolor generate --family cubic --n 20
//	lvcolor experiment plans/inertia.json
//
// Problem files are read from --problems (default problem-instances),
// solutions are written to --solved (default solved-instances).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvcolor/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, logging.New).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lvcolor:", err)
		stop()
		os.Exit(1)
	}
}
