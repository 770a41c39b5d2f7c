package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ramandeep-singh77/glassbox/engine"
	"github.com/ramandeep-singh77/glassbox/render"
)

var compareFlags struct {
	search     searchFlags
	algorithms []string
	markdown   bool
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run several algorithms on one scenario side by side",
	Long: `Run the same scenario under multiple algorithms, one goroutine each,
and print a side-by-side metrics table. Every run gets its own copy of
the world, so the results are the same as running them one at a time.

Usage:
  glassbox compare --scenario=walled-garden
  glassbox compare --scenario=toll-roads --algorithms=dijkstra,astar`,
	RunE: runCompare,
}

func init() {
	registerSearchFlags(compareCmd, &compareFlags.search)
	f := compareCmd.Flags()
	f.StringSliceVar(&compareFlags.algorithms, "algorithms",
		[]string{"bfs", "dfs", "dijkstra", "astar"}, "Algorithms to race")
	f.BoolVar(&compareFlags.markdown, "markdown", false, "Print the table as Markdown")
}

func runCompare(cmd *cobra.Command, _ []string) error {
	algos := compareFlags.algorithms
	if len(algos) == 0 {
		return fmt.Errorf("--algorithms needs at least one entry")
	}

	traces := make([]*engine.Trace, len(algos))
	g, _ := errgroup.WithContext(cmd.Context())
	for i, algo := range algos {
		g.Go(func() error {
			flags := compareFlags.search
			flags.algorithm = algo
			tr, _, _, err := buildTrace(cmd, flags)
			if err != nil {
				return fmt.Errorf("%s: %w", algo, err)
			}
			traces[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	mode := render.ASCII
	if compareFlags.markdown {
		mode = render.Markdown
	}
	fmt.Println(render.MetricsTable(mode, traces...))

	return nil
}
