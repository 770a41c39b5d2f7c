package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramandeep-singh77/glassbox/env"
	"github.com/ramandeep-singh77/glassbox/narrate"
	"github.com/ramandeep-singh77/glassbox/render"
)

var runFlags struct {
	search   searchFlags
	narrate  bool
	markdown bool
	output   string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one search and print its outcome",
	Long: `Run a preset scenario through one algorithm and print the result:
a metrics summary, the final board for grid worlds, and optionally a
plain-language line for every step the algorithm took.

Usage:
  glassbox run --scenario=walled-garden
  glassbox run --scenario=toll-roads --algorithm=astar --heuristic=euclidean
  glassbox run --scenario=open-field --narrate --output=trace.json`,
	RunE: runRun,
}

func init() {
	registerSearchFlags(runCmd, &runFlags.search)
	registerAlgorithmFlag(runCmd, &runFlags.search)
	f := runCmd.Flags()
	f.BoolVar(&runFlags.narrate, "narrate", false, "Print a narration line per step")
	f.BoolVar(&runFlags.markdown, "markdown", false, "Print the summary table as Markdown")
	f.StringVarP(&runFlags.output, "output", "o", "", "Write the full trace as JSON to this path")
}

func runRun(cmd *cobra.Command, _ []string) error {
	tr, world, s, err := buildTrace(cmd, runFlags.search)
	if err != nil {
		return err
	}

	if runFlags.narrate {
		for _, step := range tr.Steps {
			fmt.Printf("%4d  %s\n", step.Index, narrate.Step(step))
		}
		fmt.Println()
	}

	mode := render.ASCII
	if runFlags.markdown {
		mode = render.Markdown
	}
	fmt.Println(render.MetricsTable(mode, tr))

	if g, ok := world.(*env.Grid); ok && len(tr.Steps) > 0 {
		final := tr.Steps[len(tr.Steps)-1]
		fmt.Println()
		fmt.Println(render.Grid(final, g, s.Start, s.Goal))
	}
	if !tr.Found {
		fmt.Println("\nThe goal was not reached.")
	}

	if runFlags.output != "" {
		data, err := json.MarshalIndent(tr, "", "  ")
		if err != nil {
			return fmt.Errorf("encode trace: %w", err)
		}
		if err := os.WriteFile(runFlags.output, data, 0644); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
		fmt.Printf("\nTrace written to %s (%d steps)\n", runFlags.output, tr.Metrics.Steps)
	}

	return nil
}
