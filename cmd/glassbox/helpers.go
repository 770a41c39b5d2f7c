package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramandeep-singh77/glassbox/catalog"
	"github.com/ramandeep-singh77/glassbox/engine"
	"github.com/ramandeep-singh77/glassbox/env"
)

// searchFlags are the per-run settings shared by run, compare, and play.
type searchFlags struct {
	scenario  string
	algorithm string
	heuristic string
	weight    float64
}

func registerSearchFlags(cmd *cobra.Command, f *searchFlags) {
	fl := cmd.Flags()
	fl.StringVarP(&f.scenario, "scenario", "s", "", "Preset scenario name (see 'glassbox scenarios')")
	fl.StringVar(&f.heuristic, "heuristic", "", "Heuristic override for A*: manhattan or euclidean")
	fl.Float64Var(&f.weight, "weight", 1, "Heuristic weight for A* (>1 trades optimality for speed)")
}

func registerAlgorithmFlag(cmd *cobra.Command, f *searchFlags) {
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "Algorithm override: bfs, dfs, dijkstra, astar")
}

// resolveScenario loads the preset and applies the flag overrides.
// Validation runs after the overrides so a broken combination fails here,
// not mid-run.
func resolveScenario(cmd *cobra.Command, f searchFlags) (*catalog.Scenario, error) {
	if f.scenario == "" {
		return nil, fmt.Errorf("--scenario is required (see 'glassbox scenarios' for the preset list)")
	}
	s, err := catalog.Load(f.scenario)
	if err != nil {
		return nil, err
	}
	if f.algorithm != "" {
		s.Algorithm = f.algorithm
	}
	if f.heuristic != "" {
		s.Heuristic = f.heuristic
	}
	if cmd.Flags().Changed("weight") {
		w := f.weight
		s.Weight = &w
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// buildTrace resolves the scenario and runs the search once.
func buildTrace(cmd *cobra.Command, f searchFlags) (*engine.Trace, env.Environment, *catalog.Scenario, error) {
	s, err := resolveScenario(cmd, f)
	if err != nil {
		return nil, nil, nil, err
	}
	world, err := s.Environment()
	if err != nil {
		return nil, nil, nil, err
	}
	tr, err := engine.BuildTrace(world, s.Start, s.Goal, s.Options()...)
	if err != nil {
		return nil, nil, nil, err
	}

	return tr, world, s, nil
}
