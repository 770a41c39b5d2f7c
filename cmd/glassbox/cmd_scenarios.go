package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ramandeep-singh77/glassbox/catalog"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios [name]",
	Short: "List the embedded scenarios, or describe one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScenarios,
}

func runScenarios(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return describeScenario(args[0])
	}

	all, err := catalog.All()
	if err != nil {
		return err
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Kind", "Algorithm", "Title"})
	for _, s := range all {
		algo := s.Algorithm
		if algo == "" {
			algo = "-"
		}
		t.AppendRow(table.Row{s.Name, s.Kind, algo, s.Title})
	}
	fmt.Println(t.Render())

	return nil
}

func describeScenario(name string) error {
	s, err := catalog.Load(name)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", s.Title, s.Name)
	if s.Description != "" {
		fmt.Printf("\n%s\n", s.Description)
	}
	fmt.Println()
	fmt.Printf("kind:       %s\n", s.Kind)
	fmt.Printf("start:      %s\n", s.Start)
	fmt.Printf("goal:       %s\n", s.Goal)
	if s.Algorithm != "" {
		fmt.Printf("algorithm:  %s\n", s.Algorithm)
	}
	if s.Heuristic != "" {
		fmt.Printf("heuristic:  %s\n", s.Heuristic)
	}
	if s.Weight != nil {
		fmt.Printf("weight:     %g\n", *s.Weight)
	}
	switch {
	case s.Grid != nil:
		fmt.Printf("world:      %dx%d grid, %d walls\n", s.Grid.Width, s.Grid.Height, len(s.Grid.Walls))
	case s.Graph != nil:
		fmt.Printf("world:      graph, %d nodes, %d edges\n", len(s.Graph.Nodes), len(s.Graph.Edges))
	}

	return nil
}
