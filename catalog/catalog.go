// Package catalog ships a set of ready-made search scenarios as embedded
// YAML and loads user-supplied ones from the same format. A Scenario
// bundles a world (grid or graph), the start and goal keys, and a
// suggested algorithm, so one name is enough to reproduce a full run.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ramandeep-singh77/glassbox/engine"
	"github.com/ramandeep-singh77/glassbox/env"
)

var (
	// ErrUnknownScenario - requested name has no embedded preset.
	ErrUnknownScenario = errors.New("catalog: unknown scenario")
	// ErrInvalidScenario - scenario fails structural or referential validation.
	ErrInvalidScenario = errors.New("catalog: invalid scenario")
)

//go:embed *.yaml
var presetFS embed.FS

// scenarioValidate holds the struct-tag validator shared by every load.
var scenarioValidate *validator.Validate

func init() {
	scenarioValidate = validator.New()
}

// Scenario is one reproducible search setup. Kind selects which of Grid
// or Graph describes the world; the other must stay empty.
type Scenario struct {
	Name        string     `yaml:"name" json:"name" validate:"required"`
	Title       string     `yaml:"title" json:"title" validate:"required"`
	Description string     `yaml:"description" json:"description,omitempty"`
	Kind        string     `yaml:"kind" json:"kind" validate:"required,oneof=grid graph"`
	Start       string     `yaml:"start" json:"start" validate:"required"`
	Goal        string     `yaml:"goal" json:"goal" validate:"required"`
	Algorithm   string     `yaml:"algorithm" json:"algorithm,omitempty" validate:"omitempty,oneof=bfs dfs dijkstra astar"`
	Heuristic   string     `yaml:"heuristic" json:"heuristic,omitempty"`
	Weight      *float64   `yaml:"weight" json:"weight,omitempty" validate:"omitempty,gte=0"`
	Grid        *GridSpec  `yaml:"grid" json:"grid,omitempty" validate:"required_if=Kind grid,excluded_if=Kind graph"`
	Graph       *GraphSpec `yaml:"graph" json:"graph,omitempty" validate:"required_if=Kind graph,excluded_if=Kind grid"`
}

// GridSpec describes a uniform-cost board.
type GridSpec struct {
	Width  int      `yaml:"width" json:"width" validate:"min=1"`
	Height int      `yaml:"height" json:"height" validate:"min=1"`
	Walls  []string `yaml:"walls" json:"walls,omitempty"`
}

// GraphSpec describes an explicit weighted graph.
type GraphSpec struct {
	Directed bool       `yaml:"directed" json:"directed"`
	Nodes    []env.Node `yaml:"nodes" json:"nodes" validate:"min=1"`
	Edges    []env.Edge `yaml:"edges" json:"edges,omitempty"`
}

// Load reads an embedded scenario by name and validates it.
func Load(name string) (*Scenario, error) {
	data, err := presetFS.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownScenario, name, strings.Join(List(), ", "))
	}

	return Parse(data)
}

// Parse decodes one scenario from YAML and validates it. This is the
// entry point for user-supplied scenario files; embedded presets go
// through the same gate.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// List returns the names of all embedded scenarios, sorted.
func List() []string {
	entries, _ := presetFS.ReadDir(".")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)

	return names
}

// All loads every embedded scenario, sorted by name. Embedded presets are
// part of the build, so a preset that fails to load is a programming
// error, not an input error; All still reports it rather than panicking.
func All() ([]*Scenario, error) {
	names := List()
	out := make([]*Scenario, 0, len(names))
	for _, name := range names {
		s, err := Load(name)
		if err != nil {
			return nil, fmt.Errorf("embedded scenario %q: %w", name, err)
		}
		out = append(out, s)
	}

	return out, nil
}

// Validate checks the scenario structurally (tags) and referentially:
// the start and goal must name real, walkable places in the world.
func (s *Scenario) Validate() error {
	if err := scenarioValidate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	switch s.Kind {
	case "grid":
		return s.validateGridRefs()
	case "graph":
		return s.validateGraphRefs()
	}

	return nil
}

func (s *Scenario) validateGridRefs() error {
	walls := make(map[string]struct{}, len(s.Grid.Walls))
	for _, w := range s.Grid.Walls {
		walls[w] = struct{}{}
	}
	for _, ref := range []struct{ field, key string }{{"start", s.Start}, {"goal", s.Goal}} {
		x, y, ok := env.ParseGridKey(ref.key)
		if !ok {
			return fmt.Errorf("%w: %s %q is not an x,y cell key", ErrInvalidScenario, ref.field, ref.key)
		}
		if x < 0 || x >= s.Grid.Width || y < 0 || y >= s.Grid.Height {
			return fmt.Errorf("%w: %s %q is outside the %dx%d board",
				ErrInvalidScenario, ref.field, ref.key, s.Grid.Width, s.Grid.Height)
		}
		if _, blocked := walls[ref.key]; blocked {
			return fmt.Errorf("%w: %s %q is a wall", ErrInvalidScenario, ref.field, ref.key)
		}
	}

	return nil
}

func (s *Scenario) validateGraphRefs() error {
	ids := make(map[string]struct{}, len(s.Graph.Nodes))
	for _, n := range s.Graph.Nodes {
		ids[n.ID] = struct{}{}
	}
	for _, ref := range []struct{ field, key string }{{"start", s.Start}, {"goal", s.Goal}} {
		if _, known := ids[ref.key]; !known {
			return fmt.Errorf("%w: %s %q is not a node of the graph", ErrInvalidScenario, ref.field, ref.key)
		}
	}

	return nil
}

// Environment builds the runnable world this scenario describes.
func (s *Scenario) Environment() (env.Environment, error) {
	switch s.Kind {
	case "grid":
		return env.NewGrid(s.Grid.Width, s.Grid.Height, s.Grid.Walls)
	case "graph":
		return env.NewGraph(s.Graph.Directed, s.Graph.Nodes, s.Graph.Edges)
	}

	return nil, fmt.Errorf("%w: kind %q", ErrInvalidScenario, s.Kind)
}

// Options translates the scenario's suggestions into engine options.
// Absent fields contribute nothing, so engine defaults apply.
func (s *Scenario) Options() []engine.Option {
	var opts []engine.Option
	if s.Algorithm != "" {
		opts = append(opts, engine.WithAlgorithm(engine.Algorithm(s.Algorithm)))
	}
	if s.Heuristic != "" {
		opts = append(opts, engine.WithHeuristic(s.Heuristic))
	}
	if s.Weight != nil {
		opts = append(opts, engine.WithHeuristicWeight(*s.Weight))
	}

	return opts
}
