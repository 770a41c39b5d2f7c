package env

import (
	"fmt"
)

// Node is one vertex of a weighted graph: an identifier plus a position for
// heuristics and rendering.
type Node struct {
	ID string  `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

// Edge is one connection with a non-negative real-valued cost. In an
// undirected graph each edge is traversable both ways.
type Edge struct {
	From string  `json:"from" yaml:"from"`
	To   string  `json:"to" yaml:"to"`
	Cost float64 `json:"cost" yaml:"cost"`
}

// Graph is an explicit weighted graph. Adjacency is built once at
// construction, in edge-list order, so identical input yields identical
// neighbor ordering on every run. Immutable once built.
type Graph struct {
	directed     bool
	coords       map[string]Coordinate
	adjacency    map[string][]Neighbor
	size         int
	droppedEdges int
}

// NewGraph constructs a Graph from an explicit node set and edge list.
// Duplicate node IDs keep the first occurrence. Edges referencing a node
// that is not in the set are dropped and counted (see DroppedEdges), on
// the view that a half-specified edge is bad data, not a fatal input.
// A negative edge cost is different: it would silently break every
// cost-aware search, so it fails construction with ErrNegativeCost.
func NewGraph(directed bool, nodes []Node, edges []Edge) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}
	g := &Graph{
		directed:  directed,
		coords:    make(map[string]Coordinate, len(nodes)),
		adjacency: make(map[string][]Neighbor, len(nodes)),
	}
	for _, n := range nodes {
		if _, seen := g.coords[n.ID]; seen {
			continue
		}
		g.coords[n.ID] = Coordinate{X: n.X, Y: n.Y}
		g.size++
	}
	for _, e := range edges {
		if e.Cost < 0 {
			return nil, fmt.Errorf("%w: edge %s->%s has cost %v", ErrNegativeCost, e.From, e.To, e.Cost)
		}
		_, fromOK := g.coords[e.From]
		_, toOK := g.coords[e.To]
		if !fromOK || !toOK {
			g.droppedEdges++
			continue
		}
		g.adjacency[e.From] = append(g.adjacency[e.From], Neighbor{Key: e.To, Cost: e.Cost})
		if !directed {
			g.adjacency[e.To] = append(g.adjacency[e.To], Neighbor{Key: e.From, Cost: e.Cost})
		}
	}

	return g, nil
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// DroppedEdges returns how many input edges were discarded because an
// endpoint was missing from the node set.
func (g *Graph) DroppedEdges() int { return g.droppedEdges }

// Coordinate resolves a node ID to its position. Unknown IDs resolve to
// the zero Coordinate.
func (g *Graph) Coordinate(key string) Coordinate {
	return g.coords[key]
}

// Neighbors returns a fresh copy of the adjacency list for key, preserving
// construction order. Callers may hold or mutate the returned slice freely.
func (g *Graph) Neighbors(key string) []Neighbor {
	adj := g.adjacency[key]
	if len(adj) == 0 {
		return nil
	}
	out := make([]Neighbor, len(adj))
	copy(out, adj)

	return out
}

// CostMode reports CostWeighted.
func (g *Graph) CostMode() CostMode { return CostWeighted }

// Size returns the number of distinct nodes.
func (g *Graph) Size() int { return g.size }
