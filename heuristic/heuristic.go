// Package heuristic provides the distance estimates that steer informed
// search. Every function here is admissible on its matching world: zero at
// the goal, symmetric, and never negative.
//
// Manhattan suits 4-connected grids (it never overestimates when moves are
// axis-aligned and unit-priced). Euclidean suits worlds with real-valued
// coordinates. Callers pick by identifier; unknown identifiers fall back
// to Manhattan rather than failing, so a typo in tooling degrades the
// estimate instead of the run.
package heuristic

import (
	"math"
	"sort"

	"github.com/ramandeep-singh77/glassbox/env"
)

// Func estimates the remaining cost from a to b.
type Func func(a, b env.Coordinate) float64

// Known heuristic identifiers.
const (
	IDManhattan = "manhattan"
	IDEuclidean = "euclidean"
)

// Manhattan returns |dx| + |dy|.
func Manhattan(a, b env.Coordinate) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Euclidean returns the straight-line distance.
func Euclidean(a, b env.Coordinate) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

var registry = map[string]Func{
	IDManhattan: Manhattan,
	IDEuclidean: Euclidean,
}

// ByID resolves an identifier to its heuristic. Unknown identifiers
// resolve to Manhattan.
func ByID(id string) Func {
	if fn, ok := registry[id]; ok {
		return fn
	}

	return Manhattan
}

// Known reports whether id names a registered heuristic.
func Known(id string) bool {
	_, ok := registry[id]
	return ok
}

// IDs returns the registered identifiers in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
