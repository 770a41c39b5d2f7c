// Package env defines core types and sentinel errors for the environment
// adapters of github.com/ramandeep-singh77/glassbox.
package env

import (
	"errors"
)

// Sentinel errors for environment construction.
var (
	// ErrBadDimensions indicates a grid width or height below one.
	ErrBadDimensions = errors.New("env: grid dimensions must be at least 1x1")
	// ErrNegativeCost indicates an edge with a negative cost.
	ErrNegativeCost = errors.New("env: edge costs must be non-negative")
	// ErrNoNodes indicates a graph constructed with an empty node set.
	ErrNoNodes = errors.New("env: graph must contain at least one node")
)

// CostMode declares how an environment prices its moves.
type CostMode int

const (
	// CostUnit means every move costs exactly 1 (grid worlds).
	CostUnit CostMode = iota
	// CostWeighted means moves carry per-edge real-valued costs.
	CostWeighted
)

// String returns the lowercase name of the cost mode.
func (m CostMode) String() string {
	if m == CostWeighted {
		return "weighted"
	}
	return "unit"
}

// Coordinate is a point in the plane, used for heuristics and rendering only.
// Node identity lives in the key, never here.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Neighbor is one outgoing move from a node: the destination key and the
// cost of taking it.
type Neighbor struct {
	Key  string  `json:"key"`
	Cost float64 `json:"cost"`
}

// Environment is the uniform world surface the search driver explores.
// Implementations are immutable after construction and safe for
// concurrent readers.
//
// Neighbors must return moves in a deterministic order for identical
// construction input; the whole trace's reproducibility rests on it.
type Environment interface {
	// Coordinate resolves a node key to its position. Unknown keys yield
	// the zero Coordinate, never an error.
	Coordinate(key string) Coordinate
	// Neighbors lists the legal moves out of key, in deterministic order.
	// Unknown or blocked keys yield no moves.
	Neighbors(key string) []Neighbor
	// CostMode reports whether moves are unit-priced or weighted.
	CostMode() CostMode
	// Size returns the number of cells or nodes, the basis for the
	// driver's exploration bound.
	Size() int
}
