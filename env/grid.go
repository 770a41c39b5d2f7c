// Package env provides the two world adapters the search driver runs over:
// a uniform-cost 2D grid with walls, and an arbitrary weighted graph with
// node coordinates. Both present the same Environment surface, so every
// algorithm works on either without knowing which it got.
package env

import (
	"fmt"
	"strconv"
	"strings"
)

// gridOffsets are the 4-connected moves in fixed N, E, S, W order.
// Neighbor determinism depends on this order never changing.
var gridOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is a width x height board of unit-cost cells, some of them walls.
// Cells are addressed by the key "x,y" with x growing east and y growing
// south. Immutable once built.
type Grid struct {
	width, height int
	walls         map[string]struct{}
}

// NewGrid constructs a Grid. Wall entries use the same "x,y" key scheme as
// every other cell reference; entries that name no real cell (malformed or
// out of range) are kept but can never match, so they are effectively
// ignored. Returns ErrBadDimensions when either dimension is below one.
func NewGrid(width, height int, walls []string) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}
	ws := make(map[string]struct{}, len(walls))
	for _, w := range walls {
		ws[w] = struct{}{}
	}

	return &Grid{width: width, height: height, walls: ws}, nil
}

// GridKey formats the canonical key for cell (x,y).
func GridKey(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ParseGridKey inverts GridKey. ok is false for anything that is not two
// integers joined by a single comma.
func ParseGridKey(key string) (x, y int, ok bool) {
	sx, sy, found := strings.Cut(key, ",")
	if !found {
		return 0, 0, false
	}
	x, errX := strconv.Atoi(sx)
	y, errY := strconv.Atoi(sy)
	if errX != nil || errY != nil {
		return 0, 0, false
	}

	return x, y, true
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Wall reports whether cell (x,y) is blocked.
func (g *Grid) Wall(x, y int) bool {
	_, blocked := g.walls[GridKey(x, y)]
	return blocked
}

// Coordinate resolves a cell key to its position. Keys that do not name an
// in-bounds cell resolve to the zero Coordinate.
func (g *Grid) Coordinate(key string) Coordinate {
	x, y, ok := ParseGridKey(key)
	if !ok || !g.InBounds(x, y) {
		return Coordinate{}
	}

	return Coordinate{X: float64(x), Y: float64(y)}
}

// Neighbors returns the in-bounds, non-wall cells adjacent to key in
// N, E, S, W order, each at unit cost. A key that is malformed, out of
// bounds, or itself a wall has no neighbors.
func (g *Grid) Neighbors(key string) []Neighbor {
	x, y, ok := ParseGridKey(key)
	if !ok || !g.InBounds(x, y) || g.Wall(x, y) {
		return nil
	}
	out := make([]Neighbor, 0, len(gridOffsets))
	for _, d := range gridOffsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) || g.Wall(nx, ny) {
			continue
		}
		out = append(out, Neighbor{Key: GridKey(nx, ny), Cost: 1})
	}

	return out
}

// CostMode reports CostUnit: every grid move costs 1.
func (g *Grid) CostMode() CostMode { return CostUnit }

// Size returns width*height, counting walls. The exploration bound scales
// with the board, not with the walkable area.
func (g *Grid) Size() int { return g.width * g.height }
