package engine

import (
	"fmt"

	"github.com/ramandeep-singh77/glassbox/heuristic"
)

// Option configures a trace run via functional arguments. An invalid
// Option (unknown algorithm, negative weight) is recorded internally and
// surfaced as ErrOptionViolation when BuildTrace is invoked.
type Option func(*Options)

// Options holds the tunable parameters of one run.
type Options struct {
	// Algorithm picks the search strategy. Defaults to AlgoBFS.
	Algorithm Algorithm

	// Heuristic names the estimate steering A*. Unknown names fall back
	// to manhattan at run time rather than failing.
	Heuristic string

	// HeuristicWeight multiplies the heuristic term in A*'s priority.
	// 1 is standard; 0 degenerates A* to Dijkstra; above 1 trades
	// optimality for speed.
	HeuristicWeight float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Algorithm: AlgoBFS
//   - Heuristic: manhattan
//   - HeuristicWeight: 1 (standard A*)
func DefaultOptions() Options {
	return Options{
		Algorithm:       AlgoBFS,
		Heuristic:       heuristic.IDManhattan,
		HeuristicWeight: 1,
		err:             nil,
	}
}

// WithAlgorithm selects the search strategy. Anything outside the four
// supported names is an option violation.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if _, ok := strategies[a]; !ok {
			o.err = fmt.Errorf("%w: unknown algorithm %q", ErrOptionViolation, a)
			return
		}
		o.Algorithm = a
	}
}

// WithHeuristic names the heuristic for A*. The name is recorded as given;
// resolution (including the manhattan fallback for unknown names) happens
// when the run starts.
func WithHeuristic(id string) Option {
	return func(o *Options) {
		if id != "" {
			o.Heuristic = id
		}
	}
}

// WithHeuristicWeight sets the heuristic multiplier.
//
//	w > 1:  greedier, faster, possibly suboptimal
//	w == 1: standard A*
//	w == 0: degenerates A* to Dijkstra
//	w < 0:  invalid option, surfaces as ErrOptionViolation
func WithHeuristicWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: heuristic weight cannot be negative (%v)", ErrOptionViolation, w)
			return
		}
		o.HeuristicWeight = w
	}
}
