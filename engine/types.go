// Package engine defines the trace data model, options, and sentinel errors
// for the search driver of github.com/ramandeep-singh77/glassbox.
package engine

import (
	"errors"

	"github.com/ramandeep-singh77/glassbox/env"
	"github.com/ramandeep-singh77/glassbox/frontier"
)

// Sentinel errors for trace construction.
var (
	// ErrNilEnvironment is returned when no environment is supplied.
	ErrNilEnvironment = errors.New("engine: environment is nil")

	// ErrEmptyKey is returned when the start or goal key is empty.
	ErrEmptyKey = errors.New("engine: start and goal keys must be non-empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("engine: invalid option supplied")
)

// Algorithm names one of the four supported search strategies.
type Algorithm string

const (
	// AlgoBFS explores in breadth-first order over a FIFO queue.
	AlgoBFS Algorithm = "bfs"
	// AlgoDFS explores in depth-first order over a LIFO stack.
	AlgoDFS Algorithm = "dfs"
	// AlgoDijkstra explores in order of cheapest cost-so-far over a min-heap.
	AlgoDijkstra Algorithm = "dijkstra"
	// AlgoAStar explores in order of cost-so-far plus weighted heuristic.
	AlgoAStar Algorithm = "astar"
)

// Algorithms returns the supported algorithm names in a fixed order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoBFS, AlgoDFS, AlgoDijkstra, AlgoAStar}
}

// Phase labels the event a snapshot records.
type Phase string

const (
	// PhaseInit is the seeded state before any selection.
	PhaseInit Phase = "init"
	// PhaseSelect records which candidate was chosen and why.
	PhaseSelect Phase = "select"
	// PhaseExpand records a node being closed and its neighbors examined.
	PhaseExpand Phase = "expand"
	// PhaseRelax records a cost improvement to a neighbor.
	PhaseRelax Phase = "relax"
	// PhaseEnqueue records a candidate entering the frontier.
	PhaseEnqueue Phase = "enqueue"
	// PhaseFound records goal selection; it terminates the run.
	PhaseFound Phase = "found"
	// PhaseExhausted records the iteration cap cutting the run short.
	PhaseExhausted Phase = "exhausted"
)

// Metric names the number a comparison was made on.
type Metric string

const (
	// MetricDepth is hop count from the start (unweighted strategies).
	MetricDepth Metric = "depth"
	// MetricG is best-known cost from the start.
	MetricG Metric = "g"
	// MetricF is cost-so-far plus weighted heuristic estimate.
	MetricF Metric = "f"
)

// Policy names the rule that picked a candidate.
type Policy string

const (
	// PolicyFIFO took the oldest frontier entry.
	PolicyFIFO Policy = "fifo"
	// PolicyLIFO took the newest frontier entry.
	PolicyLIFO Policy = "lifo"
	// PolicyMin took the entry with the smallest metric value.
	PolicyMin Policy = "min"
	// PolicyGoal stopped because the selected key is the goal.
	PolicyGoal Policy = "goal"
)

// SelectionReason explains a selection. Metric and Value are meaningful
// only under PolicyMin; fifo, lifo, and goal need no number.
type SelectionReason struct {
	Policy Policy  `json:"policy"`
	Metric Metric  `json:"metric,omitempty"`
	Value  float64 `json:"value"`
}

// RejectionReason explains why one near-miss candidate lost to the chosen
// item. CandidateValue never equals ChosenValue: an exact tie carries no
// explanatory content and is not reported.
type RejectionReason struct {
	Candidate      frontier.Item `json:"candidate"`
	Chosen         frontier.Item `json:"chosen"`
	Metric         Metric        `json:"metric"`
	CandidateValue float64       `json:"candidateValue"`
	ChosenValue    float64       `json:"chosenValue"`
}

// RelaxationEvent records a cost improvement along one edge. OldG is nil
// on first discovery. Improved is always true in emitted events; edges
// that fail to improve produce no event at all.
type RelaxationEvent struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	OldG     *float64 `json:"oldG"`
	NewG     float64  `json:"newG"`
	Improved bool     `json:"improved"`
}

// StepSnapshot is the atomic unit of replay: the full search state at one
// instant. Every map and slice is an independent copy taken at emission,
// so later mutation of the live working sets never alters an emitted
// snapshot. Index increases by exactly one per snapshot.
type StepSnapshot struct {
	Index        int                `json:"index"`
	Phase        Phase              `json:"phase"`
	Key          string             `json:"key,omitempty"`
	Coord        env.Coordinate     `json:"coord"`
	FrontierKind frontier.Kind      `json:"frontierKind"`
	Frontier     []frontier.Item    `json:"frontier"`
	Visited      map[string]bool    `json:"visited"`
	Closed       map[string]bool    `json:"closed"`
	Parent       map[string]string  `json:"parent"`
	CostSoFar    map[string]float64 `json:"costSoFar"`
	Selected     *frontier.Item     `json:"selected,omitempty"`
	Reason       *SelectionReason   `json:"reason,omitempty"`
	Rejections   []RejectionReason  `json:"rejections,omitempty"`
	Relaxation   *RelaxationEvent   `json:"relaxation,omitempty"`
	Path         []env.Coordinate   `json:"path,omitempty"`
	Warnings     []string           `json:"warnings,omitempty"`
}

// Metrics aggregates a finished run.
type Metrics struct {
	// Explored is the closed-set size at termination.
	Explored int `json:"explored"`
	// Relaxations counts cost improvements (cost-aware strategies only).
	Relaxations int `json:"relaxations"`
	// PeakFrontier is the largest frontier seen in any snapshot.
	PeakFrontier int `json:"peakFrontier"`
	// PeakClosed is the largest closed set seen in any snapshot.
	PeakClosed int `json:"peakClosed"`
	// Steps is the total snapshot count.
	Steps int `json:"steps"`
}

// Trace is the complete, replayable record of one search run: the options
// that shaped it, every snapshot in order, and the outcome. It is produced
// in full by one BuildTrace call and read-only afterwards; playback is
// plain indexing into Steps.
type Trace struct {
	Algorithm    Algorithm        `json:"algorithm"`
	Heuristic    string           `json:"heuristic"`
	Weight       float64          `json:"weight"`
	Start        string           `json:"start"`
	Goal         string           `json:"goal"`
	FrontierKind frontier.Kind    `json:"frontierKind"`
	Steps        []StepSnapshot   `json:"steps"`
	Found        bool             `json:"found"`
	Path         []env.Coordinate `json:"path"`
	Metrics      Metrics          `json:"metrics"`
}
