// Package engine runs one of four search strategies over an environment
// and records every decision the algorithm makes as an ordered sequence
// of immutable snapshots.
package engine

import (
	"fmt"

	"github.com/ramandeep-singh77/glassbox/env"
	"github.com/ramandeep-singh77/glassbox/frontier"
	"github.com/ramandeep-singh77/glassbox/heuristic"
)

// Exploration bound: max(minIterations, min(size*iterationsPerNode, iterationCeil)).
// Generous relative to the world size, so correct small-to-medium runs
// never truncate; only reachability or sizing pathologies hit it.
const (
	minIterations     = 100
	iterationCeil     = 10000
	iterationsPerNode = 20
)

// anomalyShare is the fraction of the world size past which frontier
// growth (BFS) or branch depth (DFS) earns a warning.
const anomalyShare = 0.35

// Warning formats attached to snapshots. Warnings never alter control
// flow; they are commentary for the consumer.
const (
	warnIterationCap   = "iteration cap %d reached before the search completed; exploration truncated"
	warnQueueGrowth    = "frontier holds %d of %d world nodes, over the 35%% mark; breadth-first memory is growing fast"
	warnDeepBranch     = "branch depth %d is past 35%% of the world (%d nodes); depth-first is committed to one long corridor"
	warnWeightTradeoff = "heuristic weight %g favors speed over path quality"
	warnWeightedFound  = "path found with heuristic weight %g; optimality is not guaranteed"
)

// BuildTrace runs one complete search and returns its Trace. The run is
// synchronous, single-threaded, and pure: identical environment, keys,
// and options always produce an identical Trace. Ties are broken by
// insertion order, which is itself fixed by the environment's
// deterministic neighbor ordering.
//
// An unreachable goal is not an error: the run ends with Found=false and
// an empty path once the frontier drains. The only hard failures are a
// nil environment (ErrNilEnvironment), an empty start or goal key
// (ErrEmptyKey), and an invalid option (ErrOptionViolation).
func BuildTrace(environment env.Environment, startKey, goalKey string, opts ...Option) (*Trace, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs.
	if environment == nil {
		return nil, ErrNilEnvironment
	}
	if startKey == "" || goalKey == "" {
		return nil, ErrEmptyKey
	}

	// 3) Resolve the heuristic once. Unknown names degrade to manhattan
	//    instead of failing; the trace records what actually steered A*.
	heuristicID := cfg.Heuristic
	if !heuristic.Known(heuristicID) {
		heuristicID = heuristic.IDManhattan
	}

	strat := strategies[cfg.Algorithm]
	sizeBasis := environment.Size()
	d := &driver{
		environment:   environment,
		options:       cfg,
		strat:         strat,
		hfn:           heuristic.ByID(heuristicID),
		start:         startKey,
		goal:          goalKey,
		goalCoord:     environment.Coordinate(goalKey),
		front:         frontier.New(strat.kind),
		visited:       make(map[string]bool),
		closed:        make(map[string]bool),
		parent:        make(map[string]string),
		bestG:         make(map[string]float64),
		sizeBasis:     sizeBasis,
		maxIterations: max(minIterations, min(sizeBasis*iterationsPerNode, iterationCeil)),
	}
	d.run()

	path := d.path
	if path == nil {
		path = []env.Coordinate{}
	}

	return &Trace{
		Algorithm:    cfg.Algorithm,
		Heuristic:    heuristicID,
		Weight:       cfg.HeuristicWeight,
		Start:        startKey,
		Goal:         goalKey,
		FrontierKind: strat.kind,
		Steps:        d.steps,
		Found:        d.found,
		Path:         path,
		Metrics: Metrics{
			Explored:     len(d.closed),
			Relaxations:  d.relaxations,
			PeakFrontier: d.peakFrontier,
			PeakClosed:   d.peakClosed,
			Steps:        len(d.steps),
		},
	}, nil
}

// driver holds the mutable state of a single run. Nothing in here
// survives BuildTrace; the returned Trace owns only copies.
type driver struct {
	environment env.Environment
	options     Options
	strat       strategy
	hfn         heuristic.Func

	start     string
	goal      string
	goalCoord env.Coordinate

	front   frontier.Frontier
	visited map[string]bool
	closed  map[string]bool
	parent  map[string]string
	bestG   map[string]float64

	steps []StepSnapshot
	found bool
	path  []env.Coordinate

	relaxations   int
	peakFrontier  int
	peakClosed    int
	sizeBasis     int
	maxIterations int
}

// run is the state machine: INIT, then SELECT alternating with
// EXPAND/RELAX/ENQUEUE, until FOUND or EXHAUSTED. Exactly one terminal
// state per run.
func (d *driver) run() {
	d.seed()
	for iteration := 0; ; iteration++ {
		if iteration >= d.maxIterations {
			d.emit(StepSnapshot{
				Phase:    PhaseExhausted,
				Warnings: []string{fmt.Sprintf(warnIterationCap, d.maxIterations)},
			})
			return
		}

		current, ok := d.selectNext()
		if !ok {
			// A naturally drained frontier is an ordinary ending, not an
			// anomaly: no exhausted snapshot.
			return
		}
		if d.closed[current.Key] {
			// Stale heap duplicate that slipped past the pop filter.
			// Closed nodes are never re-processed.
			continue
		}

		// Why-not analysis happens at the moment of selection, against
		// the frontier the chosen item just left. Only heap disciplines
		// need it; fifo and lifo order is self-explanatory.
		var rejections []RejectionReason
		if d.strat.kind == frontier.KindHeap {
			rejections = Rejections(d.front.Items(), current, d.strat.metric)
		}

		if current.Key == d.goal {
			d.finish(current, rejections)
			return
		}
		d.emitSelect(current, rejections)
		d.expand(current)
	}
}

// seed pushes the start item, marks it visited at cost 0, and emits the
// init snapshot.
func (d *driver) seed() {
	startCoord := d.environment.Coordinate(d.start)
	item := frontier.Item{Key: d.start, Coord: startCoord}
	if d.strat.costAware {
		if d.strat.usesHeuristic {
			item.H = d.hfn(startCoord, d.goalCoord)
		}
		item.F = d.options.HeuristicWeight * item.H
		item.Priority = d.strat.priority(item)
	}
	d.visited[d.start] = true
	d.bestG[d.start] = 0
	d.front.Push(item)

	d.emit(StepSnapshot{Phase: PhaseInit, Key: d.start, Coord: startCoord})
}

// selectNext pops the next live candidate per the discipline. For heaps
// it filters stale entries: a popped item whose key is already closed, or
// whose carried g exceeds the best known g for that key, is a dominated
// duplicate left behind by a later, cheaper push. Correctness of the
// no-decrease-key heap rests on this filter, not on heap purity.
func (d *driver) selectNext() (frontier.Item, bool) {
	if d.strat.kind != frontier.KindHeap {
		return d.front.Pop()
	}
	for {
		item, ok := d.front.Pop()
		if !ok {
			return frontier.Item{}, false
		}
		if d.closed[item.Key] {
			continue
		}
		if best, known := d.bestG[item.Key]; known && item.G > best {
			continue
		}

		return item, true
	}
}

// emitSelect records a non-goal selection with its reason and why-nots.
func (d *driver) emitSelect(current frontier.Item, rejections []RejectionReason) {
	selected := current
	reason := SelectionReason{Policy: d.strat.policy}
	if d.strat.policy == PolicyMin {
		reason.Metric = d.strat.metric
		reason.Value = metricValue(current, d.strat.metric)
	}
	d.emit(StepSnapshot{
		Phase:      PhaseSelect,
		Key:        current.Key,
		Coord:      current.Coord,
		Selected:   &selected,
		Reason:     &reason,
		Rejections: rejections,
	})
}

// finish reconstructs the path and emits the terminal found snapshot.
func (d *driver) finish(current frontier.Item, rejections []RejectionReason) {
	d.found = true
	d.path = d.buildPath()
	selected := current
	reason := SelectionReason{Policy: PolicyGoal}
	var warnings []string
	if d.weighted() {
		warnings = []string{fmt.Sprintf(warnWeightedFound, d.options.HeuristicWeight)}
	}
	d.emit(StepSnapshot{
		Phase:      PhaseFound,
		Key:        current.Key,
		Coord:      current.Coord,
		Selected:   &selected,
		Reason:     &reason,
		Rejections: rejections,
		Path:       d.path,
		Warnings:   warnings,
	})
}

// expand closes the current node, emits the expand snapshot (twice when
// anomaly warnings fire: once bare, once annotated, same state), then
// walks the neighbors.
func (d *driver) expand(current frontier.Item) {
	d.closed[current.Key] = true
	d.emit(StepSnapshot{Phase: PhaseExpand, Key: current.Key, Coord: current.Coord})
	if warnings := d.anomalies(current); len(warnings) > 0 {
		d.emit(StepSnapshot{Phase: PhaseExpand, Key: current.Key, Coord: current.Coord, Warnings: warnings})
	}

	for _, nb := range d.environment.Neighbors(current.Key) {
		if d.closed[nb.Key] {
			continue
		}
		if d.strat.costAware {
			d.relaxNeighbor(current, nb)
		} else {
			d.discoverNeighbor(current, nb)
		}
	}
}

// anomalies computes the non-fatal warnings for this expansion.
func (d *driver) anomalies(current frontier.Item) []string {
	var warnings []string
	threshold := anomalyShare * float64(d.sizeBasis)
	switch {
	case d.strat.kind == frontier.KindQueue && float64(d.front.Len()) > threshold:
		warnings = append(warnings, fmt.Sprintf(warnQueueGrowth, d.front.Len(), d.sizeBasis))
	case d.strat.kind == frontier.KindStack && float64(current.Depth) > threshold:
		warnings = append(warnings, fmt.Sprintf(warnDeepBranch, current.Depth, d.sizeBasis))
	}
	if d.weighted() {
		warnings = append(warnings, fmt.Sprintf(warnWeightTradeoff, d.options.HeuristicWeight))
	}

	return warnings
}

// discoverNeighbor handles BFS/DFS: first visit wins, costs are
// informational. Emits the enqueue snapshot pair: the discovery (with its
// first-discovery relaxation event, frontier not yet grown), then the
// post-push frontier state.
func (d *driver) discoverNeighbor(current frontier.Item, nb env.Neighbor) {
	if d.visited[nb.Key] {
		return
	}
	d.visited[nb.Key] = true
	d.parent[nb.Key] = current.Key
	g := current.G + 1
	d.bestG[nb.Key] = g
	item := frontier.Item{
		Key:   nb.Key,
		Coord: d.environment.Coordinate(nb.Key),
		Depth: current.Depth + 1,
		G:     g,
	}
	d.emit(StepSnapshot{
		Phase: PhaseEnqueue,
		Key:   nb.Key,
		Coord: item.Coord,
		Relaxation: &RelaxationEvent{
			From:     current.Key,
			To:       nb.Key,
			OldG:     nil,
			NewG:     g,
			Improved: true,
		},
	})
	d.front.Push(item)
	d.emit(StepSnapshot{Phase: PhaseEnqueue, Key: nb.Key, Coord: item.Coord})
}

// relaxNeighbor handles Dijkstra/A*: only strictly improving edges count.
// An improvement updates the books, emits the relax snapshot, pushes a
// fresh heap entry (lazy decrease-key), and emits the enqueue snapshot.
// Non-improving edges are dropped silently: the trace narrates only
// changes that matter.
func (d *driver) relaxNeighbor(current frontier.Item, nb env.Neighbor) {
	cost := nb.Cost
	if d.environment.CostMode() == env.CostUnit {
		cost = 1
	}
	tentative := current.G + cost
	prior, known := d.bestG[nb.Key]
	if known && tentative >= prior {
		return
	}

	d.visited[nb.Key] = true
	d.parent[nb.Key] = current.Key
	d.bestG[nb.Key] = tentative
	d.relaxations++

	coord := d.environment.Coordinate(nb.Key)
	item := frontier.Item{Key: nb.Key, Coord: coord, G: tentative}
	if d.strat.usesHeuristic {
		item.H = d.hfn(coord, d.goalCoord)
	}
	item.F = tentative + d.options.HeuristicWeight*item.H
	item.Priority = d.strat.priority(item)

	var oldG *float64
	if known {
		oldG = floatPtr(prior)
	}
	d.emit(StepSnapshot{
		Phase: PhaseRelax,
		Key:   nb.Key,
		Coord: coord,
		Relaxation: &RelaxationEvent{
			From:     current.Key,
			To:       nb.Key,
			OldG:     oldG,
			NewG:     tentative,
			Improved: true,
		},
	})
	d.front.Push(item)
	d.emit(StepSnapshot{Phase: PhaseEnqueue, Key: nb.Key, Coord: coord})
}

// buildPath walks parent links goal to start and returns the coordinate
// path start to goal. A goal with no recorded chain yields an empty path,
// never a crash.
func (d *driver) buildPath() []env.Coordinate {
	var keys []string
	for cur := d.goal; ; {
		keys = append(keys, cur)
		if cur == d.start {
			break
		}
		prev, ok := d.parent[cur]
		if !ok {
			return []env.Coordinate{}
		}
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	path := make([]env.Coordinate, len(keys))
	for i, k := range keys {
		path[i] = d.environment.Coordinate(k)
	}

	return path
}

// weighted reports whether this run is A* with an optimality-breaking
// heuristic weight.
func (d *driver) weighted() bool {
	return d.strat.usesHeuristic && d.options.HeuristicWeight > 1
}

// emit materializes one snapshot: it stamps the index, copies the full
// working state, updates the peak gauges, and appends. Callers fill only
// the event-specific fields.
func (d *driver) emit(s StepSnapshot) {
	s.Index = len(d.steps)
	s.FrontierKind = d.front.Kind()
	s.Frontier = d.front.Items()
	if s.Frontier == nil {
		s.Frontier = []frontier.Item{}
	}
	s.Visited = copyBoolMap(d.visited)
	s.Closed = copyBoolMap(d.closed)
	s.Parent = copyStringMap(d.parent)
	s.CostSoFar = copyFloatMap(d.bestG)

	if n := len(s.Frontier); n > d.peakFrontier {
		d.peakFrontier = n
	}
	if n := len(s.Closed); n > d.peakClosed {
		d.peakClosed = n
	}
	d.steps = append(d.steps, s)
}
