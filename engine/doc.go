// Package engine is the trace-generation core of glassbox: one
// algorithm-agnostic driver that runs breadth-first search, depth-first
// search, Dijkstra, or A* over any env.Environment and emits an ordered,
// replayable sequence of immutable StepSnapshots capturing the full
// internal state at every decision point.
//
// What
//
//   - One entry point, BuildTrace, producing exactly one Trace per call.
//   - Four strategies behind one state machine, each a row of a closed
//     table: frontier discipline (queue, stack, min-heap), comparison
//     metric (depth, g, f), and cost rule.
//   - One snapshot per meaningful event: init, select, expand, relax,
//     enqueue, found, exhausted. Every snapshot carries independent
//     copies of the frontier, visited and closed sets, parent links, and
//     best-known costs at that instant.
//   - Selection reasons on every select/found and ranked "why not"
//     rejection lists for heap disciplines, so a consumer can narrate
//     not only what the algorithm did but why.
//   - An iteration cap of max(100, min(size*20, 10000)) guarding against
//     runaway exploration; hitting it emits an "exhausted" snapshot with
//     a warning. A naturally drained frontier just ends the run.
//
// Why
//
//   - Playback and teaching need more than a final path: the value is in
//     watching the frontier evolve, seeing costs relax, and reading why
//     one candidate beat another.
//   - A Trace is pure data. Rendering, narration, serving, and playback
//     all consume it by indexing Steps; none of them recompute anything.
//
// Determinism
//
//	Given identical environment, start, goal, and options, the emitted
//	Trace is identical across runs, byte for byte. Environments enumerate
//	neighbors in a fixed order, the heap breaks priority ties by insertion
//	order, and the driver contains no randomness and no map iteration in
//	any order-sensitive position.
//
// Stale heap entries
//
//	The heap has no decrease-key. A cheaper route to a queued node pushes
//	a fresh entry; the dominated duplicate stays behind and is discarded
//	at pop time (key already closed, or carried g above the best known).
//	The heap may transiently hold dominated duplicates; correctness rests
//	on the pop-time filter.
//
// Complexity (N = world size, B = branching factor)
//
//   - Time:  O(steps * N) — every snapshot copies the working sets, and
//     the trace exists to be replayed, so copying dominates on purpose.
//   - Memory: O(steps * N) for the same reason. The iteration cap bounds
//     steps; worlds are education-scale by design.
//
// Usage
//
//	grid, _ := env.NewGrid(5, 5, nil)
//	trace, err := engine.BuildTrace(grid, "0,0", "4,4",
//	    engine.WithAlgorithm(engine.AlgoAStar),
//	    engine.WithHeuristic(heuristic.IDManhattan),
//	    engine.WithHeuristicWeight(1),
//	)
//	if err != nil {
//	    // ErrNilEnvironment, ErrEmptyKey, or ErrOptionViolation
//	}
//	for _, step := range trace.Steps {
//	    // replay: each step is self-contained
//	}
//
// Options
//
//   - DefaultOptions(): bfs, manhattan, weight 1.
//   - WithAlgorithm(a):       bfs | dfs | dijkstra | astar.
//   - WithHeuristic(id):      manhattan | euclidean; unknown ids fall
//     back to manhattan at run time.
//   - WithHeuristicWeight(w): 0 degenerates A* to Dijkstra, 1 is
//     standard, above 1 trades optimality for speed (and earns the run
//     a warning).
//
// Errors
//
//   - ErrNilEnvironment  if the environment is nil.
//   - ErrEmptyKey        if the start or goal key is empty.
//   - ErrOptionViolation if an option is invalid (unknown algorithm,
//     negative weight).
//
// Everything else is data, not failure: unreachable goals, iteration-cap
// exhaustion, and degenerate lookups all complete normally and surface
// only through Found, warnings, and the snapshots themselves.
package engine
