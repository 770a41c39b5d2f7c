// Package glassbox turns graph search into something you can watch: it
// runs BFS, DFS, Dijkstra, and A* over grids and weighted graphs and
// records every decision as an ordered, replayable trace.
//
// 🔍 What is glassbox?
//
//	A teaching-first search tracer that brings together:
//		• Worlds: uniform-cost grids with walls, weighted graphs with coordinates
//		• Strategies: BFS, DFS, Dijkstra, A* (pluggable, weightable heuristics)
//		• Traces: one immutable snapshot per decision, each carrying the full
//		  frontier, visited, closed, parent and cost state of that instant
//		• Explanations: why a node won selection, and why its rivals lost
//		• Surfaces: CLI runner, terminal playback, side-by-side comparison,
//		  and an HTTP server with Prometheus metrics
//
// ✨ Why choose glassbox?
//
//   - Deterministic – identical input always yields the identical trace
//   - Honest – stale heap entries, rejected rivals, warnings: all recorded
//   - Beginner-friendly – every step narrates itself in plain language
//   - Batteries included – eight embedded scenarios, ready to replay
//
// The packages:
//
//	engine/    — the trace builder: strategies, snapshots, why-not analysis
//	env/       — grid and graph worlds with deterministic neighbor order
//	frontier/  — queue, stack, and lazy min-heap disciplines
//	heuristic/ — manhattan and euclidean distance estimates
//	catalog/   — embedded YAML scenarios
//	narrate/   — plain-language step descriptions
//	render/    — ASCII board frames and metrics tables
//	tui/       — interactive terminal playback
//	server/    — HTTP API over stored traces
//
// Quick ASCII example (S start, G goal, # wall, * path):
//
//	S * *
//	. # *
//	. . G
//
// Start with engine.BuildTrace, or go straight to the player:
//
//	go run ./cmd/glassbox play
package glassbox
