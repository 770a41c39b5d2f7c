package engine_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/ramandeep-singh77/glassbox/engine"
	"github.com/ramandeep-singh77/glassbox/env"
	"github.com/ramandeep-singh77/glassbox/frontier"
)

// BenchmarkBuildTrace_Algorithms compares the four strategies on the
// same 10x10 grid with a handful of walls. The cost is dominated by
// per-snapshot state copies, not by the search itself.
func BenchmarkBuildTrace_Algorithms(b *testing.B) {
	const M = 10
	grid, err := env.NewGrid(M, M, []string{"4,0", "4,1", "4,2", "4,3", "5,6", "5,7", "5,8", "5,9"})
	if err != nil {
		b.Fatal(err)
	}

	for _, alg := range engine.Algorithms() {
		b.Run(string(alg), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(M * M))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = engine.BuildTrace(grid, "0,0", "9,9", engine.WithAlgorithm(alg))
			}
		})
	}
}

// BenchmarkBuildTrace_GridSizes shows how trace cost scales with the
// world: snapshot count grows with nodes and each snapshot copies maps
// proportional to nodes, so expect roughly quadratic growth.
func BenchmarkBuildTrace_GridSizes(b *testing.B) {
	for _, M := range []int{4, 8, 16} {
		grid, err := env.NewGrid(M, M, nil)
		if err != nil {
			b.Fatal(err)
		}
		goal := env.GridKey(M-1, M-1)

		b.Run(fmt.Sprintf("%dx%d", M, M), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(M * M))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = engine.BuildTrace(grid, "0,0", goal)
			}
		})
	}
}

// BenchmarkBuildTrace_RandomWalls runs breadth-first search over a grid
// with ~15% random walls. Some seeds wall the goal off entirely; a drained
// frontier is as valid a run as a found path, so the bench keeps both.
func BenchmarkBuildTrace_RandomWalls(b *testing.B) {
	const M = 12
	rnd := rand.New(rand.NewSource(42))
	var walls []string
	for x := 0; x < M; x++ {
		for y := 0; y < M; y++ {
			if (x == 0 && y == 0) || (x == M-1 && y == M-1) {
				continue
			}
			if rnd.Float64() < 0.15 {
				walls = append(walls, env.GridKey(x, y))
			}
		}
	}
	grid, err := env.NewGrid(M, M, walls)
	if err != nil {
		b.Fatal(err)
	}
	goal := env.GridKey(M-1, M-1)

	b.ReportAllocs()
	b.SetBytes(int64(M * M))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.BuildTrace(grid, "0,0", goal)
	}
}

// BenchmarkBuildTrace_WeightedRing runs Dijkstra and A* on a ring of V
// nodes with chord shortcuts, placed on a circle so euclidean distances
// mean something.
func BenchmarkBuildTrace_WeightedRing(b *testing.B) {
	const V = 64
	nodes := make([]env.Node, V)
	for i := 0; i < V; i++ {
		angle := 2 * math.Pi * float64(i) / V
		nodes[i] = env.Node{
			ID: fmt.Sprintf("n%d", i),
			X:  100 * math.Cos(angle),
			Y:  100 * math.Sin(angle),
		}
	}
	var edges []env.Edge
	for i := 0; i < V; i++ {
		edges = append(edges, env.Edge{
			From: fmt.Sprintf("n%d", i),
			To:   fmt.Sprintf("n%d", (i+1)%V),
			Cost: 1,
		})
		if i%4 == 0 {
			edges = append(edges, env.Edge{
				From: fmt.Sprintf("n%d", i),
				To:   fmt.Sprintf("n%d", (i+7)%V),
				Cost: 3,
			})
		}
	}
	graph, err := env.NewGraph(false, nodes, edges)
	if err != nil {
		b.Fatal(err)
	}
	goal := fmt.Sprintf("n%d", V/2)

	for _, alg := range []engine.Algorithm{engine.AlgoDijkstra, engine.AlgoAStar} {
		b.Run(string(alg), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(V + len(edges)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = engine.BuildTrace(graph, "n0", goal,
					engine.WithAlgorithm(alg),
					engine.WithHeuristic("euclidean"),
				)
			}
		})
	}
}

// BenchmarkRejections measures the why-not analysis on a busy frontier.
func BenchmarkRejections(b *testing.B) {
	const N = 64
	items := make([]frontier.Item, N)
	for i := 0; i < N; i++ {
		items[i] = frontier.Item{Key: fmt.Sprintf("n%d", i), G: float64((i * 37) % 101)}
	}
	chosen := frontier.Item{Key: "chosen", G: 0.5}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Rejections(items, chosen, engine.MetricG)
	}
}
