package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridnav/dijkstra"
	"github.com/katalvlaran/gridnav/gridgraph"
)

// BenchmarkShortestPath_Pursuer measures a full rebuild on a 64×64 board.
// Complexity: O(V log V + E), V = 4096.
func BenchmarkShortestPath_Pursuer(b *testing.B) {
	req := dijkstra.Request{
		Rows: 64, Columns: 64,
		Origin: gridgraph.Cell{Row: 0, Column: 0},
		Target: gridgraph.Cell{Row: 63, Column: 40},
		Mode:   dijkstra.Pursuer,
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(req)
	}
}

// BenchmarkShortestPath_Evader measures the Evader mode with 8 random threats,
// the per-tick workload of the chase simulation.
func BenchmarkShortestPath_Evader(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	threats := make([]gridgraph.Cell, 8)
	for i := range threats {
		threats[i] = gridgraph.Cell{Row: 8 + rng.Intn(48), Column: 8 + rng.Intn(48)}
	}
	req := dijkstra.Request{
		Rows: 64, Columns: 64,
		Origin:  gridgraph.Cell{Row: 0, Column: 0},
		Target:  gridgraph.Cell{Row: 63, Column: 63},
		Mode:    dijkstra.Evader,
		Threats: threats,
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(req)
	}
}
