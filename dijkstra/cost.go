package dijkstra

import (
	"math"

	"github.com/katalvlaran/gridnav/gridgraph"
)

const (
	// DistanceScale multiplies the euclidean distance to the target.
	DistanceScale = 1000
	// RepulsionScale is divided by the distance to the nearest threat.
	RepulsionScale = 10000
)

// EdgeCost returns the weight of stepping onto neighbor.
//
// The weight depends only on where the step lands, never on where it came
// from or on the route so far:
//
//	base      = round(DistanceScale × |neighbor − target|)
//	repulsion = round(RepulsionScale / max(d_min, 1))   (Evader only)
//
// where d_min is the euclidean distance from neighbor to the closest threat.
// A d_min of 0 is treated as 1. With no threats the repulsion is zero.
// The result is never negative.
//
// Complexity: O(T) for T threats.
func EdgeCost(neighbor, target gridgraph.Cell, mode Mode, threats []gridgraph.Cell) int64 {
	cost := int64(math.Round(DistanceScale * euclidean(neighbor, target)))
	if mode != Evader || len(threats) == 0 {
		return cost
	}

	dMin := math.Inf(1)
	for _, t := range threats {
		if d := euclidean(neighbor, t); d < dMin {
			dMin = d
		}
	}
	if dMin == 0 {
		dMin = 1
	}

	return cost + int64(math.Round(RepulsionScale/dMin))
}

// euclidean returns the straight-line distance between two cells.
func euclidean(a, b gridgraph.Cell) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Column - b.Column)

	return math.Sqrt(dr*dr + dc*dc)
}
