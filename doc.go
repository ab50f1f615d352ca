// Package gridnav plans king-move routes on rectangular grids for two kinds
// of agent, and runs chase simulations on top of them.
//
// A Pursuer heads straight for its target. An Evader routes around the 3×3
// zone of every threat and pays extra for stepping close to the nearest one,
// so it keeps its distance when it can and reports the target unreachable
// when every route is sealed.
//
// Layout:
//
//	gridgraph/  cells, bounds, king-move neighbours, threat zones, BFS regions
//	dijkstra/   edge costs, distance tables and path reconstruction
//	scenario/   YAML chase setups
//	sim/        the chase loop: spawn, tick, win/lose/stall, text rendering
//	replay/     SQLite history of simulated games
//	cmd/gridnav CLI: path queries, simulation runs and replays
//
// Quick example (8×8, evader at the corner, one threat in the middle):
//
//	E . . . . . . .
//	. . . . . . . .
//	. . . . . . . .
//	. . . x x x . .
//	. . . x P x . .
//	. . . x x x . .
//	. . . . . . . .
//	. . . . . . . T
//
//	path, err := dijkstra.ShortestPath(dijkstra.Request{
//		Rows: 8, Columns: 8,
//		Origin:  gridgraph.Cell{Row: 0, Column: 0},
//		Target:  gridgraph.Cell{Row: 7, Column: 7},
//		Mode:    dijkstra.Evader,
//		Threats: []gridgraph.Cell{{Row: 4, Column: 4}},
//	})
//
// The route bends around the x cells; a Pursuer request with the same
// endpoints would cut straight down the diagonal.
package gridnav
