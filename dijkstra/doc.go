// Package dijkstra provides a threat-aware shortest-path engine for bounded
// 2D grids with king-move (8-directional) adjacency.
//
// Overview:
//
//   - A walker at Origin wants to reach Target. Cells are joined to their up
//     to 8 Moore neighbors, clipped to the grid.
//   - Stepping onto a cell costs round(1000 × euclidean distance to Target),
//     a potential field that pulls every route toward the target.
//   - In Evader mode the walker also keeps out of the 3×3 zone around every
//     threat and pays round(10000 / distance to the nearest threat) per step,
//     so cells near threats are expensive but not forbidden when nothing
//     safer exists.
//   - In Pursuer mode threats are ignored and the walker always has full
//     connectivity to close in.
//
// When to use:
//
//   - Chase simulations recomputed every tick: one Evader query for the
//     pursued agent, one Pursuer query per chaser.
//   - Any small board where a full distance table per query is affordable.
//
// Key features:
//
//   - Dense flat distance table (row*Columns+column), no maps on the hot path.
//   - Index-tracked binary heap: stale entries are removed, not skipped.
//   - Deterministic scan order and insertion-sequence tie-breaking, so equal
//     inputs always give equal tables and equal paths.
//   - Hooks: WithOnSettle and WithOnRelax observe every settle and relaxation.
//   - Escape hatch: Target and the walker's own cell (WithAgent, default
//     Origin) stay enterable even inside a threat zone.
//
// Performance and complexity:
//
//   - Time:  O(V log V + E), V = Rows×Columns, E ≤ 8V.
//   - Space: O(V).
//   - The full table is rebuilt on every call; nothing is cached between calls.
//
// Pursuer costs:
//
//	Because every step is charged by where it lands relative to Target, the
//	route found in Pursuer mode is a descent of that potential field rather
//	than a minimum hop count. On an open board the two coincide: the route
//	length equals the king distance.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidRequest:
//     Non-positive dimensions, cells outside the grid, an unknown Mode, or a
//     cell missing from a table during Reconstruct.
//   - ErrUnreachable:
//     No route from Origin to Target under the Evader exclusion rules.
//
// API reference:
//
//	func ShortestPath(req Request, opts ...Option) ([]gridgraph.Cell, error)
//	func BuildTable(req Request, opts ...Option) (*Table, error)
//	func Reconstruct(t *Table, origin, target gridgraph.Cell) ([]gridgraph.Cell, error)
//	func EdgeCost(neighbor, target gridgraph.Cell, mode Mode, threats []gridgraph.Cell) int64
//
// Thread safety:
//
//   - Every call allocates its own table and frontier and only reads the
//     Request. Concurrent calls are safe as long as callers do not mutate a
//     Threats slice while a call is using it.
//
// See also:
//
//   - gridgraph.Grid.Neighbors: the adjacency enumerator used by the relaxation.
//   - gridgraph.Exclusion: threat zones and the allowed-cell escape hatch.
package dijkstra
