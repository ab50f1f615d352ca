// Package gridgraph treats a bounded rows×columns board as an implicit graph
// whose vertices are cells and whose edges join king-move neighbors.
//
// What:
//
//   - Cell is a comparable (row, column) pair, usable as a map key.
//   - Grid holds the board dimensions, bounds checks and the dense row-major
//     index (row*Columns + column) used by flat per-cell tables.
//   - Neighbors enumerates up to 8 Moore neighbors in a fixed scan order,
//     optionally filtered by an Exclusion built from threat zones.
//   - Zone is the 3×3 block centered on a threat cell.
//   - Region flood-fills the cells reachable from a start cell under the same
//     adjacency rules.
//
// Why:
//
//   - Chase games: pursuers need full connectivity to close in, while an
//     evader must keep out of the blocks surrounding its pursuers.
//   - Small fixed-size boards: the coordinate domain is known up front, so
//     flat slices beat maps for per-cell state.
//
// Scan order:
//
//	left column top→bottom, center column top then bottom, right column top→bottom
//
//	    0 3 5
//	    1 · 6
//	    2 4 7
//
// The order is part of the contract: relaxation order and therefore
// tie-breaking in the dijkstra package depend on it.
//
// Complexity:
//
//   - Neighbors: O(8·Z) where Z is the number of threat zones.
//   - Region:    O(R×C×8·Z), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:   Rows or Columns is not positive.
//   - ErrOutOfBounds: a cell lies outside the grid.
package gridgraph
