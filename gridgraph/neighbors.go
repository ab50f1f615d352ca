package gridgraph

// mooreOffsets lists the king-move offsets as (dRow, dColumn) in scan order:
// left column top→bottom, center column top then bottom, right column top→bottom.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// NeighborOffsets returns a copy of the king-move offsets in scan order.
func NeighborOffsets() [8][2]int {
	return mooreOffsets
}

// Neighbors appends to buf[:0] the in-bounds king-move neighbors of c that ex
// does not exclude, in scan order, and returns the result. Passing a nil ex
// disables filtering (full connectivity). Passing a buffer with capacity 8
// avoids allocation in hot loops.
//
// Complexity: O(8·(A+Z)).
func (g Grid) Neighbors(c Cell, ex *Exclusion, buf []Cell) []Cell {
	out := buf[:0]
	for _, d := range mooreOffsets {
		n := Cell{Row: c.Row + d[0], Column: c.Column + d[1]}
		if !g.InBounds(n) {
			continue
		}
		if ex.Excludes(n) {
			continue
		}
		out = append(out, n)
	}

	return out
}
