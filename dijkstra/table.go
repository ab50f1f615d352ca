package dijkstra

import "github.com/katalvlaran/gridnav/gridgraph"

// State tracks a cell's progress through one run.
type State uint8

const (
	// Unvisited cells have no tentative distance yet.
	Unvisited State = iota
	// Frontier cells hold a tentative distance and wait in the frontier.
	Frontier
	// Settled cells have been extracted; their distance is final.
	Settled
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Frontier:
		return "frontier"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// Record is the per-cell entry of a distance table.
//
// Reached is false for unvisited cells; Cost and Prev are meaningless then.
// For the origin, Cost is 0 and Prev is the origin itself.
type Record struct {
	Cost    int64          // best known cumulative cost from the origin
	Prev    gridgraph.Cell // cell the best cost was reached from
	Reached bool
	State   State
}

// Table is the dense distance table produced by one run: one Record per grid
// cell, stored flat at gridgraph.Grid.Index.
type Table struct {
	grid    gridgraph.Grid
	origin  gridgraph.Cell
	records []Record
}

// newTable allocates Rows×Columns unvisited records and seeds the origin.
func newTable(g gridgraph.Grid, origin gridgraph.Cell) *Table {
	t := &Table{
		grid:    g,
		origin:  origin,
		records: make([]Record, g.Size()),
	}
	t.records[g.Index(origin)] = Record{Cost: 0, Prev: origin, Reached: true, State: Frontier}

	return t
}

// Grid returns the dimensions the table was built for.
func (t *Table) Grid() gridgraph.Grid { return t.grid }

// Origin returns the cell the table was built from.
func (t *Table) Origin() gridgraph.Cell { return t.origin }

// Len returns the number of records, Rows×Columns.
func (t *Table) Len() int { return len(t.records) }

// Lookup returns the record for c, or false if c is not part of the table.
// Complexity: O(1).
func (t *Table) Lookup(c gridgraph.Cell) (Record, bool) {
	if t == nil || !t.grid.InBounds(c) || len(t.records) != t.grid.Size() {
		return Record{}, false
	}

	return t.records[t.grid.Index(c)], true
}

// Cost returns the best known cost of c and whether c was reached at all.
func (t *Table) Cost(c gridgraph.Cell) (int64, bool) {
	rec, ok := t.Lookup(c)
	if !ok || !rec.Reached {
		return 0, false
	}

	return rec.Cost, true
}

// Records returns a copy of all records in row-major order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)

	return out
}
