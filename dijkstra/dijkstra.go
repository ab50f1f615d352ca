// Package dijkstra implements Dijkstra's shortest-path relaxation over a
// bounded king-move grid, with threat-aware exclusion and costs.
//
// Complexity:
//
//   - Time:  O(V log V + E), V = Rows×Columns, E ≤ 8V.
//   - Each cell is extracted at most once.
//   - Each improvement removes the stale frontier entry and reinserts the cell,
//     so the frontier never holds more than V entries.
//   - Space: O(V) for the flat table and the frontier position index.
//
// Notes on implementation choices:
//
//   - The table is a flat slice indexed by row*Columns+column, not a map.
//   - Decrease-key is emulated as remove-then-reinsert on an index-tracked heap.
//   - The whole table is always built; there is no early exit at the target.
//   - Edge weights come from EdgeCost and are recomputed on every relaxation.
package dijkstra

import (
	"github.com/katalvlaran/gridnav/gridgraph"
)

// BuildTable runs the relaxation from req.Origin over the whole grid and
// returns the resulting distance table.
//
// Preconditions and validation (in order):
//  1. Rows and Columns must be positive.
//  2. Mode must be Pursuer or Evader.
//  3. Origin, Target (and the WithAgent cell, if given) must be in bounds.
//  4. Every threat must be in bounds.
//
// Any violation returns ErrInvalidRequest. Unreachable cells are simply left
// unvisited; BuildTable itself never reports ErrUnreachable.
func BuildTable(req Request, opts ...Option) (*Table, error) {
	// 1) Build and validate Options and the request.
	cfg := buildOptions(opts)
	g, err := req.validate(cfg)
	if err != nil {
		return nil, err
	}

	// 2) Evaders keep out of threat zones; the target and the walker's own
	//    cell stay enterable so a threat next to either cannot cut them off.
	var excl *gridgraph.Exclusion
	if req.Mode == Evader {
		excl = gridgraph.NewExclusion(req.Threats, req.Target, cfg.agent(req))
	}

	// 3) Initialize runner state and run the main loop.
	r := &runner{
		req:   req,
		opts:  cfg,
		grid:  g,
		excl:  excl,
		table: newTable(g, req.Origin),
		front: newFrontier(g.Size()),
		buf:   make([]gridgraph.Cell, 0, 8),
	}
	r.init()
	r.process()

	return r.table, nil
}

// runner holds the mutable state for a single run.
type runner struct {
	req   Request              // immutable input snapshot
	opts  Options              // hooks and agent
	grid  gridgraph.Grid       // request dimensions
	excl  *gridgraph.Exclusion // nil in Pursuer mode
	table *Table               // per-cell best cost and predecessor
	front *frontier            // tentative cells ordered by cost
	buf   []gridgraph.Cell     // reusable neighbor buffer
}

// init pushes the origin with cost 0. The table already holds its record.
func (r *runner) init() {
	r.front.insert(r.grid.Index(r.req.Origin), 0)
}

// process repeatedly extracts the cheapest frontier cell, settles it and
// relaxes its neighbors, until the frontier is empty.
func (r *runner) process() {
	for r.front.Len() > 0 {
		// 1) Pop the smallest tentative cost. Entries are never stale:
		//    improvements remove the old entry before reinserting.
		idx, d := r.front.popMin()

		// 2) Settle: the distance d is now final.
		r.table.records[idx].State = Settled
		u := r.grid.CellAt(idx)
		r.opts.OnSettle(u, d)

		// 3) Relax all enumerated neighbors.
		r.relax(u, d)
	}
}

// relax offers every neighbor of u a route through u and keeps it when it
// is strictly cheaper than the recorded one (or the neighbor is unvisited).
func (r *runner) relax(u gridgraph.Cell, d int64) {
	r.buf = r.grid.Neighbors(u, r.excl, r.buf)
	for _, v := range r.buf {
		vi := r.grid.Index(v)
		rec := &r.table.records[vi]

		// Settled distances are final; with non-negative weights no later
		// candidate can beat them.
		if rec.State == Settled {
			continue
		}

		candidate := d + EdgeCost(v, r.req.Target, r.req.Mode, r.req.Threats)
		if rec.Reached && candidate >= rec.Cost {
			continue
		}

		rec.Cost = candidate
		rec.Prev = u
		rec.Reached = true
		rec.State = Frontier

		r.front.remove(vi)
		r.front.insert(vi, candidate)
		r.opts.OnRelax(u, v, candidate)
	}
}
