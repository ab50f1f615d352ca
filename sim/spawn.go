package sim

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/scenario"
)

// spawnAttemptsPerCell bounds rejection sampling per placement.
const spawnAttemptsPerCell = 8

// placement is the initial layout produced by spawn.
type placement struct {
	pursuers []gridgraph.Cell
	evader   gridgraph.Cell
	target   gridgraph.Cell
}

// spawn lays out the board for sc.
//
// Steps:
//  1. Pursuers: pinned positions, else uniform random cells.
//  2. Evader: pinned, else a random cell not on or next to any pursuer.
//  3. Target: pinned, else a random cell other than the evader that the
//     evader can reach around the pursuers' zones at spawn time.
//
// Pinned positions are taken as given.
func spawn(sc scenario.Scenario, rng *rand.Rand) (placement, error) {
	g := sc.Grid()
	attempts := spawnAttemptsPerCell * g.Size()

	var p placement

	// 1) Pursuers.
	if len(sc.PursuerPositions) > 0 {
		for _, pos := range sc.PursuerPositions {
			p.pursuers = append(p.pursuers, pos.Cell())
		}
	} else {
		p.pursuers = make([]gridgraph.Cell, sc.Pursuers)
		for i := range p.pursuers {
			r, c := randomCell(rng, g.Rows, g.Columns)
			p.pursuers[i] = gridgraph.Cell{Row: r, Column: c}
		}
	}

	// 2) Evader.
	if sc.Evader != nil {
		p.evader = sc.Evader.Cell()
	} else {
		found := false
		for i := 0; i < attempts && !found; i++ {
			r, c := randomCell(rng, g.Rows, g.Columns)
			cand := gridgraph.Cell{Row: r, Column: c}
			if !nearAny(cand, p.pursuers) {
				p.evader, found = cand, true
			}
		}
		if !found {
			return placement{}, fmt.Errorf("%w: no free cell for the evader on %dx%d with %d pursuers",
				ErrSpawn, g.Rows, g.Columns, len(p.pursuers))
		}
	}

	// 3) Target.
	if sc.Target != nil {
		p.target = sc.Target.Cell()
		return p, nil
	}
	found := false
	for i := 0; i < attempts && !found; i++ {
		r, c := randomCell(rng, g.Rows, g.Columns)
		cand := gridgraph.Cell{Row: r, Column: c}
		if cand == p.evader {
			continue
		}
		excl := gridgraph.NewExclusion(p.pursuers, cand, p.evader)
		if g.Connected(p.evader, cand, excl) {
			p.target, found = cand, true
		}
	}
	if !found {
		return placement{}, fmt.Errorf("%w: no reachable target from %s", ErrSpawn, p.evader)
	}

	return p, nil
}

// nearAny reports whether c is on or adjacent to any of cells.
func nearAny(c gridgraph.Cell, cells []gridgraph.Cell) bool {
	for _, o := range cells {
		if gridgraph.KingDistance(c, o) <= 1 {
			return true
		}
	}

	return false
}
