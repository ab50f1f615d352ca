package gridgraph

// Region returns the cells reachable from start by king moves that never
// enter a cell excluded by ex, in breadth-first discovery order (start first).
// The start cell itself is always included, even if ex would exclude it.
// Returns ErrOutOfBounds if start is outside the grid.
//
// Time:   O(R·C·8·(A+Z)).
// Memory: O(R·C) for the seen flags and output.
func (g Grid) Region(start Cell, ex *Exclusion) ([]Cell, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := g.Check(start); err != nil {
		return nil, err
	}

	seen := make([]bool, g.Size())
	seen[g.Index(start)] = true
	queue := []Cell{start}
	buf := make([]Cell, 0, 8)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		buf = g.Neighbors(u, ex, buf)
		for _, v := range buf {
			vi := g.Index(v)
			if seen[vi] {
				continue
			}
			seen[vi] = true
			queue = append(queue, v)
		}
	}

	return queue, nil
}

// Connected reports whether to can be reached from from under ex.
// Out-of-bounds endpoints are never connected.
func (g Grid) Connected(from, to Cell, ex *Exclusion) bool {
	if !g.InBounds(to) {
		return false
	}
	region, err := g.Region(from, ex)
	if err != nil {
		return false
	}
	for _, c := range region {
		if c == to {
			return true
		}
	}

	return false
}
