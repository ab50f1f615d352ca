package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// ShortestPath computes the route for req: every cell after the origin up to
// and including the target. The result is empty (not nil) when origin equals
// target.
//
// Returns ErrInvalidRequest for malformed input and ErrUnreachable when the
// target cannot be reached under the mode's exclusion rules. A partial path
// is never returned.
//
// Complexity: O(V log V + E) for the table plus O(path length) to rebuild it.
func ShortestPath(req Request, opts ...Option) ([]gridgraph.Cell, error) {
	if _, err := req.validate(buildOptions(opts)); err != nil {
		return nil, err
	}
	if req.Origin == req.Target {
		return []gridgraph.Cell{}, nil
	}

	t, err := BuildTable(req, opts...)
	if err != nil {
		return nil, err
	}

	return Reconstruct(t, req.Origin, req.Target)
}

// Reconstruct walks predecessor links from target back to origin and returns
// the cells in forward order: the first element is the step next to origin,
// the last is target. origin itself is never included.
//
// Errors:
//
//   - ErrInvalidRequest if t is nil, if a cell on the chain is missing from t,
//     or if the chain is longer than the grid (a corrupt table).
//   - ErrUnreachable if target was never reached, or if its chain ends
//     somewhere other than origin.
func Reconstruct(t *Table, origin, target gridgraph.Cell) ([]gridgraph.Cell, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil table", ErrInvalidRequest)
	}
	if origin == target {
		return []gridgraph.Cell{}, nil
	}

	var (
		stack []gridgraph.Cell
		cur   = target
		limit = t.Len()
	)
	for {
		rec, ok := t.Lookup(cur)
		if !ok {
			return nil, fmt.Errorf("%w: %s missing from table", ErrInvalidRequest, cur)
		}
		if !rec.Reached {
			return nil, fmt.Errorf("%w: %s from %s", ErrUnreachable, target, origin)
		}

		stack = append(stack, cur)
		if rec.Prev == origin {
			break
		}
		// The chain ended at the table's own origin, which is not ours.
		if rec.Prev == cur {
			return nil, fmt.Errorf("%w: %s from %s", ErrUnreachable, target, origin)
		}
		if len(stack) > limit {
			return nil, fmt.Errorf("%w: predecessor chain from %s does not terminate", ErrInvalidRequest, target)
		}
		cur = rec.Prev
	}

	// Pop the stack into forward order.
	path := make([]gridgraph.Cell, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		path = append(path, stack[i])
	}

	return path, nil
}
