package gridgraph

import (
	"fmt"
	"strconv"
)

// Cell identifies a single grid position. Cells are comparable and
// may be used directly as map keys.
type Cell struct {
	Row    int // 0-based row, grows downward
	Column int // 0-based column, grows rightward
}

// String renders the cell as "(row,column)".
func (c Cell) String() string {
	return "(" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Column) + ")"
}

// Grid is an immutable rows×columns board.
type Grid struct {
	Rows, Columns int
}

// NewGrid returns a Grid after checking that both dimensions are positive.
// Returns ErrEmptyGrid otherwise.
// Complexity: O(1).
func NewGrid(rows, columns int) (Grid, error) {
	g := Grid{Rows: rows, Columns: columns}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}

	return g, nil
}

// MaxCells caps Rows×Columns so that dense per-cell tables stay allocatable
// and Size never overflows int.
const MaxCells = 1 << 24

// Validate reports ErrEmptyGrid if either dimension is not positive and
// ErrTooLarge if the board has more than MaxCells cells.
func (g Grid) Validate() error {
	if g.Rows <= 0 || g.Columns <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyGrid, g.Rows, g.Columns)
	}
	// Division keeps the check itself free of overflow.
	if g.Rows > MaxCells/g.Columns {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrTooLarge, g.Rows, g.Columns, MaxCells)
	}

	return nil
}

// Size returns the number of cells, Rows×Columns.
func (g Grid) Size() int {
	return g.Rows * g.Columns
}

// InBounds reports whether c lies within [0,Rows)×[0,Columns).
// Complexity: O(1).
func (g Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Column >= 0 && c.Column < g.Columns
}

// Check returns ErrOutOfBounds (wrapped with the offending cell) if c is outside the grid.
func (g Grid) Check(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s not in %dx%d", ErrOutOfBounds, c, g.Rows, g.Columns)
	}

	return nil
}

// Index maps c to its row-major index: Row*Columns + Column.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g Grid) Index(c Cell) int {
	return c.Row*g.Columns + c.Column
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.Columns, Column: idx % g.Columns}
}

// KingDistance returns the Chebyshev distance between a and b, i.e. the
// minimum number of king moves needed to get from one to the other.
func KingDistance(a, b Cell) int {
	dr, dc := a.Row-b.Row, a.Column-b.Column
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}

	return dc
}

// Adjacent reports whether a and b are distinct king-move neighbors.
func Adjacent(a, b Cell) bool {
	return KingDistance(a, b) == 1
}
