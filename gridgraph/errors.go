package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrTooLarge indicates a grid with more than MaxCells cells.
	ErrTooLarge = errors.New("gridgraph: grid too large")
	// ErrOutOfBounds indicates a cell outside [0,Rows)×[0,Columns).
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)
