package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellOutOfRange indicates a cell outside the grid.
	ErrCellOutOfRange = errors.New("gridgraph: cell out of range")
	// ErrNotWalkable indicates a required cell below LandThreshold.
	ErrNotWalkable = errors.New("gridgraph: cell is not walkable")
	// ErrSameCell indicates start and exit are the same cell.
	ErrSameCell = errors.New("gridgraph: start and exit must differ")
)
