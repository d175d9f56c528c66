package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrGridParse is matched by every error returned while building a grid.
	ErrGridParse = errors.New("gridgraph: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidCell indicates a cell that is not a single decimal digit.
	ErrInvalidCell = errors.New("gridgraph: cell must be a decimal digit")
	// ErrOutOfBounds indicates a lookup outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)

// ParseError reports where grid construction failed.
// Row and Col are zero-based; Col is -1 when the whole row is at fault.
type ParseError struct {
	Row, Col int
	Err      error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("%v (row %d)", e.Err, e.Row)
	}

	return fmt.Sprintf("%v (row %d, col %d)", e.Err, e.Row, e.Col)
}

// Unwrap exposes both the specific sentinel and ErrGridParse to errors.Is.
func (e *ParseError) Unwrap() []error {
	return []error{e.Err, ErrGridParse}
}
