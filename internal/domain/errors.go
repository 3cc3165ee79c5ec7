package domain

import "errors"

// Sentinel errors for grid validation failures. These indicate malformed
// input to pure functions and are never retried.
var (
	// ErrDimension indicates non-positive grid dimensions.
	ErrDimension = errors.New("domain: grid dimensions must be positive")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("domain: all grid rows must have the same length")
	// ErrOutOfBounds indicates a cell coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("domain: cell coordinates outside grid extents")
	// ErrCellValue indicates a cell value outside the [0,9] domain.
	ErrCellValue = errors.New("domain: cell value must be in [0,9]")
	// ErrUnknownDataset indicates a dataset tag outside the fixed set.
	ErrUnknownDataset = errors.New("domain: unknown dataset tag")
)
