package dem

import (
	"errors"
)

var (
	// ErrIncompleteHeader is returned when an ESRI ASCII file ends before
	// the required header fields are read.
	ErrIncompleteHeader = errors.New("dem: incomplete esri ascii header")

	// ErrBadDimensions is returned for non-positive ncols or nrows.
	ErrBadDimensions = errors.New("dem: grid dimensions must be positive")

	// ErrBadCellSize is returned for a non-positive cellsize.
	ErrBadCellSize = errors.New("dem: cell size must be positive")

	// ErrShortData is returned when the file holds fewer than ncols*nrows values.
	ErrShortData = errors.New("dem: fewer data values than ncols*nrows")

	// ErrAllNoData is returned when every cell carries the missing value.
	ErrAllNoData = errors.New("dem: grid has no valid cells")
)
