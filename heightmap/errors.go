// SPDX-License-Identifier: MIT

package heightmap

import "errors"

// Sentinel errors. Messages are prefixed with "heightmap:"; callers match them
// with errors.Is.
var (
	// ErrInvalidSize is returned when a requested grid size is < 1.
	ErrInvalidSize = errors.New("heightmap: size must be > 0")

	// ErrOutOfRange indicates a row or column index outside [0, size).
	ErrOutOfRange = errors.New("heightmap: index out of range")

	// ErrNonSquare indicates ragged rows, or a row/flat length that does not
	// describe a size×size grid.
	ErrNonSquare = errors.New("heightmap: grid is not square")

	// ErrNilMap indicates a nil *HeightMap argument.
	ErrNilMap = errors.New("heightmap: nil height map")

	// ErrNotImplemented marks an intentionally unsupported operation.
	ErrNotImplemented = errors.New("heightmap: operation not implemented")
)
