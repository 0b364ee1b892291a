// SPDX-License-Identifier: MIT

// Package heightmap: HeightMap is a square, row-major grid of float64 values
// stored in a flat slice for cache friendliness.
package heightmap

import (
	"fmt"
	"strings"
)

// heightmapErrorf wraps an underlying error with HeightMap method context.
func heightmapErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("HeightMap.%s(%d,%d): %w", method, row, col, err)
}

// HeightMap is a size×size elevation grid addressed as (row, col), i.e. [y][x].
// data holds size*size elements in row-major order.
type HeightMap struct {
	size int       // edge length
	data []float64 // flat backing storage, length == size*size
}

// New creates a size×size HeightMap initialized to zeros.
// Stage 1 (Validate): size > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(size²) time and memory.
func New(size int) (*HeightMap, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	return &HeightMap{size: size, data: make([]float64, size*size)}, nil
}

// FromRows deep-copies a square [][]float64 grid (rows[y][x]).
// Returns ErrInvalidSize for an empty input and ErrNonSquare when any row
// length differs from the number of rows.
// Complexity: O(size²).
func FromRows(rows [][]float64) (*HeightMap, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidSize
	}
	hm := &HeightMap{size: n, data: make([]float64, n*n)}
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", y, len(row), n, ErrNonSquare)
		}
		copy(hm.data[y*n:(y+1)*n], row)
	}

	return hm, nil
}

// Size returns the edge length of the grid.
// Complexity: O(1).
func (hm *HeightMap) Size() int {
	return hm.size
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (hm *HeightMap) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= hm.size || col < 0 || col >= hm.size {
		return 0, heightmapErrorf(method, row, col, ErrOutOfRange)
	}

	return row*hm.size + col, nil
}

// At retrieves the value at (row, col).
// Complexity: O(1).
func (hm *HeightMap) At(row, col int) (float64, error) {
	idx, err := hm.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return hm.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (hm *HeightMap) Set(row, col int, v float64) error {
	idx, err := hm.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	hm.data[idx] = v

	return nil
}

// Row returns row y as a slice that shares storage with the map; writes
// through it mutate the grid. Panics if y is out of range, like a slice index.
// Complexity: O(1).
func (hm *HeightMap) Row(y int) []float64 {
	return hm.data[y*hm.size : (y+1)*hm.size : (y+1)*hm.size]
}

// Rows returns a deep copy of the grid as [][]float64 (rows[y][x]).
// Complexity: O(size²).
func (hm *HeightMap) Rows() [][]float64 {
	out := make([][]float64, hm.size)
	for y := range out {
		out[y] = make([]float64, hm.size)
		copy(out[y], hm.Row(y))
	}

	return out
}

// Clone returns an independent deep copy.
// Complexity: O(size²).
func (hm *HeightMap) Clone() *HeightMap {
	data := make([]float64, len(hm.data))
	copy(data, hm.data)

	return &HeightMap{size: hm.size, data: data}
}

// Equal reports whether both maps have the same size and bit-identical values.
func (hm *HeightMap) Equal(other *HeightMap) bool {
	if hm == nil || other == nil {
		return hm == other
	}
	if hm.size != other.size {
		return false
	}
	for i, v := range hm.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging; one bracketed line per row.
// Complexity: O(size²).
func (hm *HeightMap) String() string {
	var b strings.Builder
	for y := 0; y < hm.size; y++ {
		b.WriteByte('[')
		for x, v := range hm.Row(y) {
			if x > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString("]\n")
	}

	return b.String()
}
