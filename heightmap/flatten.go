// SPDX-License-Identifier: MIT

package heightmap

import (
	"fmt"
	"math"
)

// Flatten returns the grid as one row-major sequence:
// flat[y*size+x] == grid[y][x]. The result does not alias the map.
// A nil map flattens to nil.
// Complexity: O(size²).
func Flatten(hm *HeightMap) []float64 {
	if hm == nil {
		return nil
	}
	flat := make([]float64, len(hm.data))
	copy(flat, hm.data)

	return flat
}

// FromFlat rebuilds a HeightMap from a row-major sequence.
// When size is 0 it is inferred from len(flat), which must then be a perfect
// square. Returns ErrInvalidSize for an empty input and ErrNonSquare when
// len(flat) != size*size.
// Complexity: O(size²).
func FromFlat(flat []float64, size int) (*HeightMap, error) {
	if len(flat) == 0 || size < 0 {
		return nil, ErrInvalidSize
	}
	if size == 0 {
		size = int(math.Sqrt(float64(len(flat))))
	}
	if size*size != len(flat) {
		return nil, fmt.Errorf("FromFlat: %d values for size %d: %w", len(flat), size, ErrNonSquare)
	}
	data := make([]float64, len(flat))
	copy(data, flat)

	return &HeightMap{size: size, data: data}, nil
}

// Flatten3 is the placeholder for flattening 3D volumes. Volumetric terrain is
// not supported; it always returns ErrNotImplemented.
func Flatten3(_ [][][]float64) ([]float64, error) {
	return nil, fmt.Errorf("Flatten3: %w", ErrNotImplemented)
}
