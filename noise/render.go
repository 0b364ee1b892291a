package noise

import (
	"fmt"

	"github.com/katalvlaran/lvlterrain/heightmap"
)

// Render samples s over a size×size grid of the unit square:
// cell (row y, col x) = s.Sample2D(x/size, y/size).
//
// Errors:
//   - ErrNilSampler when s is nil.
//   - heightmap.ErrInvalidSize when size < 1.
//   - the first sampler error, wrapped with the failing cell.
//
// Complexity: O(size² · octaves).
func Render(s Sampler, size int) (*heightmap.HeightMap, error) {
	if s == nil {
		return nil, ErrNilSampler
	}
	hm, err := heightmap.New(size)
	if err != nil {
		return nil, err
	}

	fs := float64(size)
	for y := 0; y < size; y++ {
		row := hm.Row(y)
		for x := range row {
			v, err := s.Sample2D(float64(x)/fs, float64(y)/fs)
			if err != nil {
				return nil, fmt.Errorf("Render(%d,%d): %w", x, y, err)
			}
			row[x] = v
		}
	}

	return hm, nil
}
