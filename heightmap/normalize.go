// SPDX-License-Identifier: MIT

package heightmap

import (
	"fmt"
	"math"
)

// MinMax returns the smallest and largest values in the grid.
// Complexity: O(size²).
func MinMax(hm *HeightMap) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range hm.data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// Normalize rescales hm in place into [0,1] via (v-min)/range, where range is
// max-min floored at the configured epsilon. A non-degenerate grid ends with
// min exactly 0 and max exactly 1; a flat grid ends all zeros. With
// WithContrast, v^gamma is applied after rescaling.
//
// Stage 1 (Validate): hm must be non-nil.
// Stage 2 (Scan): find min and max.
// Stage 3 (Rescale): write (v-min)/range, then the contrast curve if enabled.
//
// Complexity: O(size²) time, O(1) extra memory.
func Normalize(hm *HeightMap, opts ...Option) error {
	if hm == nil {
		return fmt.Errorf("Normalize: %w", ErrNilMap)
	}
	o := gatherOptions(opts...)

	lo, hi := MinMax(hm)
	rng := hi - lo
	if rng < o.eps {
		rng = o.eps
	}

	contrast := o.gamma != DefaultContrast
	for i, v := range hm.data {
		n := (v - lo) / rng
		if contrast {
			n = math.Pow(n, o.gamma)
		}
		hm.data[i] = n
	}

	return nil
}
