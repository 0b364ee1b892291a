package fractal

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/lvlterrain/heightmap"
	"github.com/katalvlaran/lvlterrain/noise"
	"github.com/katalvlaran/lvlterrain/rng"
)

// Fractal2D is a Diamond-Square generator. The zero value is not usable;
// construct with NewFractal2D.
type Fractal2D struct {
	size      int
	seed      uint64
	roughness float64
	grid      *heightmap.HeightMap // retained for sampling; zeros until Generate
}

// IsValidSize reports whether size is 2^n+1 with n >= 1.
func IsValidSize(size int) bool {
	return size >= 3 && bits.OnesCount(uint(size-1)) == 1
}

// SizeFromExponent returns 2^n+1, or 0 when n is outside [1, 30].
func SizeFromExponent(n int) int {
	if n < 1 || n > 30 {
		return 0
	}

	return 1<<n + 1
}

// NewFractal2D validates size and roughness. No random number is drawn here.
func NewFractal2D(size int, seed uint64, roughness float64) (*Fractal2D, error) {
	if !IsValidSize(size) {
		return nil, fmt.Errorf("NewFractal2D(size=%d): %w", size, ErrInvalidSize)
	}
	if math.IsNaN(roughness) || math.IsInf(roughness, 0) || roughness < 0 {
		return nil, fmt.Errorf("NewFractal2D(roughness=%v): %w", roughness, ErrInvalidRoughness)
	}
	grid, err := heightmap.New(size)
	if err != nil {
		return nil, err
	}

	return &Fractal2D{size: size, seed: seed, roughness: roughness, grid: grid}, nil
}

// Size returns the grid edge length.
func (f *Fractal2D) Size() int { return f.size }

// Seed returns the construction seed.
func (f *Fractal2D) Seed() uint64 { return f.seed }

// Roughness returns the per-round displacement decay.
func (f *Fractal2D) Roughness() float64 { return f.roughness }

// Generate runs Diamond-Square and returns a fresh grid. The generator keeps
// its own copy for Sample2D, so callers may mutate the result freely.
// Calling Generate again restarts the stream and yields the same grid.
//
// Stage 1 (Corners): (0,0), (0,last), (last,0), (last,last) in that order.
// Stage 2 (Diamond): each step×step square's center = mean of its corners + displacement.
// Stage 3 (Square):  each edge midpoint = mean of its 2–4 in-grid neighbors + displacement.
// Stage 4 (Decay):   step /= 2, displacement *= roughness; repeat until step == 1.
func (f *Fractal2D) Generate() *heightmap.HeightMap {
	n := f.size
	last := n - 1
	r := rng.NewXorshift(f.seed ^ rng.SaltFractal2D)

	grid, _ := heightmap.New(n) // n validated at construction
	m := make([][]float64, n)
	for y := range m {
		m[y] = grid.Row(y)
	}

	m[0][0] = r.Signed()
	m[0][last] = r.Signed()
	m[last][0] = r.Signed()
	m[last][last] = r.Signed()

	offset := 1.0
	for step := last; step > 1; step /= 2 {
		half := step / 2

		for y := 0; y < last; y += step {
			for x := 0; x < last; x += step {
				avg := (m[y][x] + m[y][x+step] + m[y+step][x] + m[y+step][x+step]) * 0.25
				m[y+half][x+half] = avg + r.Signed()*offset
			}
		}

		for y := 0; y < n; y += half {
			for x := (y + half) % step; x < n; x += step {
				var sum float64
				var cnt int
				if x >= half {
					sum += m[y][x-half]
					cnt++
				}
				if x+half < n {
					sum += m[y][x+half]
					cnt++
				}
				if y >= half {
					sum += m[y-half][x]
					cnt++
				}
				if y+half < n {
					sum += m[y+half][x]
					cnt++
				}
				m[y][x] = sum/float64(cnt) + r.Signed()*offset
			}
		}

		offset *= f.roughness
	}

	f.grid = grid.Clone()

	return grid
}

// Sample2D bilinearly interpolates the retained grid at (x·size, y·size).
// Coordinates whose cell has no right or lower neighbor, negative
// coordinates and NaN yield 0. Before Generate every sample is 0.
func (f *Fractal2D) Sample2D(x, y float64) (float64, error) {
	fx := x * float64(f.size)
	fy := y * float64(f.size)
	// floor(fx)+1 >= size  ⇔  fx >= size-1
	edge := float64(f.size - 1)
	if !(fx >= 0) || !(fy >= 0) || fx >= edge || fy >= edge {
		return 0, nil
	}
	xi, yi := int(fx), int(fy)
	tx, ty := fx-float64(xi), fy-float64(yi)

	top := f.grid.Row(yi)
	bottom := f.grid.Row(yi + 1)
	ab := top[xi]*(1-tx) + top[xi+1]*tx
	cd := bottom[xi]*(1-tx) + bottom[xi+1]*tx

	return ab*(1-ty) + cd*ty, nil
}

// Sample3D is unsupported.
func (f *Fractal2D) Sample3D(_, _, _ float64) (float64, error) {
	return 0, fmt.Errorf("Fractal2D.Sample3D: %w", noise.ErrUnsupportedDimension)
}

// Dimensions reports noise.Dim2.
func (f *Fractal2D) Dimensions() noise.Dimensions { return noise.Dim2 }
