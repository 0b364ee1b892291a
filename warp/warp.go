// Package warp perturbs the sampling coordinates of one noise field with the
// output of another (domain warping), breaking up the grid-aligned look of
// plain gradient noise.
//
// For every cell of a size×size grid over the unit square:
//
//	fx, fy = x/size, y/size
//	dx = Warp(3·fx, 3·fy)
//	dy = Warp(3·(fx+5.2), 3·(fy+5.2))
//	cell = Base(clamp(fx + dx·strength), clamp(fy + dy·strength))
//
// The scale and offset decorrelate the two displacement lookups; they are
// fixed constants. Strength 0 reproduces noise.Render(Base, size).
package warp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlterrain/heightmap"
	"github.com/katalvlaran/lvlterrain/noise"
)

const (
	// DecorrelationScale multiplies warp lookup coordinates.
	DecorrelationScale = 3.0
	// DecorrelationOffset shifts the second (y) displacement lookup.
	DecorrelationOffset = 5.2
)

var (
	// ErrNilSampler indicates a nil base or warp sampler.
	ErrNilSampler = errors.New("warp: base and warp samplers are required")

	// ErrInvalidStrength indicates a NaN or infinite strength.
	ErrInvalidStrength = errors.New("warp: strength must be finite")
)

// DomainWarp2D composes two samplers. It holds references only; the samplers
// stay owned by the caller and may be shared.
type DomainWarp2D struct {
	Base     noise.Sampler
	Warp     noise.Sampler
	Size     int
	Strength float64
}

// New validates its arguments and returns a ready operator.
func New(base, warp noise.Sampler, size int, strength float64) (*DomainWarp2D, error) {
	d := &DomainWarp2D{Base: base, Warp: warp, Size: size, Strength: strength}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks a hand-built operator.
func (d *DomainWarp2D) Validate() error {
	if d.Base == nil || d.Warp == nil {
		return ErrNilSampler
	}
	if d.Size < 1 {
		return fmt.Errorf("warp size=%d: %w", d.Size, heightmap.ErrInvalidSize)
	}
	if math.IsNaN(d.Strength) || math.IsInf(d.Strength, 0) {
		return fmt.Errorf("warp strength=%v: %w", d.Strength, ErrInvalidStrength)
	}

	return nil
}

// Generate renders the warped field. Sampler errors (e.g. a 3D-only base)
// stop generation and are returned wrapped with the failing cell.
// Complexity: O(Size² · sampler cost), three samples per cell.
func (d *DomainWarp2D) Generate() (*heightmap.HeightMap, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	hm, err := heightmap.New(d.Size)
	if err != nil {
		return nil, err
	}

	fs := float64(d.Size)
	for y := 0; y < d.Size; y++ {
		row := hm.Row(y)
		for x := range row {
			v, err := d.at(float64(x)/fs, float64(y)/fs)
			if err != nil {
				return nil, fmt.Errorf("DomainWarp2D.Generate(%d,%d): %w", x, y, err)
			}
			row[x] = v
		}
	}

	return hm, nil
}

// at evaluates one warped sample at unit-square coordinates (fx, fy).
func (d *DomainWarp2D) at(fx, fy float64) (float64, error) {
	dx, err := d.Warp.Sample2D(fx*DecorrelationScale, fy*DecorrelationScale)
	if err != nil {
		return 0, err
	}
	dy, err := d.Warp.Sample2D((fx+DecorrelationOffset)*DecorrelationScale, (fy+DecorrelationOffset)*DecorrelationScale)
	if err != nil {
		return 0, err
	}
	wx := clamp01(fx + dx*d.Strength)
	wy := clamp01(fy + dy*d.Strength)

	return d.Base.Sample2D(wx, wy)
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
