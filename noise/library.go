package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// OpenSimplex2D sums octaves of OpenSimplex noise with the same fBm
// parameters as the native samplers. Despite the name it also evaluates 3D.
type OpenSimplex2D struct {
	opts Options
	base opensimplex.Noise
}

// NewOpenSimplex2D validates opts and seeds the OpenSimplex base.
func NewOpenSimplex2D(opts Options) (*OpenSimplex2D, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &OpenSimplex2D{opts: opts, base: opensimplex.New(int64(opts.Seed))}, nil
}

// Dimensions reports Dim2|Dim3.
func (o *OpenSimplex2D) Dimensions() Dimensions { return Dim2 | Dim3 }

// Sample2D returns the fBm sum at (x, y), in ≈[-1, 1].
func (o *OpenSimplex2D) Sample2D(x, y float64) (float64, error) {
	return fbm2(o.opts, o.base.Eval2, x, y), nil
}

// Sample3D returns the fBm sum at (x, y, z), in ≈[-1, 1].
func (o *OpenSimplex2D) Sample3D(x, y, z float64) (float64, error) {
	return fbm3(o.opts, o.base.Eval3, x, y, z), nil
}

// Classic Perlin harmonic parameters: each octave halves amplitude (alpha)
// and doubles frequency (beta).
const (
	ClassicAlpha = 2.0
	ClassicBeta  = 2.0
)

// ClassicPerlin is Ken Perlin's reference noise as implemented by go-perlin.
// The library sums its own octaves (Options.Octaves of them, weighted by
// ClassicAlpha); Options.Frequency scales the input coordinates and
// Options.Persistence is unused.
type ClassicPerlin struct {
	opts Options
	base *perlin.Perlin
}

// NewClassicPerlin validates opts and seeds the go-perlin generator.
func NewClassicPerlin(opts Options) (*ClassicPerlin, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	base := perlin.NewPerlin(ClassicAlpha, ClassicBeta, int32(opts.Octaves), int64(opts.Seed))

	return &ClassicPerlin{opts: opts, base: base}, nil
}

// Dimensions reports Dim2|Dim3.
func (c *ClassicPerlin) Dimensions() Dimensions { return Dim2 | Dim3 }

// Sample2D evaluates the library noise at (x, y) · Frequency.
func (c *ClassicPerlin) Sample2D(x, y float64) (float64, error) {
	f := c.opts.Frequency

	return c.base.Noise2D(x*f, y*f), nil
}

// Sample3D evaluates the library noise at (x, y, z) · Frequency.
func (c *ClassicPerlin) Sample3D(x, y, z float64) (float64, error) {
	f := c.opts.Frequency

	return c.base.Noise3D(x*f, y*f, z*f), nil
}
