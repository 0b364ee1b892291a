package noise

import "github.com/katalvlaran/lvlterrain/rng"

// Perlin2D is multi-octave 2D gradient noise over a seeded permutation table.
// It is read-only after construction.
type Perlin2D struct {
	opts Options
	perm rng.Permutation
}

// NewPerlin2D validates opts and builds the permutation table from
// opts.Seed ^ rng.SaltPerlin2D.
func NewPerlin2D(opts Options) (*Perlin2D, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Perlin2D{opts: opts, perm: rng.NewPermutation(opts.Seed, rng.SaltPerlin2D)}, nil
}

// Options returns the parameters the sampler was built with.
func (p *Perlin2D) Options() Options { return p.opts }

// Dimensions reports Dim2.
func (p *Perlin2D) Dimensions() Dimensions { return Dim2 }

// Sample2D returns the fBm sum at (x, y), in ≈[-1, 1]. Never fails.
func (p *Perlin2D) Sample2D(x, y float64) (float64, error) {
	return fbm2(p.opts, p.raw, x, y), nil
}

// Sample3D is unsupported.
func (p *Perlin2D) Sample3D(_, _, _ float64) (float64, error) {
	return 0, unsupported("Perlin2D", "Sample3D")
}

// grad2 picks one of eight gradient directions from the low 4 bits of hash
// and returns its dot product with (x, y).
func grad2(hash uint8, x, y float64) float64 {
	h := hash & 0xF
	u, v := x, y
	if h >= 8 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}

	return u + v
}

// raw is single-octave noise; zero on every lattice point.
func (p *Perlin2D) raw(x, y float64) float64 {
	xi, xf := cell(x)
	yi, yf := cell(y)
	u, v := fade(xf), fade(yf)

	perm := &p.perm
	xi1, yi1 := (xi+1)&255, (yi+1)&255
	aa := perm[(int(perm[xi])+yi)&255]
	ab := perm[(int(perm[xi])+yi1)&255]
	ba := perm[(int(perm[xi1])+yi)&255]
	bb := perm[(int(perm[xi1])+yi1)&255]

	x1 := lerp(grad2(aa, xf, yf), grad2(ba, xf-1, yf), u)
	x2 := lerp(grad2(ab, xf, yf-1), grad2(bb, xf-1, yf-1), u)

	return lerp(x1, x2, v)
}
