package noise

import "github.com/katalvlaran/lvlterrain/rng"

// Perlin3D is multi-octave 3D gradient noise; the 2D plane is not supported.
type Perlin3D struct {
	opts Options
	perm rng.Permutation
}

// NewPerlin3D validates opts and builds the permutation table from
// opts.Seed ^ rng.SaltPerlin3D.
func NewPerlin3D(opts Options) (*Perlin3D, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Perlin3D{opts: opts, perm: rng.NewPermutation(opts.Seed, rng.SaltPerlin3D)}, nil
}

// Options returns the parameters the sampler was built with.
func (p *Perlin3D) Options() Options { return p.opts }

// Dimensions reports Dim3.
func (p *Perlin3D) Dimensions() Dimensions { return Dim3 }

// Sample2D is unsupported.
func (p *Perlin3D) Sample2D(_, _ float64) (float64, error) {
	return 0, unsupported("Perlin3D", "Sample2D")
}

// Sample3D returns the fBm sum at (x, y, z), in ≈[-1, 1].
func (p *Perlin3D) Sample3D(x, y, z float64) (float64, error) {
	return fbm3(p.opts, p.raw, x, y, z), nil
}

// grad3 selects among the 12 cube-edge directions (with 4 repeats) from
// the low 4 bits of hash.
func grad3(hash uint8, x, y, z float64) float64 {
	h := hash & 0xF
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}

	return u + v
}

// hash chains three permutation lookups for lattice corner (x, y, z).
func (p *Perlin3D) hash(x, y, z int) uint8 {
	perm := &p.perm

	return perm[(int(perm[(int(perm[x])+y)&255])+z)&255]
}

func (p *Perlin3D) raw(x, y, z float64) float64 {
	xi, xf := cell(x)
	yi, yf := cell(y)
	zi, zf := cell(z)
	u, v, w := fade(xf), fade(yf), fade(zf)
	xi1, yi1, zi1 := (xi+1)&255, (yi+1)&255, (zi+1)&255

	aaa := p.hash(xi, yi, zi)
	aba := p.hash(xi, yi1, zi)
	aab := p.hash(xi, yi, zi1)
	abb := p.hash(xi, yi1, zi1)
	baa := p.hash(xi1, yi, zi)
	bba := p.hash(xi1, yi1, zi)
	bab := p.hash(xi1, yi, zi1)
	bbb := p.hash(xi1, yi1, zi1)

	// near z face
	x1 := lerp(grad3(aaa, xf, yf, zf), grad3(baa, xf-1, yf, zf), u)
	x2 := lerp(grad3(aba, xf, yf-1, zf), grad3(bba, xf-1, yf-1, zf), u)
	y1 := lerp(x1, x2, v)

	// far z face
	x3 := lerp(grad3(aab, xf, yf, zf-1), grad3(bab, xf-1, yf, zf-1), u)
	x4 := lerp(grad3(abb, xf, yf-1, zf-1), grad3(bbb, xf-1, yf-1, zf-1), u)
	y2 := lerp(x3, x4, v)

	return lerp(y1, y2, w)
}
