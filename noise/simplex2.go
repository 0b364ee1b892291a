package noise

import (
	"math"

	"github.com/katalvlaran/lvlterrain/rng"
)

// Skew and unskew factors between the square grid and the triangle lattice.
var (
	skewF2   = 0.5 * (math.Sqrt(3) - 1)
	unskewG2 = (3 - math.Sqrt(3)) / 6
)

// simplexGrads are the twelve 2D gradient directions.
var simplexGrads = [12][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
}

// simplexScale multiplies the three-corner sum. With the (±1, ±2) gradients
// single-octave output peaks near ±1.548, so samples span ≈[-1.55, 1.55].
const simplexScale = 70.0

// Simplex2DBound is an upper bound on |Simplex2D.Sample2D|.
const Simplex2DBound = 1.6

// Simplex2D is multi-octave 2D simplex noise.
type Simplex2D struct {
	opts Options
	perm rng.Permutation
}

// NewSimplex2D validates opts and builds the permutation table from
// opts.Seed ^ rng.SaltSimplex2D.
func NewSimplex2D(opts Options) (*Simplex2D, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Simplex2D{opts: opts, perm: rng.NewPermutation(opts.Seed, rng.SaltSimplex2D)}, nil
}

// Options returns the parameters the sampler was built with.
func (s *Simplex2D) Options() Options { return s.opts }

// Dimensions reports Dim2.
func (s *Simplex2D) Dimensions() Dimensions { return Dim2 }

// Sample2D returns the fBm sum at (x, y), in ≈[-1.55, 1.55]; callers that
// need [0, 1] normalize the rendered grid.
func (s *Simplex2D) Sample2D(x, y float64) (float64, error) {
	return fbm2(s.opts, s.raw, x, y), nil
}

// Sample3D is unsupported.
func (s *Simplex2D) Sample3D(_, _, _ float64) (float64, error) {
	return 0, unsupported("Simplex2D", "Sample3D")
}

// corner is one simplex vertex contribution t⁴·(g·d) inside radius² 0.5.
func corner(g [2]float64, dx, dy float64) float64 {
	t := 0.5 - dx*dx - dy*dy
	if t <= 0 {
		return 0
	}
	t *= t

	return t * t * (g[0]*dx + g[1]*dy)
}

func (s *Simplex2D) raw(xin, yin float64) float64 {
	// Stage 1: skew into lattice space and locate the containing cell.
	sk := (xin + yin) * skewF2
	i := int(math.Floor(xin + sk))
	j := int(math.Floor(yin + sk))

	// Stage 2: unskew; offsets from the cell origin pick the triangle.
	t := float64(i+j) * unskewG2
	x0 := xin - (float64(i) - t)
	y0 := yin - (float64(j) - t)
	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}
	x1 := x0 - float64(i1) + unskewG2
	y1 := y0 - float64(j1) + unskewG2
	x2 := x0 - 1 + 2*unskewG2
	y2 := y0 - 1 + 2*unskewG2

	// Stage 3: hash the three corners and sum their contributions.
	perm := &s.perm
	ii, jj := i&255, j&255
	g0 := perm[ii+int(perm[jj])] % 12
	g1 := perm[ii+i1+int(perm[jj+j1])] % 12
	g2 := perm[ii+1+int(perm[jj+1])] % 12

	n := corner(simplexGrads[g0], x0, y0) +
		corner(simplexGrads[g1], x1, y1) +
		corner(simplexGrads[g2], x2, y2)

	return simplexScale * n
}
