package warp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlterrain/fractal"
	"github.com/katalvlaran/lvlterrain/heightmap"
	"github.com/katalvlaran/lvlterrain/noise"
	"github.com/katalvlaran/lvlterrain/warp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planeSampler returns a linear function of its coordinates.
type planeSampler struct{}

func (planeSampler) Sample2D(x, y float64) (float64, error) { return 10*x + y, nil }
func (planeSampler) Sample3D(x, y, z float64) (float64, error) {
	return 0, noise.ErrUnsupportedDimension
}

// constSampler returns the same displacement everywhere.
type constSampler float64

func (c constSampler) Sample2D(_, _ float64) (float64, error)    { return float64(c), nil }
func (c constSampler) Sample3D(_, _, _ float64) (float64, error) { return float64(c), nil }

func mustPerlin(t *testing.T, seed uint64) *noise.Perlin2D {
	t.Helper()
	p, err := noise.NewPerlin2D(noise.Options{Seed: seed, Frequency: 4, Persistence: 0.5, Octaves: 4})
	require.NoError(t, err)

	return p
}

// TestIdentityAtZeroStrength: strength 0 equals sampling the base directly.
func TestIdentityAtZeroStrength(t *testing.T) {
	base, w := mustPerlin(t, 1), mustPerlin(t, 43)

	d, err := warp.New(base, w, 33, 0)
	require.NoError(t, err)
	got, err := d.Generate()
	require.NoError(t, err)

	want, err := noise.Render(base, 33)
	require.NoError(t, err)

	a, b := heightmap.Flatten(got), heightmap.Flatten(want)
	for i := range a {
		require.InDelta(t, b[i], a[i], 1e-12)
	}
}

// TestDisplacementFormula checks the coordinate shift and the [0,1] clamp.
func TestDisplacementFormula(t *testing.T) {
	d, err := warp.New(planeSampler{}, constSampler(0.5), 4, 0.5)
	require.NoError(t, err)
	hm, err := d.Generate()
	require.NoError(t, err)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			wx := min(float64(x)/4+0.25, 1)
			wy := min(float64(y)/4+0.25, 1)
			got, _ := hm.At(y, x)
			assert.InDelta(t, 10*wx+wy, got, 1e-12, "cell (%d,%d)", x, y)
		}
	}

	// large negative displacement clamps to the lower edge
	d.Strength = -100
	hm, err = d.Generate()
	require.NoError(t, err)
	for _, v := range heightmap.Flatten(hm) {
		require.Zero(t, v)
	}
}

func TestStrengthChangesField(t *testing.T) {
	base, w := mustPerlin(t, 5), mustPerlin(t, 47)
	plain, _ := warp.New(base, w, 17, 0)
	bent, _ := warp.New(base, w, 17, 0.5)

	a, err := plain.Generate()
	require.NoError(t, err)
	b, err := bent.Generate()
	require.NoError(t, err)
	require.False(t, a.Equal(b))

	again, _ := bent.Generate()
	require.True(t, b.Equal(again))
}

// TestFractalBase: a retained Diamond-Square grid works as a warp base.
func TestFractalBase(t *testing.T) {
	f, err := fractal.NewFractal2D(33, 2025, 1)
	require.NoError(t, err)
	f.Generate()
	g, _ := fractal.NewFractal2D(33, 2025+42, 1)
	g.Generate()

	d, err := warp.New(f, g, 33, 0.5)
	require.NoError(t, err)
	_, err = d.Generate()
	require.NoError(t, err)
}

func TestNewErrors(t *testing.T) {
	p := mustPerlin(t, 1)

	_, err := warp.New(nil, p, 8, 0.5)
	require.ErrorIs(t, err, warp.ErrNilSampler)
	_, err = warp.New(p, nil, 8, 0.5)
	require.ErrorIs(t, err, warp.ErrNilSampler)
	_, err = warp.New(p, p, 0, 0.5)
	require.ErrorIs(t, err, heightmap.ErrInvalidSize)
	_, err = warp.New(p, p, 8, math.NaN())
	require.ErrorIs(t, err, warp.ErrInvalidStrength)

	var d warp.DomainWarp2D
	_, err = d.Generate()
	require.ErrorIs(t, err, warp.ErrNilSampler)
}

// TestSamplerErrorsPropagate: a 3D-only sampler cannot serve either role.
func TestSamplerErrorsPropagate(t *testing.T) {
	p2 := mustPerlin(t, 1)
	p3, err := noise.NewPerlin3D(noise.DefaultOptions())
	require.NoError(t, err)

	d, _ := warp.New(p3, p2, 8, 0.5)
	_, err = d.Generate()
	require.ErrorIs(t, err, noise.ErrUnsupportedDimension)

	d, _ = warp.New(p2, p3, 8, 0.5)
	_, err = d.Generate()
	require.ErrorIs(t, err, noise.ErrUnsupportedDimension)
}
