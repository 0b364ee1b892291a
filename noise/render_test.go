package noise_test

import (
	"testing"

	"github.com/katalvlaran/lvlterrain/heightmap"
	"github.com/katalvlaran/lvlterrain/noise"
	"github.com/stretchr/testify/require"
)

// TestRenderMatchesSamples: cell (y,x) equals Sample2D(x/size, y/size).
func TestRenderMatchesSamples(t *testing.T) {
	const size = 17
	s, err := noise.NewSimplex2D(opts(3, 4, 0.5, 3))
	require.NoError(t, err)

	hm, err := noise.Render(s, size)
	require.NoError(t, err)
	require.Equal(t, size, hm.Size())

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			want, _ := s.Sample2D(float64(x)/size, float64(y)/size)
			got, _ := hm.At(y, x)
			require.Equal(t, want, got)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	p2, _ := noise.NewPerlin2D(noise.DefaultOptions())
	_, err := noise.Render(p2, 0)
	require.ErrorIs(t, err, heightmap.ErrInvalidSize)

	_, err = noise.Render(nil, 8)
	require.ErrorIs(t, err, noise.ErrNilSampler)

	p3, _ := noise.NewPerlin3D(noise.DefaultOptions())
	_, err = noise.Render(p3, 8)
	require.ErrorIs(t, err, noise.ErrUnsupportedDimension)
}
