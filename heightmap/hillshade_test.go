package heightmap_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlterrain/heightmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHillshadeFlat: a flat grid shades every interior cell to sin(altitude)
// and leaves the border at 0.
func TestHillshadeFlat(t *testing.T) {
	hm, err := heightmap.New(4)
	require.NoError(t, err)

	shade, err := heightmap.Hillshade(hm, 1)
	require.NoError(t, err)
	require.Equal(t, 4, shade.Size())

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v, _ := shade.At(y, x)
			if y == 0 || x == 0 || y == 3 || x == 3 {
				assert.Zero(t, v, "border (%d,%d)", x, y)
				continue
			}
			assert.InDelta(t, math.Sin(heightmap.LightAltitude), v, 1e-12)
		}
	}
}

// TestHillshadeFacing: slopes facing the light are brighter than slopes facing away.
func TestHillshadeFacing(t *testing.T) {
	// height decreases toward +x and +y, so the surface faces the light.
	toward := mustRows(t, [][]float64{{2, 1, 0}, {1, 0, -1}, {0, -1, -2}})
	away := mustRows(t, [][]float64{{-2, -1, 0}, {-1, 0, 1}, {0, 1, 2}})

	s1, err := heightmap.Hillshade(toward, 1)
	require.NoError(t, err)
	s2, err := heightmap.Hillshade(away, 1)
	require.NoError(t, err)

	v1, _ := s1.At(1, 1)
	v2, _ := s2.At(1, 1)
	require.Greater(t, v1, v2)
	require.GreaterOrEqual(t, v2, 0.0)
	require.LessOrEqual(t, v1, 1.0)
}

func TestShade(t *testing.T) {
	shade := mustRows(t, [][]float64{{0, 1}, {math.Sin(math.Pi / 4), -3}})
	rgb := []byte{
		200, 100, 10,
		200, 100, 10,
		200, 100, 10,
		200, 100, 10,
	}

	out, err := heightmap.Shade(rgb, shade)
	require.NoError(t, err)
	// s=0 halves, s=1 keeps, s=-3 clamps to black.
	require.Equal(t, []byte{
		100, 50, 5,
		200, 100, 10,
		170, 85, 8,
		0, 0, 0,
	}, out)
	require.Equal(t, byte(200), rgb[0], "input is not modified")

	_, err = heightmap.Shade(rgb[:6], shade)
	require.ErrorIs(t, err, heightmap.ErrNonSquare)

	_, err = heightmap.Shade(rgb, nil)
	require.ErrorIs(t, err, heightmap.ErrNilMap)
}
