package heightmap_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlterrain/heightmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeightToRGBBands checks endpoints and midpoints of each band.
func TestHeightToRGBBands(t *testing.T) {
	cases := []struct {
		name string
		h    float64
		want heightmap.RGB
	}{
		{"deep water", 0, heightmap.RGB{0, 0, 128}},
		{"mid water", 0.15, heightmap.RGB{0, 64, 191}},
		{"sand start", 0.3, heightmap.RGB{194, 178, 128}},
		{"mid sand", 0.35, heightmap.RGB{207, 189, 144}},
		{"mid grass", 0.5, heightmap.RGB{42, 172, 42}},
		{"mid rock", 0.7, heightmap.RGB{159, 159, 159}},
		{"snow start", 0.8, heightmap.RGB{220, 220, 220}},
		{"mid snow", 0.9, heightmap.RGB{237, 237, 237}},
		{"peak", 1.0, heightmap.RGB{255, 255, 255}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, heightmap.HeightToRGB(tc.h))
		})
	}
}

// TestHeightToRGBClamps: out-of-range inputs map to the extreme colors.
func TestHeightToRGBClamps(t *testing.T) {
	require.Equal(t, heightmap.HeightToRGB(0), heightmap.HeightToRGB(-4))
	require.Equal(t, heightmap.HeightToRGB(0), heightmap.HeightToRGB(math.NaN()))
	require.Equal(t, heightmap.HeightToRGB(1), heightmap.HeightToRGB(3))
}

// TestToRGBLayout: three bytes per value, same order as the input.
func TestToRGBLayout(t *testing.T) {
	buf := heightmap.ToRGB([]float64{0, 1, 0.5})
	require.Equal(t, []byte{
		0, 0, 128,
		255, 255, 255,
		42, 172, 42,
	}, buf)

	require.Empty(t, heightmap.ToRGB(nil))
}
