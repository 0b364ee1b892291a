// SPDX-License-Identifier: MIT

package heightmap

// Band thresholds partitioning [0,1]. A height below ThresholdWater is water,
// below ThresholdSand is sand, and so on; everything from ThresholdRock up is
// snow.
const (
	ThresholdWater = 0.3
	ThresholdSand  = 0.4
	ThresholdGrass = 0.6
	ThresholdRock  = 0.8
)

// RGB is one 8-bit color triple.
type RGB = [3]uint8

// band is one color ramp over [lo, hi).
type band struct {
	lo, hi   float64
	from, to RGB
}

// bands are ordered; the last one is open-ended at 1.0.
var bands = [...]band{
	// deep → shallow water
	{0, ThresholdWater, RGB{0, 0, 128}, RGB{0, 128, 255}},
	// sand
	{ThresholdWater, ThresholdSand, RGB{194, 178, 128}, RGB{220, 200, 160}},
	// grass
	{ThresholdSand, ThresholdGrass, RGB{34, 139, 34}, RGB{50, 205, 50}},
	// rock
	{ThresholdGrass, ThresholdRock, RGB{128, 128, 128}, RGB{192, 192, 192}},
	// snow
	{ThresholdRock, 1.0, RGB{220, 220, 220}, RGB{255, 255, 255}},
}

// lerpColor interpolates each channel and truncates toward zero.
func lerpColor(a, b RGB, t float64) RGB {
	var out RGB
	for i := range out {
		out[i] = uint8(float64(a[i]) + (float64(b[i])-float64(a[i]))*t)
	}

	return out
}

// HeightToRGB maps a normalized height to its terrain color. Inputs outside
// [0,1] (and NaN) are clamped first, so the result is always a valid color.
func HeightToRGB(h float64) RGB {
	if !(h >= 0) {
		h = 0
	} else if h > 1 {
		h = 1
	}
	for i := 0; i < len(bands)-1; i++ {
		b := bands[i]
		if h < b.hi {
			return lerpColor(b.from, b.to, (h-b.lo)/(b.hi-b.lo))
		}
	}
	last := bands[len(bands)-1]

	return lerpColor(last.from, last.to, (h-last.lo)/(last.hi-last.lo))
}

// ToRGB converts a flat height sequence into an RGB byte buffer, three bytes
// per value, in the same order as flat.
// Complexity: O(n).
func ToRGB(flat []float64) []byte {
	buf := make([]byte, 0, len(flat)*3)
	for _, h := range flat {
		c := HeightToRGB(h)
		buf = append(buf, c[0], c[1], c[2])
	}

	return buf
}
