package heightmap

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Light direction used by Hillshade: azimuth 45°, altitude 45°.
const (
	LightAzimuth  = math.Pi / 4
	LightAltitude = math.Pi / 4
)

// lightDir is the unit vector toward the light source.
var lightDir = mgl64.Vec3{
	math.Cos(LightAzimuth) * math.Cos(LightAltitude),
	math.Sin(LightAzimuth) * math.Cos(LightAltitude),
	math.Sin(LightAltitude),
}

// Hillshade computes Lambertian shading for every interior cell from central
// differences scaled by zScale. Border cells have no full neighborhood and
// stay 0. Values lie in [0,1]; a flat interior shades to sin(LightAltitude).
// Complexity: O(size²).
func Hillshade(hm *HeightMap, zScale float64) (*HeightMap, error) {
	if hm == nil {
		return nil, fmt.Errorf("Hillshade: %w", ErrNilMap)
	}
	n := hm.size
	out := &HeightMap{size: n, data: make([]float64, n*n)}

	for y := 1; y < n-1; y++ {
		for x := 1; x < n-1; x++ {
			dzdx := (hm.data[y*n+x+1] - hm.data[y*n+x-1]) / 2 * zScale
			dzdy := (hm.data[(y+1)*n+x] - hm.data[(y-1)*n+x]) / 2 * zScale
			normal := mgl64.Vec3{-dzdx, -dzdy, 1}.Normalize()
			out.data[y*n+x] = math.Max(normal.Dot(lightDir), 0)
		}
	}

	return out, nil
}

// Shade darkens an RGB buffer by a shade map: each pixel is scaled by
// clamp(0.5*s+0.5, 0, 1) and truncated. The input buffer is not modified.
// Returns ErrNonSquare when len(rgb) != 3*size².
func Shade(rgb []byte, shade *HeightMap) ([]byte, error) {
	if shade == nil {
		return nil, fmt.Errorf("Shade: %w", ErrNilMap)
	}
	if len(rgb) != 3*len(shade.data) {
		return nil, fmt.Errorf("Shade: %d bytes for %d cells: %w", len(rgb), len(shade.data), ErrNonSquare)
	}
	out := make([]byte, len(rgb))
	for i, s := range shade.data {
		light := math.Min(math.Max(s*0.5+0.5, 0), 1)
		for c := 0; c < 3; c++ {
			out[3*i+c] = uint8(float64(rgb[3*i+c]) * light)
		}
	}

	return out, nil
}
