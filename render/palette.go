package render

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/mazznoer/colorgrad"

	"github.com/katalvlaran/lvlterrain/heightmap"
)

// PaletteBands is the fixed water/sand/grass/rock/snow ramp of heightmap.ToRGB.
const PaletteBands = "bands"

// palettes maps names to gradient constructors. "elevation" is the classic
// blue→cyan→green→yellow→red relief ramp.
var palettes = map[string]func() (colorgrad.Gradient, error){
	"elevation": func() (colorgrad.Gradient, error) {
		return colorgrad.NewGradient().
			Colors(
				color.RGBA{0, 0, 255, 255},
				color.RGBA{0, 255, 255, 255},
				color.RGBA{0, 255, 0, 255},
				color.RGBA{255, 255, 0, 255},
				color.RGBA{255, 0, 0, 255},
			).
			Build()
	},
	"viridis":   func() (colorgrad.Gradient, error) { return colorgrad.Viridis(), nil },
	"turbo":     func() (colorgrad.Gradient, error) { return colorgrad.Turbo(), nil },
	"cubehelix": func() (colorgrad.Gradient, error) { return colorgrad.CubehelixDefault(), nil },
}

// Palettes lists the accepted palette names, sorted, PaletteBands included.
func Palettes() []string {
	names := make([]string, 0, len(palettes)+1)
	names = append(names, PaletteBands)
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Palette returns the named gradient. PaletteBands has no gradient form;
// use heightmap.ToRGB and Color for it.
func Palette(name string) (colorgrad.Gradient, error) {
	build, ok := palettes[name]
	if !ok {
		var none colorgrad.Gradient
		return none, fmt.Errorf("palette %q: %w", name, ErrUnknownPalette)
	}

	return build()
}

// GradientRGB maps every cell of a normalized grid through g into a row-major
// RGB buffer with the same layout as heightmap.ToRGB. Values outside [0,1]
// are clamped.
func GradientRGB(hm *heightmap.HeightMap, g colorgrad.Gradient) []byte {
	flat := heightmap.Flatten(hm)
	out := make([]byte, 0, len(flat)*3)
	for _, v := range flat {
		if !(v > 0) {
			v = 0
		} else if v > 1 {
			v = 1
		}
		r, gg, b := g.At(v).Clamped().RGB255()
		out = append(out, r, gg, b)
	}

	return out
}

// Colorize renders hm with the named palette, falling back to the band ramp
// for PaletteBands.
func Colorize(hm *heightmap.HeightMap, name string) (*image.RGBA, error) {
	if name == PaletteBands {
		return Color(heightmap.ToRGB(heightmap.Flatten(hm)), hm.Size())
	}
	g, err := Palette(name)
	if err != nil {
		return nil, err
	}

	return Color(GradientRGB(hm, g), hm.Size())
}
