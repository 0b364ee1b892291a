package render

import (
	"fmt"
	"image"

	"github.com/katalvlaran/lvlterrain/heightmap"
)

// DefaultZScale exaggerates normalized heights for hillshading.
const DefaultZScale = 50.0

// PreviewOptions selects how Preview colors a grid.
type PreviewOptions struct {
	Palette string  // PaletteBands or a name from Palettes; ignored when Gray
	Gray    bool    // luminance instead of a palette
	Shade   bool    // multiply by heightmap.Hillshade
	ZScale  float64 // hillshade height exaggeration
	Scale   int     // integer enlargement, 1 = one pixel per cell
}

// DefaultPreviewOptions returns band colors, no shading, scale 1.
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{Palette: PaletteBands, ZScale: DefaultZScale, Scale: 1}
}

// Preview renders a normalized grid: color (or gray), optional hillshade,
// then enlargement.
func Preview(hm *heightmap.HeightMap, o PreviewOptions) (*image.RGBA, error) {
	if hm == nil {
		return nil, fmt.Errorf("Preview: %w", heightmap.ErrNilMap)
	}
	n := hm.Size()

	var rgb []byte
	if o.Gray {
		g := Gray(hm)
		rgb = make([]byte, 0, n*n*3)
		for y := 0; y < n; y++ {
			for _, p := range g.Pix[y*g.Stride : y*g.Stride+n] {
				rgb = append(rgb, p, p, p)
			}
		}
	} else {
		img, err := Colorize(hm, o.Palette)
		if err != nil {
			return nil, err
		}
		if !o.Shade && o.Scale <= 1 {
			return img, nil
		}
		rgb = make([]byte, 0, n*n*3)
		for i := 0; i < len(img.Pix); i += 4 {
			rgb = append(rgb, img.Pix[i], img.Pix[i+1], img.Pix[i+2])
		}
	}

	if o.Shade {
		shade, err := heightmap.Hillshade(hm, o.ZScale)
		if err != nil {
			return nil, err
		}
		if rgb, err = heightmap.Shade(rgb, shade); err != nil {
			return nil, err
		}
	}

	img, err := Color(rgb, n)
	if err != nil {
		return nil, err
	}
	if o.Scale > 1 {
		return Scale(img, o.Scale), nil
	}

	return img, nil
}
