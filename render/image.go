package render

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/lvlterrain/heightmap"
)

// flatGray is used when the grid has no height variation.
const flatGray = 128

// Gray maps hm to 8-bit luminance, rescaling min..max to 0..255 on the fly.
// hm itself is not modified. A flat grid renders as mid gray.
func Gray(hm *heightmap.HeightMap) *image.Gray {
	n := hm.Size()
	img := image.NewGray(image.Rect(0, 0, n, n))
	lo, hi := heightmap.MinMax(hm)
	span := hi - lo
	for y := 0; y < n; y++ {
		row := hm.Row(y)
		pix := img.Pix[y*img.Stride : y*img.Stride+n]
		for x, v := range row {
			if span < heightmap.DefaultEpsilon {
				pix[x] = flatGray
				continue
			}
			pix[x] = uint8((v - lo) / span * 255)
		}
	}

	return img
}

// Color wraps a row-major RGB buffer (see heightmap.ToRGB) as an opaque
// image. The buffer is copied.
func Color(rgb []byte, size int) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("Color(size=%d): %w", size, heightmap.ErrInvalidSize)
	}
	if len(rgb) != size*size*3 {
		return nil, fmt.Errorf("Color: len=%d, size=%d: %w", len(rgb), size, ErrInvalidBuffer)
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i, j := 0, 0; i < len(rgb); i, j = i+3, j+4 {
		img.Pix[j] = rgb[i]
		img.Pix[j+1] = rgb[i+1]
		img.Pix[j+2] = rgb[i+2]
		img.Pix[j+3] = 0xff
	}

	return img, nil
}

// Scale enlarges img by an integer factor with nearest-neighbor sampling,
// keeping cells sharp. factor < 1 is treated as 1.
func Scale(img image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	return dst
}
