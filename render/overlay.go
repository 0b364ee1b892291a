package render

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

// DefaultPathColor is the overlay color used by the CLI bridge rendering.
var DefaultPathColor = color.RGBA{R: 230, G: 30, B: 30, A: 255}

// DrawPath strokes a polyline through the centers of grid cells on img,
// where img is the grid enlarged by scale (see Scale). A single cell is
// filled as a square. Empty paths leave img untouched.
func DrawPath(img *image.RGBA, cells []image.Point, scale int, c color.Color, width float64) {
	if len(cells) == 0 {
		return
	}
	if scale < 1 {
		scale = 1
	}
	s := float64(scale)
	center := func(p image.Point) (float64, float64) {
		return (float64(p.X) + 0.5) * s, (float64(p.Y) + 0.5) * s
	}

	gc := draw2dimg.NewGraphicContext(img)
	if len(cells) == 1 {
		x, y := float64(cells[0].X)*s, float64(cells[0].Y)*s
		gc.SetFillColor(c)
		draw2dkit.Rectangle(gc, x, y, x+s, y+s)
		gc.Fill()
		return
	}

	gc.SetStrokeColor(c)
	gc.SetLineWidth(width)
	gc.MoveTo(center(cells[0]))
	for _, p := range cells[1:] {
		gc.LineTo(center(p))
	}
	gc.Stroke()
}
