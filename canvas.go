package parabolines

import (
	"image"

	"github.com/Ejjaffe/parabolines/internal/raster"
)

// Canvas is the drawing surface the sketches render onto: a pixmap plus
// the current stroke state. It exposes exactly what the line fields
// need, a background clear and a straight-segment stroke.
type Canvas struct {
	pixmap      *Pixmap
	rasterizer  *raster.Rasterizer
	strokeColor RGBA
	strokeWidth float64
}

// NewCanvas creates a canvas with the given pixel dimensions, a white
// stroke and a one-pixel pen.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		pixmap:      NewPixmap(width, height),
		rasterizer:  raster.NewRasterizer(width, height),
		strokeColor: White,
		strokeWidth: 1,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.pixmap.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.pixmap.Height() }

// Clear floods the whole canvas with the given color.
func (c *Canvas) Clear(col RGBA) {
	c.pixmap.Clear(col)
}

// SetStroke sets the color used by subsequent StrokeLine calls.
func (c *Canvas) SetStroke(col RGBA) {
	c.strokeColor = col
}

// Stroke returns the current stroke color.
func (c *Canvas) Stroke() RGBA { return c.strokeColor }

// SetStrokeWidth sets the pen width in pixels used by subsequent
// StrokeLine calls.
func (c *Canvas) SetStrokeWidth(w float64) {
	c.strokeWidth = w
}

// StrokeWidth returns the current pen width.
func (c *Canvas) StrokeWidth() float64 { return c.strokeWidth }

// StrokeLine strokes a straight segment between two pixel-space points
// with the current stroke color and width.
func (c *Canvas) StrokeLine(p0, p1 Point) {
	c.rasterizer.Stroke(&pixmapAdapter{pixmap: c.pixmap},
		[]raster.Point{{X: p0.X, Y: p0.Y}, {X: p1.X, Y: p1.Y}},
		c.strokeWidth,
		raster.RGBA{R: c.strokeColor.R, G: c.strokeColor.G, B: c.strokeColor.B, A: c.strokeColor.A})
}

// pixmapAdapter adapts Pixmap to the raster.Pixmap interface.
type pixmapAdapter struct {
	pixmap *Pixmap
}

func (p *pixmapAdapter) Width() int  { return p.pixmap.Width() }
func (p *pixmapAdapter) Height() int { return p.pixmap.Height() }

func (p *pixmapAdapter) SetPixel(x, y int, c raster.RGBA) {
	p.pixmap.SetPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// Pixmap returns the underlying pixel buffer.
func (c *Canvas) Pixmap() *Pixmap { return c.pixmap }

// Image returns a copy of the canvas as an image.RGBA.
func (c *Canvas) Image() *image.RGBA {
	return c.pixmap.ToImage()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}
