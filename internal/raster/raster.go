// Package raster provides scanline rasterization for line sketches:
// non-zero-winding polygon fill and thick line stroking built on it.
package raster

import (
	"math"
	"sort"
)

// RGBA represents a color (internal copy to avoid an import cycle with
// the root package).
type RGBA struct {
	R, G, B, A float64
}

// Point represents a 2D pixel-space point.
type Point struct {
	X, Y float64
}

// Pixmap is the pixel sink the rasterizer writes to.
type Pixmap interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGBA)
}

// Rasterizer performs scanline rasterization onto a fixed-size target.
type Rasterizer struct {
	width  int
	height int
	active []crossing // scratch, reused across scanlines
}

// crossing is an edge intersection with the current scanline.
type crossing struct {
	x   float64
	dir int // winding direction, +1 or -1
}

// NewRasterizer creates a rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		active: make([]crossing, 0, 8),
	}
}

// Fill rasterizes the polygon described by points (a closed point loop)
// using the non-zero winding rule. Pixels are sampled at scanline
// centers; horizontal edges contribute nothing.
func (r *Rasterizer) Fill(pm Pixmap, points []Point, color RGBA) {
	if len(points) < 3 {
		return
	}

	edges := buildEdges(points)
	if len(edges) == 0 {
		return
	}

	yMin, yMax := math.MaxFloat64, -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	lo := int(math.Floor(yMin))
	hi := int(math.Ceil(yMax))
	if lo < 0 {
		lo = 0
	}
	if hi > pm.Height() {
		hi = pm.Height()
	}

	for y := lo; y < hi; y++ {
		r.scanline(pm, edges, float64(y)+0.5, y, color)
	}
}

// scanline fills the spans where the winding number is nonzero.
func (r *Rasterizer) scanline(pm Pixmap, edges []edge, scanY float64, y int, color RGBA) {
	r.active = r.active[:0]
	for _, e := range edges {
		if e.y0 <= scanY && scanY < e.y1 {
			r.active = append(r.active, crossing{x: e.xAt(scanY), dir: e.dir})
		}
	}
	if len(r.active) == 0 {
		return
	}

	sort.Slice(r.active, func(i, j int) bool { return r.active[i].x < r.active[j].x })

	winding := 0
	var spanStart float64
	for _, c := range r.active {
		if winding == 0 {
			spanStart = c.x
		}
		winding += c.dir
		if winding == 0 {
			r.fillSpan(pm, int(spanStart), int(c.x), y, color)
		}
	}
}

// fillSpan fills a horizontal run of pixels, clipped to the target.
func (r *Rasterizer) fillSpan(pm Pixmap, x1, x2, y int, color RGBA) {
	if y < 0 || y >= pm.Height() {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > pm.Width() {
		x2 = pm.Width()
	}
	for x := x1; x < x2; x++ {
		pm.SetPixel(x, y, color)
	}
}

// Stroke draws the polyline through points as thick segments. Widths
// below one pixel are raised to one so hairlines stay visible.
func (r *Rasterizer) Stroke(pm Pixmap, points []Point, lineWidth float64, color RGBA) {
	if len(points) < 2 {
		return
	}
	if lineWidth < 1 {
		lineWidth = 1
	}
	for i := 0; i < len(points)-1; i++ {
		r.strokeLine(pm, points[i], points[i+1], lineWidth, color)
	}
}

// strokeLine fills the quad that a width-wide pen leaves between p0 and
// p1. Degenerate (near zero length) segments are skipped.
func (r *Rasterizer) strokeLine(pm Pixmap, p0, p1 Point, width float64, color RGBA) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.001 {
		return
	}

	// Unit normal, offset by half the pen width.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	quad := []Point{
		{X: p0.X + nx, Y: p0.Y + ny},
		{X: p0.X - nx, Y: p0.Y - ny},
		{X: p1.X - nx, Y: p1.Y - ny},
		{X: p1.X + nx, Y: p1.Y + ny},
		{X: p0.X + nx, Y: p0.Y + ny},
	}
	r.Fill(pm, quad, color)
}
