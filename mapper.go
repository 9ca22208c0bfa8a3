package parabolines

import (
	"errors"
	"fmt"
)

// ErrInvalidRange reports a degenerate cartesian range or non-positive
// canvas dimensions at Mapper construction.
var ErrInvalidRange = errors.New("parabolines: invalid mapper range")

// Mapper converts points in a fixed cartesian rectangle to pixel
// coordinates in a fixed canvas rectangle, linearly per axis.
//
// The cartesian viewport has y increasing upward; the canvas has row 0
// at the top, so MapY inverts the axis. Inputs outside the source range
// extrapolate, they are never clamped.
//
// A Mapper is immutable after construction and may be shared by any
// number of line fields.
type Mapper struct {
	x0, x1 float64
	y0, y1 float64
	width  float64
	height float64
}

// NewMapper creates a mapper from the cartesian viewport
// [x0,x1] x [y0,y1] onto a width-by-height pixel canvas.
//
// Both ranges must be non-degenerate (min != max, otherwise the affine
// factors divide by zero) and both dimensions positive; violations
// return ErrInvalidRange.
func NewMapper(x0, x1, y0, y1 float64, width, height int) (*Mapper, error) {
	if x0 == x1 {
		return nil, fmt.Errorf("%w: x range [%v,%v] is degenerate", ErrInvalidRange, x0, x1)
	}
	if y0 == y1 {
		return nil, fmt.Errorf("%w: y range [%v,%v] is degenerate", ErrInvalidRange, y0, y1)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d (both dimensions must be > 0)", ErrInvalidRange, width, height)
	}

	logger().Debug("mapper constructed",
		"x", [2]float64{x0, x1},
		"y", [2]float64{y0, y1},
		"canvas", [2]int{width, height})

	return &Mapper{
		x0: x0, x1: x1,
		y0: y0, y1: y1,
		width:  float64(width),
		height: float64(height),
	}, nil
}

// MapX linearly remaps x from the cartesian x-range to [0, width].
func (m *Mapper) MapX(x float64) float64 {
	return (x - m.x0) / (m.x1 - m.x0) * m.width
}

// MapY linearly remaps y from the cartesian y-range to [height, 0].
// The target interval is inverted because canvas row 0 is the top while
// cartesian y increases upward.
func (m *Mapper) MapY(y float64) float64 {
	return m.height - (y-m.y0)/(m.y1-m.y0)*m.height
}

// Convert returns the pixel-space point for the cartesian point (x, y).
func (m *Mapper) Convert(x, y float64) Point {
	return Point{X: m.MapX(x), Y: m.MapY(y)}
}

// Width returns the canvas width in pixels.
func (m *Mapper) Width() int { return int(m.width) }

// Height returns the canvas height in pixels.
func (m *Mapper) Height() int { return int(m.height) }
