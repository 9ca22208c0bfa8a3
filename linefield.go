package parabolines

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoefficient reports a zero parabola coefficient at
// LineField construction. A zero coefficient has no sign and makes the
// extent calculation divide by zero.
var ErrInvalidCoefficient = errors.New("parabolines: invalid parabola coefficient")

// driftAmplitude scales the shared per-frame oscillation applied to
// every line height.
const driftAmplitude = 0.005

// Source produces uniform random values in [0, 1). *math/rand.Rand
// satisfies it; tests substitute fixed sequences.
type Source interface {
	Float64() float64
}

// FieldConfig carries the construction parameters of a LineField.
type FieldConfig struct {
	// Coefficient is the parabola coefficient in y = Coefficient * x^2.
	// Must be nonzero; its sign decides whether the field opens upward
	// or downward.
	Coefficient float64

	// Reach is the maximum signed distance of a line from the vertex,
	// as a positive magnitude. Initial heights span
	// [0, sign(Coefficient)*Reach).
	Reach float64

	// Lines is the number of segments in the field.
	Lines int

	// Animate enables the per-frame drift step.
	Animate bool

	// TimeStep is the amount of simulated time added per step.
	TimeStep float64

	// Color is the stroke color used when rendering the field.
	Color RGBA
}

// LineField owns a set of horizontal segments bounded by the curve
// y = coefficient * x^2, animates their vertical placement, and renders
// them through a shared Mapper.
//
// Heights are placed once at construction by stratified sampling. The
// animation step drifts every height by the same cosine term, so lines
// in one field move in unison. Heights may leave their initial band
// over time; nothing pulls them back.
type LineField struct {
	coeff    float64
	dir      float64 // sign of coeff
	reach    float64
	animate  bool
	timeStep float64
	time     float64
	heights  []float64
	mapper   *Mapper
	color    RGBA
}

// NewLineField creates a field of cfg.Lines segments under the parabola
// y = cfg.Coefficient * x^2, with initial heights drawn from src by
// stratified sampling: [0,1) is split into cfg.Lines equal cells, one
// uniform draw lands in each cell, and the result is scaled by
// sign(cfg.Coefficient) * cfg.Reach. Even coverage with jitter, no
// clustering.
//
// The mapper is required and shared read-only; many fields may hold the
// same one. cfg.Coefficient must be nonzero (ErrInvalidCoefficient),
// cfg.Reach positive and cfg.Lines at least 1.
func NewLineField(m *Mapper, cfg FieldConfig, src Source) (*LineField, error) {
	if m == nil {
		return nil, errors.New("parabolines: line field requires a mapper")
	}
	if cfg.Coefficient == 0 {
		return nil, fmt.Errorf("%w: coefficient must be nonzero", ErrInvalidCoefficient)
	}
	if cfg.Reach <= 0 {
		return nil, fmt.Errorf("parabolines: reach must be > 0, got %v", cfg.Reach)
	}
	if cfg.Lines < 1 {
		return nil, fmt.Errorf("parabolines: line count must be >= 1, got %d", cfg.Lines)
	}
	if src == nil {
		return nil, errors.New("parabolines: line field requires a random source")
	}

	dir := 1.0
	if cfg.Coefficient < 0 {
		dir = -1.0
	}

	n := float64(cfg.Lines)
	heights := make([]float64, cfg.Lines)
	for i := range heights {
		// One sample per cell [i/n, (i+1)/n), scaled onto the reach.
		unscaled := (float64(i) + src.Float64()) / n
		heights[i] = unscaled * cfg.Reach * dir
	}

	logger().Debug("line field constructed",
		"coefficient", cfg.Coefficient,
		"reach", cfg.Reach,
		"lines", cfg.Lines,
		"animate", cfg.Animate)

	return &LineField{
		coeff:    cfg.Coefficient,
		dir:      dir,
		reach:    cfg.Reach,
		animate:  cfg.Animate,
		timeStep: cfg.TimeStep,
		heights:  heights,
		mapper:   m,
		color:    cfg.Color,
	}, nil
}

// Extent returns the horizontal half-width of a segment at height h,
// obtained by inverting the bounding parabola: x = sqrt(|h / coeff|).
// Both endpoints (-Extent(h), h) and (Extent(h), h) lie exactly on the
// curve.
func (f *LineField) Extent(h float64) float64 {
	return math.Sqrt(math.Abs(h / f.coeff))
}

// Step advances simulated time by the field's time step and drifts
// every height by the same 0.005*cos(t) term. The phase depends only on
// field time, not on per-line state, so all lines move together.
func (f *LineField) Step() {
	f.time += f.timeStep
	d := driftAmplitude * math.Cos(f.time)
	for i := range f.heights {
		f.heights[i] += d
	}
}

// Render strokes every segment onto cv at its current height. Render
// does not mutate the field.
func (f *LineField) Render(cv *Canvas) {
	cv.SetStroke(f.color)
	for _, h := range f.heights {
		e := f.Extent(h)
		cv.StrokeLine(f.mapper.Convert(-e, h), f.mapper.Convert(e, h))
	}
}

// AdvanceAndRender performs one animation step when animation is
// enabled, then renders the field. With animation disabled it renders
// the static heights unchanged, however often it is called.
func (f *LineField) AdvanceAndRender(cv *Canvas) {
	if f.animate {
		f.Step()
	}
	f.Render(cv)
}

// Heights returns a copy of the current line heights, ordered as
// placed.
func (f *LineField) Heights() []float64 {
	out := make([]float64, len(f.heights))
	copy(out, f.heights)
	return out
}

// Time returns the field's current simulated time.
func (f *LineField) Time() float64 { return f.time }

// Coefficient returns the parabola coefficient.
func (f *LineField) Coefficient() float64 { return f.coeff }

// Direction returns the sign of the coefficient: +1 for fields opening
// upward, -1 for fields opening downward.
func (f *LineField) Direction() float64 { return f.dir }
