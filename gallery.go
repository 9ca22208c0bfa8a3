package parabolines

import "fmt"

// Default canvas size of the built-in sketches. Hosts that supersample
// render at a multiple of this and downscale afterward.
const (
	DefaultWidth  = 600
	DefaultHeight = 600
)

// Solo is the single-parabola sketch: one animated field of 16
// lines under y = 2x^2, reaching one unit from the vertex, pale strokes
// on a near-black background.
func Solo(src Source) (*Scene, error) {
	return SoloSized(DefaultWidth, DefaultHeight, src)
}

// SoloSized is Solo at an explicit canvas size. Offline renderers use
// it to supersample.
func SoloSized(width, height int, src Source) (*Scene, error) {
	m, err := NewMapper(-1.2, 1.2, -0.2, 1.4, width, height)
	if err != nil {
		return nil, err
	}

	scene, err := NewScene(m, Hex("#10101e"), 2)
	if err != nil {
		return nil, err
	}

	field, err := NewLineField(m, FieldConfig{
		Coefficient: 2,
		Reach:       1,
		Lines:       16,
		Animate:     true,
		TimeStep:    0.025,
		Color:       Hex("#e8e8ff"),
	}, src)
	if err != nil {
		return nil, err
	}
	scene.AddField(field)

	return scene, nil
}

// Medley is the multi-shape variant: several fields sharing one mapper,
// each with a randomized coefficient (sign and magnitude), reach, line
// count and time step, hues spread evenly around the color wheel. The
// same random source drives both the parameter randomization and the
// stratified placement, so a seed reproduces the whole scene.
func Medley(src Source) (*Scene, error) {
	return MedleySized(DefaultWidth, DefaultHeight, src)
}

// MedleySized is Medley at an explicit canvas size.
func MedleySized(width, height int, src Source) (*Scene, error) {
	if src == nil {
		return nil, fmt.Errorf("parabolines: medley requires a random source")
	}

	m, err := NewMapper(-1.5, 1.5, -1.5, 1.5, width, height)
	if err != nil {
		return nil, err
	}

	scene, err := NewScene(m, Hex("#141414"), 1.5)
	if err != nil {
		return nil, err
	}

	const fields = 6
	for i := 0; i < fields; i++ {
		coeff := uniform(src, 0.8, 3.2)
		if i%2 == 1 {
			// Alternate opening direction so the medley fills both
			// half-planes.
			coeff = -coeff
		}

		field, err := NewLineField(m, FieldConfig{
			Coefficient: coeff,
			Reach:       uniform(src, 0.4, 1.3),
			Lines:       8 + int(uniform(src, 0, 17)),
			Animate:     true,
			TimeStep:    uniform(src, 0.01, 0.05),
			Color:       HSL(float64(i)*360/fields, 0.55, 0.72),
		}, src)
		if err != nil {
			return nil, err
		}
		scene.AddField(field)
	}

	return scene, nil
}

// uniform draws a uniform value in [lo, hi) from src.
func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Gallery lists the built-in sketches by name.
func Gallery() []string {
	return []string{"solo", "medley"}
}

// BuildSketch constructs a built-in sketch by name at its default size.
func BuildSketch(name string, src Source) (*Scene, error) {
	return BuildSketchSized(name, DefaultWidth, DefaultHeight, src)
}

// BuildSketchSized constructs a built-in sketch by name at an explicit
// canvas size.
func BuildSketchSized(name string, width, height int, src Source) (*Scene, error) {
	switch name {
	case "solo":
		return SoloSized(width, height, src)
	case "medley":
		return MedleySized(width, height, src)
	default:
		return nil, fmt.Errorf("parabolines: unknown sketch %q", name)
	}
}
