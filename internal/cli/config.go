package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Ejjaffe/parabolines"
)

// sketchFile is the TOML description of a custom sketch.
//
//	width = 600
//	height = 600
//	background = "#10101e"
//	stroke_width = 2.0
//
//	[viewport]
//	x_min = -1.2
//	x_max = 1.2
//	y_min = -0.2
//	y_max = 1.4
//
//	[[field]]
//	coefficient = 2.0
//	reach = 1.0
//	lines = 16
//	animate = true
//	time_step = 0.025
//	color = "#e8e8ff"
type sketchFile struct {
	Width       int      `toml:"width"`
	Height      int      `toml:"height"`
	Background  string   `toml:"background"`
	StrokeWidth float64  `toml:"stroke_width"`
	Viewport    viewport `toml:"viewport"`
	Fields      []field  `toml:"field"`
}

type viewport struct {
	XMin float64 `toml:"x_min"`
	XMax float64 `toml:"x_max"`
	YMin float64 `toml:"y_min"`
	YMax float64 `toml:"y_max"`
}

type field struct {
	Coefficient float64 `toml:"coefficient"`
	Reach       float64 `toml:"reach"`
	Lines       int     `toml:"lines"`
	Animate     *bool   `toml:"animate"`
	TimeStep    float64 `toml:"time_step"`
	Color       string  `toml:"color"`
}

// Defaults applied to omitted sketch-file keys.
const (
	defaultWidth       = 600
	defaultHeight      = 600
	defaultStrokeWidth = 1.0
	defaultTimeStep    = 0.025
	defaultLines       = 10
)

// loadSketchFile reads a TOML sketch description and builds a Scene
// from it. scale supersamples the canvas; the viewport is untouched, so
// geometry is identical at every scale.
func loadSketchFile(path string, scale int, src parabolines.Source) (*parabolines.Scene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("read sketch file: %w", err)
	}

	var sf sketchFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse sketch file %s: %w", path, err)
	}

	return buildScene(sf, scale, src)
}

// buildScene turns a decoded sketch file into a Scene.
func buildScene(sf sketchFile, scale int, src parabolines.Source) (*parabolines.Scene, error) {
	if sf.Width <= 0 {
		sf.Width = defaultWidth
	}
	if sf.Height <= 0 {
		sf.Height = defaultHeight
	}
	if sf.StrokeWidth <= 0 {
		sf.StrokeWidth = defaultStrokeWidth
	}
	if scale < 1 {
		scale = 1
	}
	if len(sf.Fields) == 0 {
		return nil, fmt.Errorf("sketch file defines no [[field]] tables")
	}

	vp := sf.Viewport
	if vp.XMin == 0 && vp.XMax == 0 {
		vp.XMin, vp.XMax = -1.5, 1.5
	}
	if vp.YMin == 0 && vp.YMax == 0 {
		vp.YMin, vp.YMax = -1.5, 1.5
	}

	m, err := parabolines.NewMapper(vp.XMin, vp.XMax, vp.YMin, vp.YMax,
		sf.Width*scale, sf.Height*scale)
	if err != nil {
		return nil, err
	}

	background := parabolines.Black
	if sf.Background != "" {
		background = parabolines.Hex(sf.Background)
	}

	scene, err := parabolines.NewScene(m, background, sf.StrokeWidth*float64(scale))
	if err != nil {
		return nil, err
	}

	for i, fd := range sf.Fields {
		cfg := parabolines.FieldConfig{
			Coefficient: fd.Coefficient,
			Reach:       fd.Reach,
			Lines:       fd.Lines,
			Animate:     true,
			TimeStep:    fd.TimeStep,
			Color:       parabolines.White,
		}
		if fd.Animate != nil {
			cfg.Animate = *fd.Animate
		}
		if cfg.TimeStep == 0 {
			cfg.TimeStep = defaultTimeStep
		}
		if cfg.Lines == 0 {
			cfg.Lines = defaultLines
		}
		if fd.Color != "" {
			cfg.Color = parabolines.Hex(fd.Color)
		}

		lf, err := parabolines.NewLineField(m, cfg, src)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		scene.AddField(lf)
	}

	return scene, nil
}
