package parabolines

import "errors"

// Scene is one sketch fixed for the lifetime of the program: canvas
// dimensions, background, default pen width, one shared mapper and an
// ordered list of line fields. Building a Scene is the sketch's setup;
// Frame is its per-frame draw.
type Scene struct {
	Width       int
	Height      int
	Background  RGBA
	StrokeWidth float64

	mapper *Mapper
	fields []*LineField
}

// NewScene creates an empty scene over the given mapper. The canvas
// dimensions come from the mapper so the two can never disagree.
func NewScene(m *Mapper, background RGBA, strokeWidth float64) (*Scene, error) {
	if m == nil {
		return nil, errors.New("parabolines: scene requires a mapper")
	}
	if strokeWidth <= 0 {
		strokeWidth = 1
	}
	return &Scene{
		Width:       m.Width(),
		Height:      m.Height(),
		Background:  background,
		StrokeWidth: strokeWidth,
		mapper:      m,
	}, nil
}

// Mapper returns the scene's shared coordinate mapper.
func (s *Scene) Mapper() *Mapper { return s.mapper }

// AddField appends a line field to the scene's draw order.
func (s *Scene) AddField(f *LineField) {
	s.fields = append(s.fields, f)
}

// Fields returns the scene's line fields in draw order.
func (s *Scene) Fields() []*LineField { return s.fields }

// Frame renders one frame: clear to the background, then advance and
// render every field in the order added. The host loop calls this
// exactly once per displayed frame.
func (s *Scene) Frame(cv *Canvas) {
	cv.Clear(s.Background)
	cv.SetStrokeWidth(s.StrokeWidth)
	for _, f := range s.fields {
		f.AdvanceAndRender(cv)
	}
}
