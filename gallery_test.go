package parabolines

import (
	"math/rand"
	"testing"
)

func TestSolo(t *testing.T) {
	scene, err := Solo(rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Solo() error = %v", err)
	}

	if scene.Width != DefaultWidth || scene.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", scene.Width, scene.Height, DefaultWidth, DefaultHeight)
	}
	if len(scene.Fields()) != 1 {
		t.Fatalf("len(Fields()) = %d, want 1", len(scene.Fields()))
	}

	f := scene.Fields()[0]
	if f.Coefficient() != 2 {
		t.Errorf("Coefficient() = %v, want 2", f.Coefficient())
	}
	if len(f.Heights()) != 16 {
		t.Errorf("len(Heights()) = %d, want 16", len(f.Heights()))
	}
}

func TestMedley(t *testing.T) {
	scene, err := Medley(rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Medley() error = %v", err)
	}

	fields := scene.Fields()
	if len(fields) < 2 {
		t.Fatalf("len(Fields()) = %d, want several", len(fields))
	}

	up, down := 0, 0
	for _, f := range fields {
		switch f.Direction() {
		case 1:
			up++
		case -1:
			down++
		}
	}
	if up == 0 || down == 0 {
		t.Errorf("medley directions: %d up, %d down, want both present", up, down)
	}
}

func TestMedleyDeterminism(t *testing.T) {
	build := func() [][]float64 {
		scene, err := Medley(rand.New(rand.NewSource(77)))
		if err != nil {
			t.Fatalf("Medley() error = %v", err)
		}
		var all [][]float64
		for _, f := range scene.Fields() {
			all = append(all, f.Heights())
		}
		return all
	}

	a, b := build(), build()
	if len(a) != len(b) {
		t.Fatalf("field counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			t.Fatalf("field %d line counts differ", i)
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("field %d height %d differs across identical seeds", i, j)
			}
		}
	}
}

func TestBuildSketch(t *testing.T) {
	tests := []struct {
		name    string
		sketch  string
		wantErr bool
	}{
		{"solo", "solo", false},
		{"medley", "medley", false},
		{"unknown", "spiral", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSketch(tt.sketch, rand.New(rand.NewSource(1)))
			if (err != nil) != tt.wantErr {
				t.Errorf("BuildSketch(%q) error = %v, wantErr %v", tt.sketch, err, tt.wantErr)
			}
		})
	}
}

func TestBuildSketchSizedSupersamples(t *testing.T) {
	scene, err := BuildSketchSized("solo", DefaultWidth*2, DefaultHeight*2, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("BuildSketchSized() error = %v", err)
	}
	if scene.Width != DefaultWidth*2 {
		t.Errorf("Width = %d, want %d", scene.Width, DefaultWidth*2)
	}
}

func TestGalleryNamesBuild(t *testing.T) {
	for _, name := range Gallery() {
		if _, err := BuildSketch(name, rand.New(rand.NewSource(1))); err != nil {
			t.Errorf("BuildSketch(%q) error = %v", name, err)
		}
	}
}
