package parabolines

import "testing"

func TestCanvasClear(t *testing.T) {
	cv := NewCanvas(10, 10)
	cv.Clear(RGB(1, 0, 0))

	for _, pt := range [][2]int{{0, 0}, {9, 9}, {5, 2}} {
		c := cv.Pixmap().GetPixel(pt[0], pt[1])
		if c.R != 1 || c.G != 0 || c.B != 0 || c.A != 1 {
			t.Errorf("pixel (%d,%d) = %+v, want opaque red", pt[0], pt[1], c)
		}
	}
}

func TestCanvasStrokeLineHorizontal(t *testing.T) {
	cv := NewCanvas(20, 20)
	cv.Clear(Black)
	cv.SetStroke(White)
	cv.SetStrokeWidth(2)
	cv.StrokeLine(Pt(2, 10), Pt(18, 10))

	// The pen is two pixels wide centered on y=10, so row 10 must be
	// painted along the segment.
	for x := 3; x < 17; x++ {
		if c := cv.Pixmap().GetPixel(x, 10); c.R != 1 {
			t.Fatalf("pixel (%d,10) = %+v, want white", x, c)
		}
	}
	// Rows far from the pen stay untouched.
	for x := 3; x < 17; x++ {
		if c := cv.Pixmap().GetPixel(x, 15); c.R != 0 {
			t.Fatalf("pixel (%d,15) = %+v, want black", x, c)
		}
	}
	// So does the region left of the segment.
	if c := cv.Pixmap().GetPixel(0, 10); c.R != 0 {
		t.Errorf("pixel (0,10) = %+v, want black", c)
	}
}

func TestCanvasStrokeState(t *testing.T) {
	cv := NewCanvas(5, 5)

	if got := cv.Stroke(); got != White {
		t.Errorf("default stroke = %+v, want white", got)
	}
	if got := cv.StrokeWidth(); got != 1 {
		t.Errorf("default stroke width = %v, want 1", got)
	}

	cv.SetStroke(RGB(0, 0, 1))
	cv.SetStrokeWidth(3.5)
	if got := cv.Stroke(); got != RGB(0, 0, 1) {
		t.Errorf("stroke = %+v, want blue", got)
	}
	if got := cv.StrokeWidth(); got != 3.5 {
		t.Errorf("stroke width = %v, want 3.5", got)
	}
}

func TestCanvasDegenerateLine(t *testing.T) {
	cv := NewCanvas(10, 10)
	cv.Clear(Black)
	cv.SetStroke(White)

	// Zero-length segments are skipped, not painted as dots.
	cv.StrokeLine(Pt(5, 5), Pt(5, 5))
	if c := cv.Pixmap().GetPixel(5, 5); c.R != 0 {
		t.Errorf("pixel (5,5) = %+v, want untouched", c)
	}
}

func TestCanvasOffscreenLineIsClipped(t *testing.T) {
	cv := NewCanvas(10, 10)
	cv.Clear(Black)
	cv.SetStroke(White)
	cv.SetStrokeWidth(2)

	// Crossing segment: only the in-bounds part is painted, and the
	// out-of-bounds part must not wrap or panic.
	cv.StrokeLine(Pt(-20, 5), Pt(30, 5))
	if c := cv.Pixmap().GetPixel(0, 5); c.R != 1 {
		t.Errorf("pixel (0,5) = %+v, want white", c)
	}
	if c := cv.Pixmap().GetPixel(9, 5); c.R != 1 {
		t.Errorf("pixel (9,5) = %+v, want white", c)
	}
}
