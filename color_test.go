package parabolines

import (
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"short rgb", "#f00", RGBA{R: 1, G: 0, B: 0, A: 1}},
		{"long rgb", "#00ff00", RGBA{R: 0, G: 1, B: 0, A: 1}},
		{"no hash", "0000ff", RGBA{R: 0, G: 0, B: 1, A: 1}},
		{"rgba", "#ffffff80", RGBA{R: 1, G: 1, B: 1, A: 128.0 / 255}},
		{"empty falls back to black", "", RGBA{R: 0, G: 0, B: 0, A: 1}},
		{"garbage length falls back to black", "#abcde", RGBA{R: 0, G: 0, B: 0, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			const epsilon = 1e-9
			if math.Abs(got.R-tt.want.R) > epsilon ||
				math.Abs(got.G-tt.want.G) > epsilon ||
				math.Abs(got.B-tt.want.B) > epsilon ||
				math.Abs(got.A-tt.want.A) > epsilon {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHSLPrimaries(t *testing.T) {
	const epsilon = 1e-9

	tests := []struct {
		name    string
		h, s, l float64
		want    RGBA
	}{
		{"red", 0, 1, 0.5, RGB(1, 0, 0)},
		{"green", 120, 1, 0.5, RGB(0, 1, 0)},
		{"blue", 240, 1, 0.5, RGB(0, 0, 1)},
		{"white", 0, 0, 1, RGB(1, 1, 1)},
		{"black", 180, 1, 0, RGB(0, 0, 0)},
		{"wrapped hue", 360 + 120, 1, 0.5, RGB(0, 1, 0)},
		{"negative hue", -240, 1, 0.5, RGB(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSL(tt.h, tt.s, tt.l)
			if math.Abs(got.R-tt.want.R) > epsilon ||
				math.Abs(got.G-tt.want.G) > epsilon ||
				math.Abs(got.B-tt.want.B) > epsilon {
				t.Errorf("HSL(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a, b := Black, White

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %+v, want %+v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 {
		t.Errorf("Lerp(0.5) = %+v, want mid gray", mid)
	}
}
