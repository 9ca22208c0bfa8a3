package parabolines

import (
	"image"
	"testing"
)

func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(4, 4)

	pm.SetPixel(1, 2, RGB(1, 0, 0))
	c := pm.GetPixel(1, 2)
	if c.R != 1 || c.A != 1 {
		t.Errorf("GetPixel(1,2) = %+v, want opaque red", c)
	}

	// Out-of-bounds writes are dropped; reads return transparent.
	pm.SetPixel(-1, 0, White)
	pm.SetPixel(4, 4, White)
	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("GetPixel(-1,0) = %+v, want transparent", got)
	}
}

func TestPixmapToImage(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetPixel(2, 1, White)

	img := pm.ToImage()
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v, want (0,0)-(3,2)", img.Bounds())
	}
	r, _, _, a := img.At(2, 1).RGBA()
	if r == 0 || a == 0 {
		t.Errorf("At(2,1) = %v, want white", img.At(2, 1))
	}
}
