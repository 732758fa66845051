package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestAlphaBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	img.SetNRGBA(5, 7, color.NRGBA{255, 0, 0, 1})
	img.SetNRGBA(20, 25, color.NRGBA{0, 255, 0, 255})

	bb, ok := AlphaBounds(img)
	if !ok {
		t.Fatal("AlphaBounds reported no content")
	}
	want := image.Rect(5, 7, 21, 26)
	if bb != want {
		t.Errorf("AlphaBounds: got %v, want %v", bb, want)
	}
}

func TestAlphaBounds_Empty(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	if _, ok := AlphaBounds(img); ok {
		t.Error("AlphaBounds should report no content for a transparent image")
	}
}

func TestPad(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 50)
	tests := []struct {
		name string
		r    image.Rectangle
		pad  int
		want image.Rectangle
	}{
		{"interior", image.Rect(20, 20, 30, 30), 5, image.Rect(15, 15, 35, 35)},
		{"clamped top-left", image.Rect(2, 3, 10, 10), 8, image.Rect(0, 0, 18, 18)},
		{"clamped bottom-right", image.Rect(90, 40, 100, 50), 8, image.Rect(82, 32, 100, 50)},
		{"zero pad", image.Rect(1, 1, 2, 2), 0, image.Rect(1, 1, 2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pad(tt.r, tt.pad, bounds); got != tt.want {
				t.Errorf("Pad: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCrop_VerifyContent(t *testing.T) {
	img := createInMemoryImage(50, 50, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(30, 40, color.NRGBA{255, 255, 0, 255})

	out := Crop(img, image.Rect(25, 35, 45, 50))
	if out.Bounds() != image.Rect(0, 0, 20, 15) {
		t.Fatalf("bounds: got %v, want (0,0)-(20,15)", out.Bounds())
	}
	if got := out.NRGBAAt(5, 5); got != (color.NRGBA{255, 255, 0, 255}) {
		t.Errorf("pixel: got %v, want yellow", got)
	}
}

func TestTrimTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 30, 30))
	for y := 10; y < 14; y++ {
		for x := 8; x < 20; x++ {
			img.SetNRGBA(x, y, color.NRGBA{9, 9, 9, 200})
		}
	}

	out := TrimTransparent(img)
	if out.Bounds().Dx() != 12 || out.Bounds().Dy() != 4 {
		t.Errorf("dimensions: got %dx%d, want 12x4", out.Bounds().Dx(), out.Bounds().Dy())
	}
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{9, 9, 9, 200}) {
		t.Errorf("corner pixel: got %v", got)
	}
}

func TestTrimTransparent_AllTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 12, 9))
	if out := TrimTransparent(img); out != img {
		t.Error("fully transparent image should be returned unchanged")
	}
}
