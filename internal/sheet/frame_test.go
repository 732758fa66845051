package sheet

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/sprite-tools/internal/imaging"
)

func TestExtractFrame(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 60))
	fillRect(img, image.Rect(20, 10, 40, 30), color.NRGBA{255, 0, 0, 255})
	// Soft edge just outside the candidate span
	fillRect(img, image.Rect(17, 10, 20, 30), color.NRGBA{255, 0, 0, 40})

	tests := []struct {
		name     string
		rect     image.Rectangle
		pad      int
		wantSize image.Point
	}{
		{"padding recovers soft edge", image.Rect(20, 10, 40, 30), 8, image.Pt(23, 20)},
		{"no padding clips soft edge", image.Rect(20, 10, 40, 30), 0, image.Pt(20, 20)},
		{"loose span is tightened", image.Rect(0, 0, 100, 60), 0, image.Pt(23, 20)},
		{"clamped at image border", image.Rect(0, 0, 50, 40), 30, image.Pt(23, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFrame(img, tt.rect, tt.pad)
			if got.Bounds().Size() != tt.wantSize {
				t.Errorf("size: got %v, want %v", got.Bounds().Size(), tt.wantSize)
			}
		})
	}
}

func TestExtractFrame_Transparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 60))
	got := ExtractFrame(img, image.Rect(10, 10, 20, 20), 8)
	// Nothing to trim to, the padded crop is kept
	if got.Bounds().Size() != image.Pt(26, 26) {
		t.Errorf("size: got %v, want (26,26)", got.Bounds().Size())
	}

	got = ExtractFrame(img, image.Rect(200, 200, 210, 210), 8)
	if !got.Bounds().Empty() {
		t.Errorf("out of bounds span: got %v, want empty", got.Bounds())
	}
}

func TestCenterFit_NeverUpscales(t *testing.T) {
	frame := createInMemoryImage(50, 30, color.NRGBA{0, 200, 0, 255})
	out := CenterFit(frame, image.Pt(256, 256), 244)

	if out.Bounds().Size() != image.Pt(256, 256) {
		t.Fatalf("canvas: got %v, want 256x256", out.Bounds().Size())
	}
	bb, ok := imaging.AlphaBounds(out)
	if !ok {
		t.Fatal("fitted frame is fully transparent")
	}
	if want := image.Rect(103, 113, 153, 143); bb != want {
		t.Errorf("content: got %v, want %v", bb, want)
	}
	if got := out.NRGBAAt(128, 128); got != (color.NRGBA{0, 200, 0, 255}) {
		t.Errorf("center pixel: got %v", got)
	}
}

func TestCenterFit_Downscales(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		canvas   image.Point
		maxInner int
		want     image.Rectangle
	}{
		{"wide", 488, 244, image.Pt(256, 256), 244, image.Rect(6, 67, 250, 189)},
		{"tall", 100, 400, image.Pt(256, 256), 244, image.Rect(97, 6, 158, 250)},
		{"icon", 240, 240, image.Pt(128, 128), 120, image.Rect(4, 4, 124, 124)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := createInMemoryImage(tt.w, tt.h, color.NRGBA{10, 20, 200, 255})
			out := CenterFit(frame, tt.canvas, tt.maxInner)

			bb, ok := imaging.AlphaBounds(out)
			if !ok {
				t.Fatal("fitted frame is fully transparent")
			}
			if bb != tt.want {
				t.Errorf("content: got %v, want %v", bb, tt.want)
			}
			if bb.Dx() != tt.maxInner && bb.Dy() != tt.maxInner {
				t.Errorf("neither side reaches %d: %v", tt.maxInner, bb.Size())
			}
		})
	}
}

func TestCenterFit_EmptyFrame(t *testing.T) {
	out := CenterFit(image.NewNRGBA(image.Rectangle{}), image.Pt(128, 128), 120)
	if out.Bounds().Size() != image.Pt(128, 128) {
		t.Fatalf("canvas: got %v, want 128x128", out.Bounds().Size())
	}
	if _, ok := imaging.AlphaBounds(out); ok {
		t.Error("empty frame should give a blank canvas")
	}
}
