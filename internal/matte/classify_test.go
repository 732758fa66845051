package matte

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/sprite-tools/internal/imaging"
)

func TestClassifyBackground_Checkerboard(t *testing.T) {
	tests := []struct {
		name          string
		first, second uint8
	}{
		{"dark first", 102, 153},
		{"light first", 153, 102},
		{"close tones", 120, 140},
		{"wide tones", 64, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createCheckerboard(96, 64, 8, tt.first, tt.second)
			// Foreground content must not disturb the estimate
			fillRect(img, image.Rect(30, 20, 50, 40), color.NRGBA{220, 40, 40, 255})

			bg := ClassifyBackground(img)

			lo, hi := tt.first, tt.second
			if lo > hi {
				lo, hi = hi, lo
			}
			wantDark := imaging.RGBOf(lo, lo, lo)
			wantLight := imaging.RGBOf(hi, hi, hi)
			if !closeTo(bg.Dark, wantDark, 4) {
				t.Errorf("Dark: got %v, want %v", bg.Dark, wantDark)
			}
			if !closeTo(bg.Light, wantLight, 4) {
				t.Errorf("Light: got %v, want %v", bg.Light, wantLight)
			}
		})
	}
}

func TestClassifyBackground_Ordered(t *testing.T) {
	img := createCheckerboard(64, 64, 4, 190, 90)
	bg := ClassifyBackground(img)
	if bg.Dark.Luminance() > bg.Light.Luminance() {
		t.Errorf("tones not ordered by luminance: dark=%v light=%v", bg.Dark, bg.Light)
	}
}

func TestClassifyBackground_NoGreys(t *testing.T) {
	img := createInMemoryImage(32, 32, color.NRGBA{255, 0, 0, 255})
	if got := ClassifyBackground(img); got != DefaultBackground {
		t.Errorf("got %+v, want DefaultBackground", got)
	}
}

func TestClassifyBackground_DarkGreysWidenRange(t *testing.T) {
	// Luminance 40 and 52 are outside [60,210] but inside [35,220]
	img := createCheckerboard(40, 40, 5, 40, 52)
	bg := ClassifyBackground(img)
	if bg == DefaultBackground {
		t.Fatal("widened sampling range was not used")
	}
	if !closeTo(bg.Dark, imaging.RGB{40, 40, 40}, 4) {
		t.Errorf("Dark: got %v, want 40 grey", bg.Dark)
	}
	if !closeTo(bg.Light, imaging.RGB{52, 52, 52}, 4) {
		t.Errorf("Light: got %v, want 52 grey", bg.Light)
	}
}

func TestClassifyBackground_SingleTone(t *testing.T) {
	// One grey only: the second seed is shifted by +24 and the refinement
	// stops on cluster imbalance.
	img := createInMemoryImage(20, 20, color.NRGBA{128, 128, 128, 255})
	bg := ClassifyBackground(img)

	if !closeTo(bg.Dark, imaging.RGB{128, 128, 128}, 0.001) {
		t.Errorf("Dark: got %v, want 128 grey", bg.Dark)
	}
	if !closeTo(bg.Light, imaging.RGB{152, 152, 152}, 0.001) {
		t.Errorf("Light: got %v, want 152 grey", bg.Light)
	}
}

func TestClassifyBackground_Deterministic(t *testing.T) {
	img := createCheckerboard(80, 80, 8, 101, 157)
	for y := 0; y < 80; y += 3 {
		img.SetNRGBA(y, y, color.NRGBA{uint8(95 + y%11), uint8(96 + y%7), uint8(97 + y%5), 255})
	}

	first := ClassifyBackground(img)
	for i := 0; i < 5; i++ {
		if got := ClassifyBackground(img); got != first {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestBackground_Nearest(t *testing.T) {
	bg := Background{Dark: imaging.RGB{100, 100, 100}, Light: imaging.RGB{150, 150, 150}}

	tone, d := bg.Nearest(imaging.RGB{104, 100, 100})
	if tone != bg.Dark || d != 4 {
		t.Errorf("got %v at %f, want dark at 4", tone, d)
	}

	tone, _ = bg.Nearest(imaging.RGB{140, 140, 140})
	if tone != bg.Light {
		t.Errorf("got %v, want light", tone)
	}

	tone, _ = bg.Nearest(imaging.RGB{125, 125, 125})
	if tone != bg.Dark {
		t.Errorf("tie: got %v, want dark", tone)
	}
}
