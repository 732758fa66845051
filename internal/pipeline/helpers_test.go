package pipeline

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/ironsheep/sprite-tools/internal/imaging"
)

// createSpriteRows draws opaque squares on bg, one row per entry of
// counts. Each cell is 60x60 with a 40x40 square centered in it.
func createSpriteRows(counts []int, bg color.NRGBA) *image.NRGBA {
	cols := 0
	for _, n := range counts {
		cols = max(cols, n)
	}
	img := image.NewNRGBA(image.Rect(0, 0, cols*60, len(counts)*60))
	fillRect(img, img.Bounds(), bg)
	for r, n := range counts {
		for c := 0; c < n; c++ {
			fill := color.NRGBA{uint8(200 - 20*c), uint8(30 * r), uint8(40 + 20*c), 255}
			fillRect(img, image.Rect(c*60+10, r*60+10, c*60+50, r*60+50), fill)
		}
	}
	return img
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

var (
	transparent = color.NRGBA{0, 0, 0, 0}
	greenScreen = color.NRGBA{0, 255, 0, 255}
)

// setupInbox writes both default composites under root and returns a
// config pointing at it. Composite 1 already has alpha; composite 2 sits
// on a green screen.
func setupInbox(t *testing.T, first []int) Config {
	t.Helper()
	root := t.TempDir()
	cfg := DefaultConfig()
	cfg.Root = root

	writeComposite(t, cfg.InputPath("vfx_v1.png"), createSpriteRows(first, transparent))
	writeComposite(t, cfg.InputPath("vfx_v2.png"), createSpriteRows([]int{8, 6, 4}, greenScreen))
	return cfg
}

func writeComposite(t *testing.T, path string, img image.Image) {
	t.Helper()
	if err := imaging.WritePNG(path, img); err != nil {
		t.Fatalf("failed to write %s: %v", filepath.Base(path), err)
	}
}
