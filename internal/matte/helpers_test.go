package matte

import (
	"image"
	"image/color"
	"math"

	"github.com/ironsheep/sprite-tools/internal/imaging"
)

// createCheckerboard draws a two-tone checkerboard with square cells.
// The cell at the origin uses first.
func createCheckerboard(width, height, cell int, first, second uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := first
			if ((x/cell)+(y/cell))%2 == 1 {
				v = second
			}
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	return img
}

// fillRect paints an opaque rectangle onto img.
func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// createInMemoryImage creates an NRGBA image filled with c.
func createInMemoryImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	fillRect(img, img.Bounds(), c)
	return img
}

func closeTo(a, b imaging.RGB, tol float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
