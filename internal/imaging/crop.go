package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// AlphaBounds returns the tight bounding box of pixels with non-zero alpha.
//
// The second return value is false when every pixel is fully transparent.
func AlphaBounds(img *image.NRGBA) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[(x-b.Min.X)*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX || maxY < minY {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// Pad grows r by pad pixels on every side and clamps the result to bounds.
func Pad(r image.Rectangle, pad int, bounds image.Rectangle) image.Rectangle {
	return image.Rect(r.Min.X-pad, r.Min.Y-pad, r.Max.X+pad, r.Max.Y+pad).Intersect(bounds)
}

// Crop copies the given region out of img.
//
// The region is intersected with the image bounds first; the returned image
// is anchored at (0,0) and may be empty if nothing overlaps.
func Crop(img image.Image, r image.Rectangle) *image.NRGBA {
	return imaging.Crop(img, r)
}

// TrimTransparent crops img to its non-zero alpha bounding box.
// A fully transparent image is returned unchanged.
func TrimTransparent(img *image.NRGBA) *image.NRGBA {
	bb, ok := AlphaBounds(img)
	if !ok {
		return img
	}
	if bb == img.Bounds() {
		return img
	}
	return imaging.Crop(img, bb)
}
