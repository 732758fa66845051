package imaging

import "image"

// TransparentBelow is the alpha value under which a pixel counts as
// transparent when measuring a matte.
const TransparentBelow = 5

// TransparencyRatio returns the fraction of pixels whose alpha is below
// TransparentBelow. An empty image reports 0.
func TransparencyRatio(img *image.NRGBA) float64 {
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}
	n := 0
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < b.Dx(); x++ {
			if row[x*4+3] < TransparentBelow {
				n++
			}
		}
	}
	return float64(n) / float64(total)
}

// AlphaRange returns the minimum and maximum alpha values in the image.
// An empty image reports (255, 255).
func AlphaRange(img *image.NRGBA) (lo, hi uint8) {
	b := img.Bounds()
	if b.Empty() {
		return 255, 255
	}
	lo, hi = 255, 0
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < b.Dx(); x++ {
			a := row[x*4+3]
			if a < lo {
				lo = a
			}
			if a > hi {
				hi = a
			}
		}
	}
	return lo, hi
}

// HasTransparency reports whether the image already carries a real alpha
// channel: some pixel is noticeably translucent (alpha < 250) or no pixel is
// fully opaque.
func HasTransparency(img *image.NRGBA) bool {
	lo, hi := AlphaRange(img)
	return lo < 250 || hi < 255
}

// Equal reports whether two images have the same size and identical pixels.
func Equal(a, b *image.NRGBA) bool {
	if a.Bounds().Size() != b.Bounds().Size() {
		return false
	}
	w, h := a.Bounds().Dx(), a.Bounds().Dy()
	for y := 0; y < h; y++ {
		ra := a.Pix[y*a.Stride : y*a.Stride+w*4]
		rb := b.Pix[y*b.Stride : y*b.Stride+w*4]
		for i := range ra {
			if ra[i] != rb[i] {
				return false
			}
		}
	}
	return true
}
