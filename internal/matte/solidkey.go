package matte

import (
	"image"

	"github.com/ironsheep/sprite-tools/internal/imaging"
)

// DefaultPatchSize is the side of the corner squares averaged into a key.
const DefaultPatchSize = 6

// Solid key alpha ramp, in colour distance units.
const (
	keyRampLo = 18.0
	keyRampHi = 70.0
)

// CornerKey averages four square corner patches into a key colour.
//
// The patch side is clamped to [1, min(width,height)/2]; a non-positive
// size selects DefaultPatchSize.
func CornerKey(img *image.NRGBA, patch int) imaging.RGB {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return imaging.RGB{}
	}
	if patch <= 0 {
		patch = DefaultPatchSize
	}
	k := min(patch, min(w, h)/2)
	k = max(1, k)

	origins := []image.Point{
		{0, 0},
		{w - k, 0},
		{0, h - k},
		{w - k, h - k},
	}

	var sum [3]float64
	n := 0
	for _, o := range origins {
		for y := o.Y; y < o.Y+k; y++ {
			row := img.Pix[y*img.Stride:]
			for x := o.X; x < o.X+k; x++ {
				sum[0] += float64(row[x*4])
				sum[1] += float64(row[x*4+1])
				sum[2] += float64(row[x*4+2])
				n++
			}
		}
	}
	return imaging.RGB{sum[0] / float64(n), sum[1] / float64(n), sum[2] / float64(n)}
}

// RemoveSolidKey keys a single background colour out of img.
//
// Alpha is the square root of the distance to key ramped between 18 and
// 70, and colours are decontaminated against the key everywhere.
func RemoveSolidKey(img *image.NRGBA, key imaging.RGB) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride:]
		dst := out.Pix[y*out.Stride:]
		for x := 0; x < w; x++ {
			r, g, bl := src[x*4], src[x*4+1], src[x*4+2]
			a := rampAlpha(imaging.RGBOf(r, g, bl).Distance(key), keyRampLo, keyRampHi)

			fr, fg, fb := Decontaminate(r, g, bl, a, key)
			dst[x*4] = fr
			dst[x*4+1] = fg
			dst[x*4+2] = fb
			dst[x*4+3] = alphaByte(a)
		}
	}
	return out
}
