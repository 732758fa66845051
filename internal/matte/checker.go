package matte

import (
	"image"
	"math"

	"github.com/ironsheep/sprite-tools/internal/imaging"
)

// Checkerboard matting thresholds, in 0-255 colour distance units unless
// noted otherwise.
const (
	// Confident foreground: far from both tones and not a dark neutral.
	strongMinDistance   = 34.0
	strongMinLuminance  = 42.0
	strongMinSaturation = 18

	// Outline protection around confident foreground.
	keepDilatePasses = 2
	keepMinAlpha     = 0.92

	// Hard background: within this distance of a tone.
	bgHardDistance = 14.0

	// Near-black neutral pixels away from foreground count as background.
	bgBlackMaxLuminance  = 20.0
	bgBlackMaxSaturation = 8

	// Soft alpha ramp.
	checkerRampLo = 14.0
	checkerRampHi = 70.0
)

// RemoveCheckerboard converts a composite drawn over a two-tone checkerboard
// into a real RGBA image.
//
// Alpha ramps from 0 at distance 14 from the nearer tone to 1 at distance
// 70, square-rooted for a crisper falloff. Pixels that are confidently
// foreground are forced opaque, and the two-pixel ring around them is kept
// at least 92% opaque so dark outlines and shadows survive. Pixels hugging a
// tone, and dark neutral pixels outside that ring, become fully transparent.
// Colours are then decontaminated against the nearer tone.
func RemoveCheckerboard(img *image.NRGBA, bg Background) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	dgrey := make([]float64, w*h)
	nearest := make([]imaging.RGB, w*h)
	strong := imaging.NewMask(w, h)

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			r, g, bl := row[x*4], row[x*4+1], row[x*4+2]
			i := y*w + x

			tone, d := bg.Nearest(imaging.RGBOf(r, g, bl))
			dgrey[i] = d
			nearest[i] = tone

			lum := imaging.Luminance(r, g, bl)
			sat := imaging.Spread(r, g, bl)
			if d >= strongMinDistance && (lum >= strongMinLuminance || sat >= strongMinSaturation) {
				strong.Bits[i] = true
			}
		}
	}

	keep := strong.Dilate(keepDilatePasses)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride:]
		dst := out.Pix[y*out.Stride:]
		for x := 0; x < w; x++ {
			r, g, bl := src[x*4], src[x*4+1], src[x*4+2]
			i := y*w + x

			a := rampAlpha(dgrey[i], checkerRampLo, checkerRampHi)

			bgHard := dgrey[i] <= bgHardDistance
			bgBlack := imaging.Luminance(r, g, bl) <= bgBlackMaxLuminance &&
				imaging.Spread(r, g, bl) <= bgBlackMaxSaturation &&
				!keep.Bits[i]
			if bgHard || bgBlack {
				a = 0
			}
			if keep.Bits[i] && !strong.Bits[i] {
				a = math.Max(a, keepMinAlpha)
			}
			if strong.Bits[i] {
				a = 1
			}

			fr, fg, fb := Decontaminate(r, g, bl, a, nearest[i])
			dst[x*4] = fr
			dst[x*4+1] = fg
			dst[x*4+2] = fb
			dst[x*4+3] = alphaByte(a)
		}
	}
	return out
}

// rampAlpha maps a distance onto [0,1] between lo and hi and takes the
// square root.
func rampAlpha(d, lo, hi float64) float64 {
	a := (d - lo) / (hi - lo)
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return math.Sqrt(a)
}
