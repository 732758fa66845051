package matte

import "github.com/ironsheep/sprite-tools/internal/imaging"

// minAlpha guards the division in Decontaminate.
const minAlpha = 1e-6

// Decontaminate recovers the foreground colour of a pixel observed over a
// known background at the given alpha (0-1).
//
// At alpha 1 the observed colour is returned unchanged. Near alpha 0 the
// result is unstable but the pixel is transparent, so it does not matter.
// Channels are clamped to 0-255 and truncated.
func Decontaminate(r, g, b uint8, alpha float64, bg imaging.RGB) (uint8, uint8, uint8) {
	inv := 1 - alpha
	a := alpha
	if a < minAlpha {
		a = minAlpha
	}
	fr := (float64(r) - inv*bg[0]) / a
	fg := (float64(g) - inv*bg[1]) / a
	fb := (float64(b) - inv*bg[2]) / a
	return imaging.ClampByte(fr), imaging.ClampByte(fg), imaging.ClampByte(fb)
}

// alphaByte converts a 0-1 alpha to 8 bits by truncation.
func alphaByte(a float64) uint8 {
	return imaging.ClampByte(a * 255)
}
