package imaging

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a colour with float64 channels on the 0-255 scale.
//
// Channel values are kept unrounded during distance and clustering math and
// only truncated to 8 bits when written into an image.
type RGB [3]float64

// RGBOf builds an RGB from 8-bit channel values.
func RGBOf(r, g, b uint8) RGB {
	return RGB{float64(r), float64(g), float64(b)}
}

// Luminance returns the Rec. 709 weighted luminance of the colour.
func (c RGB) Luminance() float64 {
	return 0.2126*c[0] + 0.7152*c[1] + 0.0722*c[2]
}

// Distance returns the Euclidean distance between two colours.
func (c RGB) Distance(o RGB) float64 {
	dr := c[0] - o[0]
	dg := c[1] - o[1]
	db := c[2] - o[2]
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Add returns c shifted by d on every channel.
func (c RGB) Add(d float64) RGB {
	return RGB{c[0] + d, c[1] + d, c[2] + d}
}

// Hex formats the colour as "#rrggbb", clamping out-of-range channels.
func (c RGB) Hex() string {
	return colorful.Color{R: c[0] / 255, G: c[1] / 255, B: c[2] / 255}.Clamped().Hex()
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return fmt.Sprintf("(%.1f,%.1f,%.1f)", c[0], c[1], c[2])
}

// ParseHex parses "#RRGGBB" (or "#RGB") into an RGB colour.
func ParseHex(s string) (RGB, error) {
	if s == "" {
		return RGB{}, fmt.Errorf("empty color string")
	}
	if s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBOf(r, g, b), nil
}

// Luminance returns the Rec. 709 luminance of an 8-bit pixel.
func Luminance(r, g, b uint8) float64 {
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}

// Spread returns max-min over the three channels, a cheap saturation measure.
// Greys have a spread of 0.
func Spread(r, g, b uint8) int {
	hi, lo := r, r
	if g > hi {
		hi = g
	}
	if b > hi {
		hi = b
	}
	if g < lo {
		lo = g
	}
	if b < lo {
		lo = b
	}
	return int(hi) - int(lo)
}

// Quantize keeps the top bits of an 8-bit channel value.
//
// Quantize(v, 6) clears the two low bits so that colours within 4 units of
// each other share a histogram bucket.
func Quantize(v uint8, bits int) uint8 {
	shift := 8 - bits
	return (v >> shift) << shift
}

// ClampByte truncates a 0-255 float into a byte, saturating at both ends.
func ClampByte(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
