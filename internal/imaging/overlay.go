package imaging

import (
	"image"
	"image/color"
	"strconv"

	"github.com/anthonynsimon/bild/clone"
)

// LabeledRect is a rectangle to outline on a segmentation overlay.
type LabeledRect struct {
	Rect  image.Rectangle
	Label string // digits and commas only, e.g. "2,5"
}

// DrawSegmentation outlines each rectangle on a copy of img and stamps its
// label in the top-left corner.
//
// It is a debugging aid for checking what the segmenter found on a
// composite; lineHex defaults to opaque magenta when it cannot be parsed.
func DrawSegmentation(img image.Image, rects []LabeledRect, lineHex string) *image.RGBA {
	result := clone.AsRGBA(img)
	bounds := result.Bounds()

	lineColor := color.RGBA{255, 0, 255, 255}
	if c, err := ParseHex(lineHex); err == nil {
		lineColor = color.RGBA{ClampByte(c[0]), ClampByte(c[1]), ClampByte(c[2]), 255}
	}

	for _, lr := range rects {
		r := lr.Rect.Intersect(bounds)
		if r.Empty() {
			continue
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			result.SetRGBA(x, r.Min.Y, lineColor)
			result.SetRGBA(x, r.Max.Y-1, lineColor)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			result.SetRGBA(r.Min.X, y, lineColor)
			result.SetRGBA(r.Max.X-1, y, lineColor)
		}
		if lr.Label != "" {
			drawLabel(result, r.Min.X+2, r.Min.Y+2, lr.Label,
				color.RGBA{255, 255, 255, 255}, color.RGBA{0, 0, 0, 180})
		}
	}

	return result
}

// StripFrameLabel formats the "strip,frame" label used on overlays.
func StripFrameLabel(strip, frame int) string {
	return strconv.Itoa(strip) + "," + strconv.Itoa(frame)
}

// drawLabel draws a label with a 3x5 pixel font for digits and comma.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
	}

	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	inside := func(px, py int) bool {
		return px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y
	}

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			if px, py := x+dx, y+dy; inside(px, py) {
				img.SetRGBA(px, py, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				if px, py := cx+col, y+row; inside(px, py) {
					img.SetRGBA(px, py, fg)
				}
			}
		}
		cx += charWidth
	}
}
