package sheet

import (
	"image"

	dimaging "github.com/disintegration/imaging"

	"github.com/ironsheep/sprite-tools/internal/segment"
)

// NormalizeStrip extracts and center-fits every frame span of strip.
func NormalizeStrip(img *image.NRGBA, strip segment.Strip, t Target) []*image.NRGBA {
	frames := make([]*image.NRGBA, 0, len(strip.Frames))
	for i := range strip.Frames {
		frames = append(frames, t.Normalize(img, strip.FrameRect(i)))
	}
	return frames
}

// Compose lays frames side by side on a sheet of exactly framesWanted
// cells. Short sequences repeat their last frame; long ones are truncated.
// With no frames the sheet is blank.
func Compose(frames []*image.NRGBA, t Target, framesWanted int) *image.NRGBA {
	out := t.BlankSheet(framesWanted)
	if len(frames) == 0 {
		return out
	}
	for i := 0; i < framesWanted; i++ {
		f := frames[min(i, len(frames)-1)]
		out = dimaging.Paste(out, f, image.Pt(i*t.Canvas.X, 0))
	}
	return out
}

// BuildSheet turns a strip into an animation sheet of framesWanted cells.
func BuildSheet(img *image.NRGBA, strip segment.Strip, t Target, framesWanted int) *image.NRGBA {
	frames := NormalizeStrip(img, strip, t)
	if len(frames) != framesWanted {
		debugf("sheet: strip at y=%d has %d frames, want %d", strip.Y0, len(frames), framesWanted)
	}
	return Compose(frames, t, framesWanted)
}

// ExtractIcons normalizes every frame span of strip into its own icon.
func ExtractIcons(img *image.NRGBA, strip segment.Strip, t Target) []*image.NRGBA {
	return NormalizeStrip(img, strip, t)
}
