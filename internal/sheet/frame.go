package sheet

import (
	"image"
	"math"

	dimaging "github.com/disintegration/imaging"

	"github.com/ironsheep/sprite-tools/internal/imaging"
)

// ExtractFrame crops r out of img after growing it by pad pixels on every
// side (clamped to the image), then trims the crop back to its non-zero
// alpha bounding box. A crop with no visible pixel is returned untrimmed.
func ExtractFrame(img *image.NRGBA, r image.Rectangle, pad int) *image.NRGBA {
	region := imaging.Pad(r, pad, img.Bounds())
	if region.Empty() {
		return image.NewNRGBA(image.Rectangle{})
	}
	return imaging.TrimTransparent(imaging.Crop(img, region))
}

// CenterFit scales frame down (never up) so that neither side exceeds
// maxInner and pastes it centered on a transparent canvas.
func CenterFit(frame *image.NRGBA, canvas image.Point, maxInner int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, canvas.X, canvas.Y))
	fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()
	if fw <= 0 || fh <= 0 {
		return out
	}

	scale := min(float64(maxInner)/float64(fw), float64(maxInner)/float64(fh), 1.0)
	var src image.Image = frame
	if scale < 1.0 {
		nw := max(1, int(math.RoundToEven(float64(fw)*scale)))
		nh := max(1, int(math.RoundToEven(float64(fh)*scale)))
		debugf("center-fit: %dx%d -> %dx%d", fw, fh, nw, nh)
		src = dimaging.Resize(frame, nw, nh, dimaging.Lanczos)
		fw, fh = nw, nh
	}

	return dimaging.Paste(out, src, image.Pt((canvas.X-fw)/2, (canvas.Y-fh)/2))
}

// Normalize extracts the frame at r and center-fits it onto t's canvas.
func (t Target) Normalize(img *image.NRGBA, r image.Rectangle) *image.NRGBA {
	return CenterFit(ExtractFrame(img, r, t.Padding), t.Canvas, t.MaxInner)
}
