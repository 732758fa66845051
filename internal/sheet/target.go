package sheet

import "image"

// DefaultFramesWanted is the number of cells in every animation sheet.
const DefaultFramesWanted = 8

// Target describes the canvas a frame is normalized onto.
type Target struct {
	// Canvas is the size of the transparent output canvas.
	Canvas image.Point `json:"canvas"`

	// MaxInner bounds both dimensions of the fitted content.
	MaxInner int `json:"max_inner"`

	// Padding is the margin added around a span before cropping.
	Padding int `json:"padding"`
}

var (
	// FrameTarget is used for animation sheet cells.
	FrameTarget = Target{Canvas: image.Pt(256, 256), MaxInner: 244, Padding: 8}

	// IconTarget is used for standalone icons.
	IconTarget = Target{Canvas: image.Pt(128, 128), MaxInner: 120, Padding: 10}
)

// Blank returns a fully transparent canvas of the target size.
func (t Target) Blank() *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, t.Canvas.X, t.Canvas.Y))
}

// BlankSheet returns a fully transparent sheet of framesWanted cells.
func (t Target) BlankSheet(framesWanted int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, t.Canvas.X*framesWanted, t.Canvas.Y))
}
