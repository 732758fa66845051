package segment

import (
	"image"
	"math"
)

// Grid slices a width x height image into rows x cols evenly spaced cells.
// Cell edges are r*height/rows and c*width/cols rounded half to even.
func Grid(width, height, rows, cols int) []Strip {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	rowH := float64(height) / float64(rows)
	colW := float64(width) / float64(cols)

	strips := make([]Strip, 0, rows)
	for r := 0; r < rows; r++ {
		y0 := int(math.RoundToEven(float64(r) * rowH))
		y1 := int(math.RoundToEven(float64(r+1) * rowH))
		frames := make([]Span, 0, cols)
		for c := 0; c < cols; c++ {
			x0 := int(math.RoundToEven(float64(c) * colW))
			x1 := int(math.RoundToEven(float64(c+1) * colW))
			frames = append(frames, Span{Start: x0, End: x1})
		}
		strips = append(strips, Strip{Y0: y0, Y1: y1, Frames: frames})
	}
	return strips
}

// Layout describes the segmentation expected of a composite.
type Layout struct {
	// MinStrips is the fewest strips projection must find to be trusted.
	MinStrips int `json:"min_strips"`

	// GridRows and GridCols size the fallback grid.
	GridRows int `json:"grid_rows"`
	GridCols int `json:"grid_cols"`
}

// Result is the outcome of SegmentOrGrid.
type Result struct {
	Strips     []Strip `json:"strips"`
	UsedGrid   bool    `json:"used_grid"`
	Projection int     `json:"projection_strips"`
}

// SegmentOrGrid runs mass projection and falls back to the layout's grid
// when too few strips are found. A shortfall is not an error.
func SegmentOrGrid(img *image.NRGBA, layout Layout) *Result {
	strips := Segment(img)
	if len(strips) >= layout.MinStrips {
		return &Result{Strips: strips, Projection: len(strips)}
	}
	debugf("segment: %d strips < %d, falling back to %dx%d grid",
		len(strips), layout.MinStrips, layout.GridRows, layout.GridCols)
	b := img.Bounds()
	return &Result{
		Strips:     Grid(b.Dx(), b.Dy(), layout.GridRows, layout.GridCols),
		UsedGrid:   true,
		Projection: len(strips),
	}
}
