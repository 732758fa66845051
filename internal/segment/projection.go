package segment

import (
	"image"

	"gonum.org/v1/gonum/floats"
)

const (
	// minThreshold is the absolute floor on a projection threshold; a
	// single fully opaque pixel contributes 255.
	minThreshold = 2000.0

	// relativeThreshold is the share of the profile peak a run must exceed.
	relativeThreshold = 0.08
)

// Span is a half-open [Start, End) range along one axis.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of pixels covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Strip is a horizontal band [Y0, Y1) of a composite with its frame spans
// ordered left to right.
type Strip struct {
	Y0     int    `json:"y0"`
	Y1     int    `json:"y1"`
	Frames []Span `json:"frames"`
}

// FrameRect returns the rectangle covered by frame i of the strip.
func (s Strip) FrameRect(i int) image.Rectangle {
	f := s.Frames[i]
	return image.Rect(f.Start, s.Y0, f.End, s.Y1)
}

// Rect returns the rectangle spanned by the whole strip, from the first
// frame's left edge to the last frame's right edge.
func (s Strip) Rect() image.Rectangle {
	if len(s.Frames) == 0 {
		return image.Rect(0, s.Y0, 0, s.Y1)
	}
	return image.Rect(s.Frames[0].Start, s.Y0, s.Frames[len(s.Frames)-1].End, s.Y1)
}

// Segment finds strips and frame spans by alpha mass projection.
func Segment(img *image.NRGBA) []Strip {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	rowSum := RowProfile(img, 0, h)
	colSum := ColumnProfile(img, 0, h)
	rowThr := Threshold(rowSum)
	colThr := Threshold(colSum)

	var strips []Strip
	for _, band := range Runs(rowSum, rowThr) {
		frames := Runs(ColumnProfile(img, band.Start, band.End), colThr)
		if len(frames) == 0 {
			continue
		}
		strips = append(strips, Strip{Y0: band.Start, Y1: band.End, Frames: frames})
	}
	debugf("segment: %d strips (row threshold %.0f, column threshold %.0f)", len(strips), rowThr, colThr)
	return strips
}

// RowProfile sums alpha across each row in [y0, y1).
// The result is indexed by y - y0.
func RowProfile(img *image.NRGBA, y0, y1 int) []float64 {
	w := img.Bounds().Dx()
	out := make([]float64, y1-y0)
	for y := y0; y < y1; y++ {
		row := img.Pix[y*img.Stride:]
		sum := 0
		for x := 0; x < w; x++ {
			sum += int(row[x*4+3])
		}
		out[y-y0] = float64(sum)
	}
	return out
}

// ColumnProfile sums alpha down each column, restricted to rows [y0, y1).
func ColumnProfile(img *image.NRGBA, y0, y1 int) []float64 {
	w := img.Bounds().Dx()
	sums := make([]int, w)
	for y := y0; y < y1; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			sums[x] += int(row[x*4+3])
		}
	}
	out := make([]float64, w)
	for x, s := range sums {
		out[x] = float64(s)
	}
	return out
}

// Threshold returns max(2000, 0.08 * max(profile)).
func Threshold(profile []float64) float64 {
	if len(profile) == 0 {
		return minThreshold
	}
	return max(minThreshold, relativeThreshold*floats.Max(profile))
}

// Runs returns the maximal runs of values strictly above threshold.
func Runs(values []float64, threshold float64) []Span {
	var spans []Span
	n := len(values)
	for i := 0; i < n; {
		if values[i] <= threshold {
			i++
			continue
		}
		j := i
		for j < n && values[j] > threshold {
			j++
		}
		spans = append(spans, Span{Start: i, End: j})
		i = j
	}
	return spans
}

// Mass returns the total alpha of a profile.
func Mass(profile []float64) float64 {
	return floats.Sum(profile)
}
