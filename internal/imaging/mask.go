package imaging

// Mask is a dense boolean grid stored row-major.
//
// Masks are the working type for per-pixel predicates such as "confident
// foreground" or "hard background". Out-of-range reads return false.
type Mask struct {
	Width  int
	Height int
	Bits   []bool
}

// NewMask creates an all-false mask of the given size.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Bits:   make([]bool, width*height),
	}
}

// At reports the mask value at (x, y).
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Bits[y*m.Width+x]
}

// Set assigns the mask value at (x, y). Out-of-range writes are ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Bits[y*m.Width+x] = v
}

// Count returns the number of true cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the mask.
func (m *Mask) Clone() *Mask {
	out := NewMask(m.Width, m.Height)
	copy(out.Bits, m.Bits)
	return out
}

// Dilate returns the mask grown by the given number of 3x3 dilation passes.
//
// Each pass sets a cell when any cell in its 3x3 neighbourhood is set.
// Cells outside the grid count as unset, so nothing bleeds in from the
// border. The receiver is not modified.
func (m *Mask) Dilate(passes int) *Mask {
	cur := m.Clone()
	for p := 0; p < passes; p++ {
		cur = dilate3x3(cur)
	}
	return cur
}

// dilate3x3 performs one bounded 3x3 OR-reduction pass.
func dilate3x3(src *Mask) *Mask {
	w, h := src.Width, src.Height
	dst := NewMask(w, h)
	for y := 0; y < h; y++ {
		y0 := clamp(y-1, 0, h-1)
		y1 := clamp(y+1, 0, h-1)
		for x := 0; x < w; x++ {
			x0 := clamp(x-1, 0, w-1)
			x1 := clamp(x+1, 0, w-1)
			hit := false
			for ny := y0; ny <= y1 && !hit; ny++ {
				row := src.Bits[ny*w:]
				for nx := x0; nx <= x1; nx++ {
					if row[nx] {
						hit = true
						break
					}
				}
			}
			dst.Bits[y*w+x] = hit
		}
	}
	return dst
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
