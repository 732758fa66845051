package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/ironsheep/sprite-tools/internal/imaging"
	"github.com/ironsheep/sprite-tools/internal/matte"
	"github.com/ironsheep/sprite-tools/internal/segment"
)

// PaletteMethod selects how the foreground palette is extracted.
type PaletteMethod string

const (
	PaletteDominant PaletteMethod = "dominant"
	PaletteKMeans   PaletteMethod = "kmeans"
)

// DefaultPaletteSize is the number of palette entries reported.
const DefaultPaletteSize = 6

// maxPaletteSamples bounds the k-means dataset.
const maxPaletteSamples = 12000

// InspectOptions configures Inspect.
type InspectOptions struct {
	// Overlay, when set, is where a segmentation overlay PNG is written.
	Overlay string

	// OverlayColor is the outline colour as hex. Defaults to magenta.
	OverlayColor string

	Palette PaletteMethod

	// Colors is the palette size. Zero means DefaultPaletteSize.
	Colors int
}

// PaletteColor is one entry of a foreground palette.
type PaletteColor struct {
	Hex    string  `json:"hex"`
	Weight float64 `json:"weight"`
}

// StripInfo describes one detected strip.
type StripInfo struct {
	Index  int            `json:"index"`
	Y0     int            `json:"y0"`
	Y1     int            `json:"y1"`
	Frames []segment.Span `json:"frames"`

	// Mass is the total alpha inside the strip.
	Mass float64 `json:"mass"`
}

// Inspection is a diagnostic report on a single composite.
type Inspection struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	Mode              matte.Mode `json:"mode"`
	BackgroundDark    string     `json:"background_dark,omitempty"`
	BackgroundLight   string     `json:"background_light,omitempty"`
	Key               string     `json:"key,omitempty"`
	TransparencyRatio float64    `json:"transparency_ratio"`

	Strips   []StripInfo `json:"strips"`
	UsedGrid bool        `json:"used_grid"`

	Palette       []PaletteColor `json:"palette"`
	PaletteMethod PaletteMethod  `json:"palette_method"`

	Overlay string `json:"overlay,omitempty"`
}

// Inspect mattes and segments a composite and reports what it found,
// without writing any asset.
//
// The segmentation layout comes from the manifest entry whose input has the
// same base name as path; other images are segmented by projection alone.
func (p *Pipeline) Inspect(path string, opts InspectOptions) (*Inspection, error) {
	img, err := p.loader.Load(path)
	if err != nil {
		return nil, err
	}

	res := matte.Auto(img, p.cfg.MatteOptions())

	var layout segment.Layout
	if c, ok := p.manifest.Lookup(path); ok {
		layout = c.Layout
	}
	segs := segment.SegmentOrGrid(res.Image, layout)

	b := img.Bounds()
	report := &Inspection{
		Path:              path,
		Width:             b.Dx(),
		Height:            b.Dy(),
		Mode:              res.Mode,
		TransparencyRatio: res.TransparencyRatio,
		UsedGrid:          segs.UsedGrid,
	}
	switch res.Mode {
	case matte.ModeCheckerboard:
		report.BackgroundDark = res.Background.Dark.Hex()
		report.BackgroundLight = res.Background.Light.Hex()
	case matte.ModeSolidKey:
		report.Key = res.Key.Hex()
	}

	for i, s := range segs.Strips {
		report.Strips = append(report.Strips, StripInfo{
			Index:  i,
			Y0:     s.Y0,
			Y1:     s.Y1,
			Frames: s.Frames,
			Mass:   segment.Mass(segment.RowProfile(res.Image, s.Y0, s.Y1)),
		})
	}

	k := opts.Colors
	if k <= 0 {
		k = DefaultPaletteSize
	}
	report.Palette, report.PaletteMethod = ForegroundPalette(res.Image, k, opts.Palette)

	if opts.Overlay != "" {
		var rects []imaging.LabeledRect
		for si, s := range segs.Strips {
			for fi := range s.Frames {
				rects = append(rects, imaging.LabeledRect{
					Rect:  s.FrameRect(fi),
					Label: imaging.StripFrameLabel(si, fi),
				})
			}
		}
		overlay := imaging.DrawSegmentation(res.Image, rects, opts.OverlayColor)
		if err := imaging.WritePNG(opts.Overlay, overlay); err != nil {
			return nil, fmt.Errorf("failed to write overlay: %w", err)
		}
		report.Overlay = opts.Overlay
	}

	return report, nil
}

// ForegroundPalette returns the k most prominent colours among visible
// pixels, strongest first, and the method that produced them. The k-means
// method falls back to dominant colours when it yields nothing; any other
// method selects dominant colours.
func ForegroundPalette(img *image.NRGBA, k int, method PaletteMethod) ([]PaletteColor, PaletteMethod) {
	if method == PaletteKMeans {
		if p := kmeansPalette(img, k); len(p) > 0 {
			return p, PaletteKMeans
		}
		log.Printf("Warning: kmeans palette empty, falling back to dominant colours")
	}
	return dominantPalette(img, k), PaletteDominant
}

func dominantPalette(img *image.NRGBA, k int) []PaletteColor {
	if _, ok := imaging.AlphaBounds(img); !ok {
		return nil
	}
	var out []PaletteColor
	for _, c := range dominantcolor.FindWeight(img, k) {
		col, _ := colorful.MakeColor(color.RGBA{R: c.RGBA.R, G: c.RGBA.G, B: c.RGBA.B, A: 255})
		out = append(out, PaletteColor{Hex: col.Hex(), Weight: c.Weight})
	}
	return out
}

func kmeansPalette(img *image.NRGBA, k int) []PaletteColor {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	step := 1
	for (w/step)*(h/step) > maxPaletteSamples {
		step++
	}

	var dataset clusters.Observations
	for y := 0; y < h; y += step {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x += step {
			px := row[x*4 : x*4+4]
			if px[3] < imaging.TransparentBelow {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(px[0]) / 255, float64(px[1]) / 255, float64(px[2]) / 255,
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}

	cc, err := kmeans.New().Partition(dataset, min(k, len(dataset)))
	if err != nil {
		debugf("kmeans: %v", err)
		return nil
	}
	slices.SortStableFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	total := float64(len(dataset))
	var out []PaletteColor
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		out = append(out, PaletteColor{Hex: col.Hex(), Weight: float64(len(c.Observations)) / total})
	}
	return out
}
