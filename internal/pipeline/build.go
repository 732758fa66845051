package pipeline

import (
	"image"
	"log"

	"github.com/ironsheep/sprite-tools/internal/matte"
	"github.com/ironsheep/sprite-tools/internal/segment"
	"github.com/ironsheep/sprite-tools/internal/sheet"
)

// Rendered is one output image held in memory until its composite is done.
type Rendered struct {
	Name  string       `json:"name"`
	Kind  Kind         `json:"kind"`
	Image *image.NRGBA `json:"-"`

	// Blank is set when the image is a transparent placeholder.
	Blank bool `json:"blank"`
}

// Staged is the in-memory result of processing one composite.
type Staged struct {
	Matte    *matte.Result   `json:"matte"`
	Segments *segment.Result `json:"segments"`
	Assets   []Rendered      `json:"assets"`
}

// Build runs the whole pipeline for one composite without touching disk.
func Build(img *image.NRGBA, c Composite, opts matte.Options) *Staged {
	res := matte.Auto(img, opts)
	debugf("%s: matte mode %s, transparency %.3f", c.Input, res.Mode, res.TransparencyRatio)

	segs := segment.SegmentOrGrid(res.Image, c.Layout)
	if segs.UsedGrid {
		log.Printf("Warning: %s: segmentation found %d strips, using %dx%d grid",
			c.Input, segs.Projection, c.Layout.GridRows, c.Layout.GridCols)
	}

	staged := &Staged{Matte: res, Segments: segs}
	for _, a := range c.Assets {
		staged.Assets = append(staged.Assets, renderAsset(res.Image, segs.Strips, c.Input, a)...)
	}
	return staged
}

func renderAsset(img *image.NRGBA, strips []segment.Strip, input string, a Asset) []Rendered {
	var strip *segment.Strip
	if a.Strip < len(strips) {
		strip = &strips[a.Strip]
	} else {
		log.Printf("Warning: %s: strip %d not found (%d strips), writing blank %s",
			input, a.Strip, len(strips), a.Kind)
	}

	switch a.Kind {
	case KindIcons:
		var icons []*image.NRGBA
		if strip != nil {
			icons = sheet.ExtractIcons(img, *strip, sheet.IconTarget)
		}
		out := make([]Rendered, 0, len(a.Names))
		for i, name := range a.Names {
			if i < len(icons) {
				out = append(out, Rendered{Name: name, Kind: KindIcons, Image: icons[i]})
				continue
			}
			if strip != nil {
				log.Printf("Warning: %s: strip %d has no frame %d, writing blank icon %s",
					input, a.Strip, i, name)
			}
			out = append(out, Rendered{Name: name, Kind: KindIcons, Image: sheet.IconTarget.Blank(), Blank: true})
		}
		return out

	default:
		frames := a.framesWanted()
		if strip == nil {
			return []Rendered{{Name: a.Names[0], Kind: KindSheet, Image: sheet.FrameTarget.BlankSheet(frames), Blank: true}}
		}
		return []Rendered{{
			Name:  a.Names[0],
			Kind:  KindSheet,
			Image: sheet.BuildSheet(img, *strip, sheet.FrameTarget, frames),
			Blank: len(strip.Frames) == 0,
		}}
	}
}
