package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/sprite-tools/internal/segment"
	"github.com/ironsheep/sprite-tools/internal/sheet"
)

// Kind selects how a strip is turned into assets.
type Kind string

const (
	// KindSheet renders a strip as one animation sheet.
	KindSheet Kind = "sheet"

	// KindIcons renders each frame of a strip as its own icon.
	KindIcons Kind = "icons"
)

// Asset maps one strip of a composite to output files.
type Asset struct {
	// Strip is the zero-based strip index, top to bottom.
	Strip int `json:"strip"`

	Kind Kind `json:"kind"`

	// Names lists output names without extension. A sheet uses exactly one
	// name; icons are named left to right.
	Names []string `json:"names"`

	// Frames is the cell count of a sheet. Zero means 8.
	Frames int `json:"frames,omitempty"`
}

// Composite describes one input image and the assets cut from it.
type Composite struct {
	// Input is the file name inside the inbox, or an absolute path.
	Input string `json:"input"`

	// Layout is the fallback grid used when segmentation finds fewer
	// than Layout.MinStrips strips.
	Layout segment.Layout `json:"layout"`

	Assets []Asset `json:"assets"`
}

// Manifest lists the composites a run processes, in order.
type Manifest struct {
	Composites []Composite `json:"composites"`
}

// DefaultManifest returns the mapping for the two inbox composites.
func DefaultManifest() *Manifest {
	return &Manifest{
		Composites: []Composite{
			{
				Input:  "vfx_v1.png",
				Layout: segment.Layout{MinStrips: 4, GridRows: 5, GridCols: 8},
				Assets: []Asset{
					{Strip: 0, Kind: KindSheet, Names: []string{"fireball"}},
					{Strip: 1, Kind: KindSheet, Names: []string{"hail"}},
					{Strip: 2, Kind: KindSheet, Names: []string{"arrow"}},
					{Strip: 3, Kind: KindSheet, Names: []string{"cleave"}},
					{Strip: 4, Kind: KindSheet, Names: []string{"flurry"}},
				},
			},
			{
				Input:  "vfx_v2.png",
				Layout: segment.Layout{MinStrips: 3, GridRows: 3, GridCols: 8},
				Assets: []Asset{
					{Strip: 0, Kind: KindSheet, Names: []string{"level_up"}},
					{Strip: 1, Kind: KindSheet, Names: []string{"rare_drop"}},
					{Strip: 2, Kind: KindIcons, Names: []string{
						"poring_pink", "poring_green", "poring_blue", "poring_elite",
					}},
				},
			},
		},
	}
}

// LoadManifest reads a JSON manifest from path and validates it.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest for mistakes that would only surface
// halfway through a run.
func (m *Manifest) Validate() error {
	if len(m.Composites) == 0 {
		return fmt.Errorf("manifest has no composites")
	}
	seen := make(map[string]bool)
	for ci, c := range m.Composites {
		if c.Input == "" {
			return fmt.Errorf("composite %d: missing input", ci)
		}
		if c.Layout.GridRows <= 0 || c.Layout.GridCols <= 0 {
			return fmt.Errorf("composite %s: grid must have positive rows and columns", c.Input)
		}
		for ai, a := range c.Assets {
			if a.Strip < 0 {
				return fmt.Errorf("composite %s asset %d: negative strip index", c.Input, ai)
			}
			switch a.Kind {
			case KindSheet:
				if len(a.Names) != 1 {
					return fmt.Errorf("composite %s asset %d: a sheet takes exactly one name", c.Input, ai)
				}
				if a.Frames < 0 {
					return fmt.Errorf("composite %s asset %d: negative frame count", c.Input, ai)
				}
			case KindIcons:
				if len(a.Names) == 0 {
					return fmt.Errorf("composite %s asset %d: icons need at least one name", c.Input, ai)
				}
			default:
				return fmt.Errorf("composite %s asset %d: unknown kind %q", c.Input, ai, a.Kind)
			}
			for _, n := range a.Names {
				if n == "" || strings.ContainsAny(n, `/\`) {
					return fmt.Errorf("composite %s asset %d: invalid name %q", c.Input, ai, n)
				}
				key := string(a.Kind) + "/" + n
				if seen[key] {
					return fmt.Errorf("duplicate asset name %q", n)
				}
				seen[key] = true
			}
		}
	}
	return nil
}

// Lookup returns the composite whose input matches the base name of path.
func (m *Manifest) Lookup(path string) (Composite, bool) {
	base := filepath.Base(path)
	for _, c := range m.Composites {
		if filepath.Base(c.Input) == base {
			return c, true
		}
	}
	return Composite{}, false
}

func (a Asset) framesWanted() int {
	if a.Frames > 0 {
		return a.Frames
	}
	return sheet.DefaultFramesWanted
}
