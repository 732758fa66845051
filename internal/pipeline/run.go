package pipeline

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ironsheep/sprite-tools/internal/imaging"
	"github.com/ironsheep/sprite-tools/internal/matte"
)

// ErrMissingInput is returned when a composite input file does not exist.
var ErrMissingInput = errors.New("missing input")

// Pipeline processes the composites of a manifest.
type Pipeline struct {
	cfg      Config
	manifest *Manifest
	loader   *imaging.Loader
}

// New creates a pipeline. A nil manifest selects DefaultManifest and a nil
// loader a fresh, private one.
func New(cfg Config, m *Manifest, loader *imaging.Loader) *Pipeline {
	if m == nil {
		m = DefaultManifest()
	}
	if loader == nil {
		loader = imaging.NewLoader()
	}
	return &Pipeline{cfg: cfg, manifest: m, loader: loader}
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Manifest returns the manifest the pipeline runs.
func (p *Pipeline) Manifest() *Manifest {
	return p.manifest
}

// Written describes one file produced by Run.
type Written struct {
	Path  string `json:"path"`
	Kind  Kind   `json:"kind"`
	Blank bool   `json:"blank,omitempty"`
}

// CompositeReport summarizes the processing of one composite.
type CompositeReport struct {
	Input             string     `json:"input"`
	Mode              matte.Mode `json:"mode"`
	TransparencyRatio float64    `json:"transparency_ratio"`
	Strips            int        `json:"strips"`
	UsedGrid          bool       `json:"used_grid"`
	Files             []Written  `json:"files"`
}

// Report is returned by Run.
type Report struct {
	Composites []CompositeReport `json:"composites"`
}

// Files lists every path written, in order.
func (r *Report) Files() []string {
	var out []string
	for _, c := range r.Composites {
		for _, f := range c.Files {
			out = append(out, f.Path)
		}
	}
	return out
}

// CheckInputs verifies that every composite input exists.
func (p *Pipeline) CheckInputs() error {
	var missing []string
	for _, c := range p.manifest.Composites {
		path := p.cfg.InputPath(c.Input)
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingInput, strings.Join(missing, ", "))
	}
	return nil
}

// Run processes every composite in manifest order and writes its assets.
//
// All inputs are checked before anything is decoded. A composite's files are
// written only after its whole pipeline has finished.
func (p *Pipeline) Run() (*Report, error) {
	if err := p.CheckInputs(); err != nil {
		return nil, err
	}

	report := &Report{}
	for _, c := range p.manifest.Composites {
		cr, err := p.runComposite(c)
		if err != nil {
			return report, err
		}
		report.Composites = append(report.Composites, *cr)
	}
	return report, nil
}

func (p *Pipeline) runComposite(c Composite) (*CompositeReport, error) {
	path := p.cfg.InputPath(c.Input)
	img, err := p.loader.Load(path)
	if err != nil {
		return nil, err
	}

	staged := Build(img, c, p.cfg.MatteOptions())

	cr := &CompositeReport{
		Input:             path,
		Mode:              staged.Matte.Mode,
		TransparencyRatio: staged.Matte.TransparencyRatio,
		Strips:            len(staged.Segments.Strips),
		UsedGrid:          staged.Segments.UsedGrid,
	}
	for _, a := range staged.Assets {
		out := p.cfg.OutputPath(a.Kind, a.Name)
		if err := imaging.WritePNG(out, a.Image); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", out, err)
		}
		debugf("wrote %s", out)
		cr.Files = append(cr.Files, Written{Path: out, Kind: a.Kind, Blank: a.Blank})
	}
	return cr, nil
}
