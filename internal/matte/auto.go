package matte

import (
	"fmt"
	"image"

	"github.com/ironsheep/sprite-tools/internal/imaging"
)

// Mode identifies how a composite's alpha channel was obtained.
type Mode int

const (
	// ModeExisting means the input already carried real transparency.
	ModeExisting Mode = iota
	// ModeCheckerboard means the two-tone checkerboard was matted out.
	ModeCheckerboard
	// ModeSolidKey means a single solid background colour was keyed out.
	ModeSolidKey
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeExisting:
		return "existing"
	case ModeCheckerboard:
		return "checkerboard"
	case ModeSolidKey:
		return "solid-key"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseMode parses the String form of a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeExisting, ModeCheckerboard, ModeSolidKey} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown matte mode %q", s)
}

// DefaultMinTransparency is the transparency ratio a checkerboard trial must
// reach before its result is accepted over the solid-key fallback.
const DefaultMinTransparency = 0.01

// Options configures Auto. The zero value selects the defaults.
type Options struct {
	// MinTransparency is the fraction of pixels with alpha < 5 the
	// checkerboard trial must produce. Zero means DefaultMinTransparency.
	MinTransparency float64

	// PatchSize is the corner patch side for the solid key.
	// Zero means DefaultPatchSize.
	PatchSize int

	// Key, when set, is used as the solid key instead of the corner mean.
	Key *imaging.RGB
}

// Result describes the outcome of Auto.
type Result struct {
	// Image is the matted RGBA image.
	Image *image.NRGBA `json:"-"`

	// Mode is the estimator that produced Image.
	Mode Mode `json:"mode"`

	// Background holds the checkerboard tones found during the trial, or
	// the zero value for ModeExisting.
	Background Background `json:"background"`

	// Key is the solid key used in ModeSolidKey.
	Key imaging.RGB `json:"key"`

	// TransparencyRatio is measured on Image.
	TransparencyRatio float64 `json:"transparency_ratio"`
}

// Auto produces an alpha-channel image from a composite.
//
// Inputs that already carry transparency are returned as-is. Otherwise the
// checkerboard estimator runs as a trial; if fewer than MinTransparency of
// its pixels end up transparent the composite is assumed to sit on a solid
// backdrop and the solid-key estimator is used instead.
func Auto(img *image.NRGBA, opts Options) *Result {
	if imaging.HasTransparency(img) {
		return &Result{
			Image:             img,
			Mode:              ModeExisting,
			TransparencyRatio: imaging.TransparencyRatio(img),
		}
	}

	minRatio := opts.MinTransparency
	if minRatio <= 0 {
		minRatio = DefaultMinTransparency
	}

	bg := ClassifyBackground(img)
	cb := RemoveCheckerboard(img, bg)
	ratio := imaging.TransparencyRatio(cb)
	if ratio >= minRatio {
		return &Result{
			Image:             cb,
			Mode:              ModeCheckerboard,
			Background:        bg,
			TransparencyRatio: ratio,
		}
	}
	debugf("matte: checkerboard trial left %.4f transparent, falling back to solid key", ratio)

	key := CornerKey(img, opts.PatchSize)
	if opts.Key != nil {
		key = *opts.Key
	}
	sk := RemoveSolidKey(img, key)
	return &Result{
		Image:             sk,
		Mode:              ModeSolidKey,
		Background:        bg,
		Key:               key,
		TransparencyRatio: imaging.TransparencyRatio(sk),
	}
}
