package pipeline

import (
	"path/filepath"

	"github.com/ironsheep/sprite-tools/internal/imaging"
	"github.com/ironsheep/sprite-tools/internal/matte"
)

// Config locates the inbox and output directories and tunes matting.
type Config struct {
	// Root is the project root the relative directories resolve against.
	Root string

	// InboxDir holds the composite inputs.
	InboxDir string

	// EffectsDir receives animation sheets.
	EffectsDir string

	// MonstersDir receives standalone icons.
	MonstersDir string

	// MinTransparency is the transparency ratio the checkerboard trial must
	// reach before the solid-key estimator is tried instead.
	MinTransparency float64

	// PatchSize is the corner patch used to estimate a solid key.
	PatchSize int

	// Key overrides the corner estimate of the solid key when set.
	Key *imaging.RGB
}

// DefaultConfig returns the layout used by the game repository.
func DefaultConfig() Config {
	return Config{
		Root:            ".",
		InboxDir:        filepath.Join("scripts", "assets_inbox"),
		EffectsDir:      filepath.Join("public", "assets", "vfx"),
		MonstersDir:     filepath.Join("public", "assets", "monsters"),
		MinTransparency: matte.DefaultMinTransparency,
		PatchSize:       matte.DefaultPatchSize,
	}
}

func (c Config) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.Root, dir)
}

// InputPath returns the path of a composite in the inbox.
func (c Config) InputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.resolve(c.InboxDir), name)
}

// OutputPath returns where an asset of the given kind is written.
func (c Config) OutputPath(kind Kind, name string) string {
	dir := c.EffectsDir
	if kind == KindIcons {
		dir = c.MonstersDir
	}
	return filepath.Join(c.resolve(dir), name+".png")
}

// MatteOptions returns the options passed to matte.Auto.
func (c Config) MatteOptions() matte.Options {
	return matte.Options{
		MinTransparency: c.MinTransparency,
		PatchSize:       c.PatchSize,
		Key:             c.Key,
	}
}
