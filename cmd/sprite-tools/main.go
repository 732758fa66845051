package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/sprite-tools/internal/debuglog"
	"github.com/ironsheep/sprite-tools/internal/imaging"
	"github.com/ironsheep/sprite-tools/internal/pipeline"
	"github.com/ironsheep/sprite-tools/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const desc = `Turns composite images with a fake-transparency checkerboard or solid
backdrop into real alpha sprite sheets and icons.

Environment variables:
  SPRITE_TOOLS_LOG_LEVEL=debug    Enable debug logging`

// Exit statuses.
const (
	exitOK           = 0
	exitError        = 1
	exitMissingInput = 2
)

type cli struct {
	Debug bool `help:"Enable debug logging."`

	Process processCmd `cmd:"" default:"1" help:"Build every sprite sheet and icon from the inbox composites."`
	Inspect inspectCmd `cmd:"" help:"Report what the pipeline sees in one composite."`
	Serve   serveCmd   `cmd:"" help:"Run the MCP server on stdin/stdout."`
	Version versionCmd `cmd:"" help:"Print version information."`
}

// configFlags are shared by every command that runs the pipeline.
type configFlags struct {
	Root            string  `help:"Project root holding scripts/assets_inbox and public/assets." default:"." env:"SPRITE_TOOLS_ROOT" type:"path"`
	Manifest        string  `help:"JSON manifest replacing the built-in composite mapping." type:"path"`
	Key             string  `help:"Solid key colour as hex, instead of the corner estimate." env:"SPRITE_TOOLS_KEY"`
	Patch           int     `help:"Corner patch size for the solid key estimate." default:"6"`
	MinTransparency float64 `help:"Transparent share the checkerboard matte must reach before the solid key is tried." default:"0.01"`
}

func (f *configFlags) load() (pipeline.Config, *pipeline.Manifest, error) {
	cfg := pipeline.DefaultConfig()
	cfg.Root = f.Root
	cfg.PatchSize = f.Patch
	cfg.MinTransparency = f.MinTransparency
	if f.Key != "" {
		key, err := imaging.ParseHex(f.Key)
		if err != nil {
			return cfg, nil, err
		}
		cfg.Key = &key
	}

	manifest := pipeline.DefaultManifest()
	if f.Manifest != "" {
		m, err := pipeline.LoadManifest(f.Manifest)
		if err != nil {
			return cfg, nil, err
		}
		manifest = m
	}
	return cfg, manifest, nil
}

type globals struct {
	stdout io.Writer
}

type processCmd struct {
	configFlags `embed:""`
}

func (c *processCmd) Run(g *globals) error {
	cfg, manifest, err := c.load()
	if err != nil {
		return err
	}
	report, err := pipeline.New(cfg, manifest, nil).Run()
	if err != nil {
		return err
	}

	fmt.Fprintln(g.stdout, "Wrote:")
	for _, cr := range report.Composites {
		for _, f := range cr.Files {
			note := ""
			if f.Blank {
				note = " (blank)"
			}
			fmt.Fprintf(g.stdout, " - %s%s\n", f.Path, note)
		}
	}
	return nil
}

type inspectCmd struct {
	configFlags `embed:""`

	Path         string `arg:"" help:"Composite image to inspect." type:"path"`
	Overlay      string `help:"Write a PNG with the detected frames outlined." type:"path"`
	OverlayColor string `help:"Outline colour as hex." default:"#ff00ff"`
	Palette      string `help:"Palette method." enum:"dominant,kmeans" default:"dominant"`
	Colors       int    `help:"Palette size." default:"6"`
}

func (c *inspectCmd) Run(g *globals) error {
	cfg, manifest, err := c.load()
	if err != nil {
		return err
	}
	report, err := pipeline.New(cfg, manifest, nil).Inspect(c.Path, pipeline.InspectOptions{
		Overlay:      c.Overlay,
		OverlayColor: c.OverlayColor,
		Palette:      pipeline.PaletteMethod(c.Palette),
		Colors:       c.Colors,
	})
	if err != nil {
		return err
	}
	enc := json.NewEncoder(g.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

type serveCmd struct {
	configFlags `embed:""`
}

func (c *serveCmd) Run(g *globals) error {
	cfg, manifest, err := c.load()
	if err != nil {
		return err
	}
	debuglog.Printf("Sprite Tools MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	if err := server.New(cfg, manifest, Version).Run(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

type versionCmd struct{}

func (c *versionCmd) Run(g *globals) error {
	fmt.Fprintf(g.stdout, "sprite-tools %s\n", Version)
	fmt.Fprintf(g.stdout, "  Build time: %s\n", BuildTime)
	fmt.Fprintf(g.stdout, "  Git commit: %s\n", GitCommit)
	return nil
}

// run parses args, executes the selected command and returns the exit status.
func run(args []string, stdout io.Writer) int {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("sprite-tools"),
		kong.Description(desc),
		kong.UsageOnError(),
		kong.Writers(stdout, os.Stderr),
	)
	if err != nil {
		log.Printf("Failed to build command line parser: %v", err)
		return exitError
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return exitError
	}
	if c.Debug {
		debuglog.SetEnabled(true)
	}

	if err := ctx.Run(&globals{stdout: stdout}); err != nil {
		log.Printf("Error: %v", err)
		if errors.Is(err, pipeline.ErrMissingInput) {
			return exitMissingInput
		}
		return exitError
	}
	return exitOK
}

func main() {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	os.Exit(run(os.Args[1:], os.Stdout))
}
