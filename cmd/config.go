package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/achilleasa/gl-pathtrace/camera"
	"github.com/achilleasa/gl-pathtrace/renderer"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli"
)

// Flags shared by commands that need renderer options.
var OptionFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "load options from a TOML file; explicit flags take precedence",
	},
	cli.IntFlag{
		Name:  "width",
		Value: 1024,
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: 768,
		Usage: "frame height",
	},
	cli.StringFlag{
		Name:  "shaders",
		Value: "shaders",
		Usage: "directory or http(s) URL containing compute.glsl, vertex.glsl and frag.glsl",
	},
	cli.Float64Flag{
		Name:  "sensitivity",
		Value: float64(camera.DefaultSensitivityDegrees),
		Usage: "mouse sensitivity in degrees per pixel",
	},
	cli.Float64Flag{
		Name:  "speed",
		Value: float64(camera.DefaultMoveSpeed),
		Usage: "camera movement speed in world units per second",
	},
	cli.BoolFlag{
		Name:  "no-vsync",
		Usage: "do not sync buffer swaps to the display refresh rate",
	},
}

// Load a TOML options file on top of the defaults.
func loadOptionsFile(path string, opts *renderer.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: could not read '%s': %s", path, err)
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err = decoder.Decode(opts); err != nil {
		return fmt.Errorf("config: could not parse '%s': %s", path, err)
	}
	return nil
}

// Build renderer options from the defaults, an optional config file and the command flags.
func optionsFromContext(ctx *cli.Context) (renderer.Options, error) {
	opts := renderer.DefaultOptions()

	if path := ctx.String("config"); path != "" {
		if err := loadOptionsFile(path, &opts); err != nil {
			return opts, err
		}
	}

	for _, dim := range []struct {
		name string
		dst  *uint32
	}{{"width", &opts.FrameW}, {"height", &opts.FrameH}} {
		if !ctx.IsSet(dim.name) {
			continue
		}
		val := ctx.Int(dim.name)
		if val <= 0 {
			return opts, fmt.Errorf("config: %s must be positive; got %d", dim.name, val)
		}
		*dim.dst = uint32(val)
	}
	if ctx.IsSet("shaders") {
		opts.ShaderDir = ctx.String("shaders")
	}
	if ctx.IsSet("sensitivity") {
		opts.MouseSensitivity = float32(ctx.Float64("sensitivity"))
	}
	if ctx.IsSet("speed") {
		opts.MoveSpeed = float32(ctx.Float64("speed"))
	}
	if ctx.Bool("no-vsync") {
		opts.VSync = false
	}

	return opts, opts.Validate()
}
