package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/achilleasa/gl-pathtrace/renderer"
	"github.com/urfave/cli"
)

func newTestContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range OptionFlags {
		f.Apply(set)
	}
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "options.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOptionsDefaults(t *testing.T) {
	ctx := newTestContext(t)
	opts, err := optionsFromContext(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// Flag defaults and option defaults must agree
	if float32(ctx.Float64("sensitivity")) != opts.MouseSensitivity || float32(ctx.Float64("speed")) != opts.MoveSpeed {
		t.Fatalf("flag defaults (%f, %f) differ from option defaults (%f, %f)",
			ctx.Float64("sensitivity"), ctx.Float64("speed"), opts.MouseSensitivity, opts.MoveSpeed)
	}
	exp := renderer.DefaultOptions()
	if opts.FrameW != exp.FrameW || opts.FrameH != exp.FrameH || opts.ShaderDir != exp.ShaderDir || !opts.VSync {
		t.Fatalf("expected default options; got %+v", opts)
	}
}

func TestOptionsFromConfigAndFlags(t *testing.T) {
	path := writeConfig(t, `
width = 640
height = 480
shader_dir = "/opt/shaders"
move_speed = 50.0
start_position = [1.0, 2.0, 3.0]
clear_color = [0.5, 0.5, 0.5, 1.0]
log_level = "debug"
`)

	opts, err := optionsFromContext(newTestContext(t, "--config", path, "--height", "360", "--no-vsync"))
	if err != nil {
		t.Fatal(err)
	}

	if opts.FrameW != 640 {
		t.Fatalf("expected width from config file; got %d", opts.FrameW)
	}
	if opts.FrameH != 360 {
		t.Fatalf("expected height flag to override config file; got %d", opts.FrameH)
	}
	if opts.ShaderDir != "/opt/shaders" || opts.MoveSpeed != 50 || opts.LogLevel != "debug" {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.StartPosition != [3]float32{1, 2, 3} || opts.ClearColor != [4]float32{0.5, 0.5, 0.5, 1} {
		t.Fatalf("unexpected vectors: %v %v", opts.StartPosition, opts.ClearColor)
	}
	if opts.VSync {
		t.Fatal("expected --no-vsync to disable vsync")
	}
	// Keys missing from the file keep their defaults
	if opts.MouseSensitivity != 0.5 || opts.ComputeShader != "compute.glsl" {
		t.Fatalf("expected defaults for unset keys; got %+v", opts)
	}
}

func TestOptionsErrors(t *testing.T) {
	type spec struct {
		config string
		args   []string
		expErr string
	}
	specs := []spec{
		{"", []string{"--config", "/does/not/exist.toml"}, "config: could not read"},
		{"width = \"wide\"", nil, "config: could not parse"},
		{"unknown_key = 1", nil, "config: could not parse"},
		{"", []string{"--width", "0"}, "config: width must be positive"},
		{"", []string{"--width", "-1"}, "config: width must be positive"},
		{"", []string{"--height", "-768"}, "config: height must be positive"},
		{"", []string{"--width", "100000"}, "renderer: invalid frame dimensions"},
		{"width = 0", nil, "renderer: invalid frame dimensions"},
		{"", []string{"--sensitivity", "-1"}, "renderer: mouse sensitivity"},
	}

	for index, s := range specs {
		args := s.args
		if s.config != "" {
			args = append([]string{"--config", writeConfig(t, s.config)}, args...)
		}

		_, err := optionsFromContext(newTestContext(t, args...))
		if err == nil || !strings.Contains(err.Error(), s.expErr) {
			t.Fatalf("[spec %d] expected error containing %q; got %v", index, s.expErr, err)
		}
	}
}

func TestFormatFrameStats(t *testing.T) {
	out := formatFrameStats(renderer.FrameStats{
		Ticks:          100,
		Resets:         3,
		FrameIndex:     42,
		PeakFrameIndex: 57,
		RenderTime:     2 * time.Second,
	})

	for _, exp := range []string{"Ticks", "Peak frame index", "100", "57", "42", "20ms", "TOTAL", "2s"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected stats table to contain %q; got:\n%s", exp, out)
		}
	}
}
