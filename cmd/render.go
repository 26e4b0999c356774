package cmd

import (
	"github.com/achilleasa/gl-pathtrace/camera"
	"github.com/achilleasa/gl-pathtrace/renderer"
	"github.com/achilleasa/gl-pathtrace/renderer/opengl"
	"github.com/achilleasa/gl-pathtrace/shader"
	"github.com/urfave/cli"
)

// Open a window and progressively render the scene from a user controlled camera.
func RenderInteractive(ctx *cli.Context) error {
	opts, err := optionsFromContext(ctx)
	if err != nil {
		return err
	}
	setupLogging(ctx, opts.LogLevel)

	window, err := opengl.NewWindow(opts, true)
	if err != nil {
		return err
	}
	defer window.Close()

	info := opengl.DescribeContext()
	logger.Noticef("using %s (%s)", info.Renderer, info.Version)

	pipeline, err := buildPipeline(opts)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	device, err := opengl.NewDevice(opts.FrameW, opts.FrameH)
	if err != nil {
		return err
	}
	defer device.Close()

	cam := camera.New(opts.Position(), opts.MoveSpeed)
	window.CaptureCursor(camera.NewIntegrator(cam, window, opts.FrameW, opts.FrameH, opts.SensitivityRadians()))

	r, err := renderer.NewInteractive(window, device, pipeline, cam, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		return err
	}

	// Display stats
	displayFrameStats(r.Stats())

	return nil
}

// Load, compile and link the compute and display programs. A GL context must be current.
func buildPipeline(opts renderer.Options) (*shader.Pipeline, error) {
	loader, err := shader.NewLoader(opts.ShaderDir)
	if err != nil {
		return nil, err
	}

	logger.Noticef("building shader pipeline from %s", opts.ShaderDir)
	return shader.NewBuilder(opengl.ShaderBackend{}, loader).Build(opts.Sources())
}
