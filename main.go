package main

import (
	"os"
	"runtime"

	"github.com/achilleasa/gl-pathtrace/cmd"
	"github.com/achilleasa/gl-pathtrace/log"
	"github.com/urfave/cli"
)

func init() {
	// GLFW and the GL context must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "gl-pathtrace"
	app.Usage = "interactive progressive path tracing on the GPU"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render interactive view of the scene",
			Description: `
Open a window and progressively refine the scene using a compute shader path
tracer. Move the mouse to look around and use W/S or the arrow keys to move
forward and backward. Any camera change restarts the accumulation.

Press Escape or close the window to exit.`,
			Flags:  cmd.OptionFlags,
			Action: cmd.RenderInteractive,
		},
		{
			Name:        "check-shaders",
			Usage:       "compile and link the shader pipeline without rendering",
			Description: `Build the shader pipeline on a hidden window and report any compile or link errors.`,
			Flags:       cmd.OptionFlags,
			Action:      cmd.CheckShaders,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("gl-pathtrace").Errorf("%s", err)
		os.Exit(1)
	}
}
