package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/gl-pathtrace/renderer/opengl"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Build the shader pipeline on a hidden window and report the result.
func CheckShaders(ctx *cli.Context) error {
	opts, err := optionsFromContext(ctx)
	if err != nil {
		return err
	}
	setupLogging(ctx, opts.LogLevel)

	window, err := opengl.NewWindow(opts, false)
	if err != nil {
		return err
	}
	defer window.Close()

	displayContextInfo(opengl.DescribeContext())

	pipeline, err := buildPipeline(opts)
	if err != nil {
		return err
	}
	pipeline.Release()

	logger.Noticef("shader pipeline built successfully")
	return nil
}

func displayContextInfo(info opengl.ContextInfo) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Vendor", info.Vendor})
	table.Append([]string{"Renderer", info.Renderer})
	table.Append([]string{"Version", info.Version})
	table.Append([]string{"GLSL", info.GLSLVersion})
	table.Append([]string{"Max work groups", fmt.Sprintf("%d x %d", info.MaxWorkGroups[0], info.MaxWorkGroups[1])})
	table.Render()

	logger.Noticef("opengl context\n%s", buf.String())
}
