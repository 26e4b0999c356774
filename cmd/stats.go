package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/gl-pathtrace/renderer"
	"github.com/olekukonko/tablewriter"
)

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("session statistics\n%s", formatFrameStats(stats))
}

func formatFrameStats(stats renderer.FrameStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Ticks", "Resets", "Peak frame index", "Last frame index", "Mean tick time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Ticks),
		fmt.Sprintf("%d", stats.Resets),
		fmt.Sprintf("%d", stats.PeakFrameIndex),
		fmt.Sprintf("%d", stats.FrameIndex),
		stats.MeanTickTime().String(),
	})
	table.SetFooter([]string{"", "", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	return buf.String()
}
