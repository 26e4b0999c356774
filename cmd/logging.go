package cmd

import (
	"github.com/achilleasa/gl-pathtrace/log"
	"github.com/urfave/cli"
)

var logger = log.New("gl-pathtrace")

// Apply the log level from the options, then let -v/-vv raise verbosity.
func setupLogging(ctx *cli.Context, levelName string) {
	if levelName != "" {
		level, err := log.ParseLevel(levelName)
		if err != nil {
			logger.Warningf("%s; using notice", err.Error())
		}
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
