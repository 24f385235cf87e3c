package cmd

import (
	"io"

	"github.com/urfave/cli/v2"
)

const version = "1.0.0"

// NewApp returns the command line application writing its narration to out.
// Without a command it runs the tour.
func NewApp(out io.Writer) *cli.App {
	cli.VersionFlag = &cli.BoolFlag{
		Name: "version", Aliases: []string{"V"},
		Usage: "print version only",
	}
	return &cli.App{
		Name:                 "bubbledemo",
		Usage:                "watch bubble sort compare and swap, step by step",
		Version:              version,
		Writer:               out,
		Flags:                globalFlags(),
		Action:               tour,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			CmdTour(),
			CmdSort(),
		},
	}
}
