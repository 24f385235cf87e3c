package cmd

import (
	"github.com/urfave/cli/v2"

	"bubbledemo/src/tutorial"
)

func CmdTour() *cli.Command {
	return &cli.Command{
		Name:     "tour",
		Action:   tour,
		Category: "TUTORIAL",
		Usage:    "walk through the canned examples",
		Description: `
It sorts three fixed lists (random, already sorted and reversed) and shows
every comparison as a bar chart. This is also what runs without a command.

Examples:
$ bubbledemo tour
$ bubbledemo --no-color tour`,
	}
}

func tour(ctx *cli.Context) error {
	setup(ctx)
	out := ctx.App.Writer
	return tutorial.New(out, newRenderer(ctx, out)).Run(tutorial.Examples)
}
