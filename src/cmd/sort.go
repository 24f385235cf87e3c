package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"bubbledemo/src/tutorial"
)

func CmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortValues,
		Category:  "TUTORIAL",
		Usage:     "visualize bubble sort on your own list",
		ArgsUsage: "VALUE...",
		Description: fmt.Sprintf(`
It sorts the given integers and shows every comparison as a bar chart.
Values may be separated by spaces or commas, must lie in [0, %d] and at
most %d of them are accepted.

Examples:
$ bubbledemo sort 5 2 9 1 5 6
$ bubbledemo sort 3,1,2`, tutorial.MaxValue, tutorial.MaxLength),
	}
}

func sortValues(ctx *cli.Context) error {
	setup(ctx)
	seq, err := tutorial.ParseSequence(ctx.Args().Slice())
	if err != nil {
		return err
	}
	logger.Debugf("parsed %d values: %v", len(seq), seq)

	out := ctx.App.Writer
	_, err = tutorial.New(out, newRenderer(ctx, out)).Visualize("YOUR LIST", seq)
	return err
}
