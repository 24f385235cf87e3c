package main

import (
	"os"

	"github.com/juicedata/juicefs/pkg/utils"

	"bubbledemo/src/cmd"
)

var logger = utils.GetLogger("bubbledemo")

func main() {
	if err := cmd.NewApp(os.Stdout).Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}
