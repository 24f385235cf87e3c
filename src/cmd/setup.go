package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/gops/agent"
	"github.com/juicedata/juicefs/pkg/utils"
	"github.com/mattn/go-isatty"
	"github.com/pyroscope-io/client/pyroscope"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"bubbledemo/src/render"
)

var logger = utils.GetLogger("bubbledemo")

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"debug", "v"},
			Usage:   "enable debug log",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "show warning and errors only",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "enable trace log",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colors",
		},
		&cli.BoolFlag{
			Name:  "agent",
			Usage: "start a gops agent on the first free port in 6070-6099",
		},
		&cli.StringFlag{
			Name:  "pyroscope",
			Usage: "pyroscope address",
		},
	}
}

func setup(c *cli.Context) {
	if c.Bool("trace") {
		utils.SetLogLevel(logrus.TraceLevel)
	} else if c.Bool("verbose") {
		utils.SetLogLevel(logrus.DebugLevel)
	} else if c.Bool("quiet") {
		utils.SetLogLevel(logrus.WarnLevel)
	} else {
		utils.SetLogLevel(logrus.InfoLevel)
	}
	if c.Bool("no-color") {
		utils.DisableLogColor()
	}

	if c.Bool("agent") {
		go func() {
			for port := 6070; port < 6100; port++ {
				if err := agent.Listen(agent.Options{Addr: fmt.Sprintf("127.0.0.1:%d", port)}); err == nil {
					logger.Debugf("gops agent listening on 127.0.0.1:%d", port)
					return
				}
			}
			logger.Warnf("no free port for the gops agent")
		}()
	}

	if c.IsSet("pyroscope") {
		tags := make(map[string]string)
		appName := fmt.Sprintf("bubbledemo.%s", commandName(c))
		if hostname, err := os.Hostname(); err == nil {
			tags["hostname"] = hostname
		}
		tags["pid"] = strconv.Itoa(os.Getpid())
		tags["version"] = c.App.Version

		if _, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: appName,
			ServerAddress:   c.String("pyroscope"),
			Logger:          logger,
			Tags:            tags,
			AuthToken:       os.Getenv("PYROSCOPE_AUTH_TOKEN"),
			ProfileTypes:    pyroscope.DefaultProfileTypes,
		}); err != nil {
			logger.Errorf("start pyroscope agent: %v", err)
		}
	}
}

func commandName(c *cli.Context) string {
	if c.Command != nil && c.Command.Name != "" && c.Command.Name != c.App.Name {
		return c.Command.Name
	}
	return "tour"
}

// newRenderer colours the output only when it goes to a terminal.
func newRenderer(c *cli.Context, out io.Writer) *render.Renderer {
	styles := render.PlainStyles()
	if f, ok := out.(*os.File); ok && !c.Bool("no-color") && isatty.IsTerminal(f.Fd()) && os.Getenv("TERM") != "dumb" {
		styles = render.DefaultStyles()
	}
	return render.New(styles)
}
