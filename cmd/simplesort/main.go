// Command simplesort sorts line oriented input with bubble sort or selection sort.
package main

import (
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "simplesort",
		Usage: "sort lines with bubble sort or selection sort",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug log",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log every comparison step",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only warning and errors",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colors in log",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			cmdSort(),
			cmdCheck(),
			cmdCompare(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}
