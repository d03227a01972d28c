package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !isTerminal(os.Stderr),
		DisableTimestamp: true,
	})
	return l
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func disableLogColor() {
	if f, ok := logger.Formatter.(*logrus.TextFormatter); ok {
		f.DisableColors = true
	}
}

// setup applies the global logging flags before any command runs
func setup(c *cli.Context) error {
	if c.Bool("trace") {
		logger.SetLevel(logrus.TraceLevel)
	} else if c.Bool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	} else if c.Bool("quiet") {
		logger.SetLevel(logrus.WarnLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	if c.Bool("no-color") {
		disableLogColor()
	}
	return nil
}
