package main

import (
	"fmt"
	"time"

	"github.com/lanrat/simplesort"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func orderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "numeric",
			Aliases: []string{"n"},
			Usage:   "compare lines as numbers",
		},
		&cli.BoolFlag{
			Name:    "reverse",
			Aliases: []string{"r"},
			Usage:   "order from largest to smallest",
		},
	}
}

func comparatorFor(c *cli.Context) simplesort.Comparator[record] {
	compare := recordComparator(c.Bool("numeric"))
	if c.Bool("reverse") {
		compare = simplesort.Reverse(compare)
	}
	return compare
}

func cmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortAction,
		Usage:     "sort lines of files or stdin",
		ArgsUsage: "[FILE...]",
		Description: `
Reads every line of the given files (stdin when none or for "-"), sorts them in memory
with the chosen algorithm and writes them to stdout.

Examples:
$ simplesort sort -n prices.txt
$ cat words.txt | simplesort --trace sort -a selection`,
		Flags: append(orderFlags(),
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   simplesort.Bubble.String(),
				Usage:   "sorting algorithm: bubble or selection",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "log passes, comparisons and swaps",
			},
		),
	}
}

func sortAction(c *cli.Context) error {
	algorithm, err := simplesort.ParseAlgorithm(c.String("algorithm"))
	if err != nil {
		return err
	}
	records, err := readRecords(c, c.Bool("numeric"))
	if err != nil {
		return err
	}

	config := &simplesort.Config{Algorithm: algorithm}
	if logger.IsLevelEnabled(logrus.TraceLevel) {
		config.Trace = traceStep
	}
	sorter := simplesort.New(comparatorFor(c), config)

	start := time.Now()
	stats, err := sorter.Sort(records)
	if err != nil {
		return err
	}
	entry := logger.WithFields(logrus.Fields{
		"algorithm":   algorithm.String(),
		"records":     len(records),
		"passes":      stats.Passes,
		"comparisons": stats.Comparisons,
		"swaps":       stats.Swaps,
		"elapsed":     time.Since(start),
	})
	if c.Bool("stats") {
		entry.Info("sorted")
	} else {
		entry.Debug("sorted")
	}

	return writeRecords(c.App.Writer, records)
}

func traceStep(st simplesort.Step) {
	logger.WithFields(logrus.Fields{
		"algorithm": st.Algorithm.String(),
		"pass":      st.Pass,
		"i":         st.I,
		"j":         st.J,
		"swapped":   st.Swapped,
	}).Trace("step")
}

func cmdCheck() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Action:    checkAction,
		Usage:     "verify that lines are already sorted",
		ArgsUsage: "[FILE...]",
		Flags:     orderFlags(),
	}
}

func checkAction(c *cli.Context) error {
	records, err := readRecords(c, c.Bool("numeric"))
	if err != nil {
		return err
	}
	if i := simplesort.FirstUnsorted(records, comparatorFor(c)); i >= 0 {
		return fmt.Errorf("%s: %q orders after %s: %q", records[i], records[i].Text, records[i+1], records[i+1].Text)
	}
	logger.WithField("records", len(records)).Info("input is sorted")
	return nil
}
