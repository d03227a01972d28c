package main

import (
	"bufio"
	"fmt"
	"slices"
	"time"

	"github.com/lanrat/simplesort"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func cmdCompare() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Action:    compareAction,
		Usage:     "report the work every algorithm does on the same input",
		ArgsUsage: "[FILE...]",
		Description: `
Sorts a private copy of the input with each algorithm in parallel and prints one line per
algorithm with the number of passes, comparisons and swaps it needed.

Examples:
$ seq 20 | sort -R | simplesort compare -n`,
		Flags: orderFlags(),
	}
}

func compareAction(c *cli.Context) error {
	records, err := readRecords(c, c.Bool("numeric"))
	if err != nil {
		return err
	}
	compare := comparatorFor(c)

	results := make([]simplesort.Stats, len(simplesort.Algorithms))
	var g errgroup.Group
	for i, algorithm := range simplesort.Algorithms {
		i, algorithm := i, algorithm
		g.Go(func() error {
			data := slices.Clone(records)
			start := time.Now()
			stats, err := simplesort.New(compare, &simplesort.Config{Algorithm: algorithm}).Sort(data)
			if err != nil {
				return fmt.Errorf("%s: %w", algorithm, err)
			}
			logger.WithFields(logrus.Fields{
				"algorithm": algorithm.String(),
				"elapsed":   time.Since(start),
			}).Debug("finished")
			results[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := bufio.NewWriter(c.App.Writer)
	for i, algorithm := range simplesort.Algorithms {
		fmt.Fprintf(w, "%s %s\n", algorithm, results[i])
	}
	return w.Flush()
}
