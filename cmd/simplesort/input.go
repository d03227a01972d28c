package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lanrat/simplesort"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var errNoInput = errors.New("no input: pass FILE arguments or pipe data on stdin")

// record is one input line and where it came from
type record struct {
	Text   string
	Value  float64 // parsed Text when sorting numerically
	Source string
	Line   int
}

func (r record) String() string {
	return fmt.Sprintf("%s:%d", r.Source, r.Line)
}

func compareText(a, b record) int {
	return strings.Compare(a.Text, b.Text)
}

func compareValue(a, b record) int {
	return simplesort.Subtract(a.Value, b.Value)
}

func recordComparator(numeric bool) simplesort.Comparator[record] {
	if numeric {
		return compareValue
	}
	return compareText
}

// readRecords reads every line of the command's FILE arguments, or stdin when there are none
func readRecords(c *cli.Context, numeric bool) ([]record, error) {
	names := c.Args().Slice()
	if len(names) == 0 {
		names = []string{"-"}
	}

	var records []record
	for _, name := range names {
		r, err := openInput(c, name)
		if err != nil {
			return nil, err
		}
		source := name
		if name == "-" {
			source = "stdin"
		}
		recs, err := scanRecords(r, source, numeric)
		closeErr := r.Close()
		if err != nil {
			return nil, err
		}
		if closeErr != nil {
			return nil, fmt.Errorf("close %s: %w", source, closeErr)
		}
		logger.WithFields(logrus.Fields{"source": source, "records": len(recs)}).Debug("read input")
		records = append(records, recs...)
	}
	return records, nil
}

func openInput(c *cli.Context, name string) (io.ReadCloser, error) {
	if name != "-" {
		return os.Open(name)
	}
	if f, ok := c.App.Reader.(*os.File); ok && isTerminal(f) {
		return nil, errNoInput
	}
	return io.NopCloser(c.App.Reader), nil
}

func scanRecords(r io.Reader, source string, numeric bool) ([]record, error) {
	var records []record
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		rec := record{Text: scanner.Text(), Source: source, Line: line}
		if numeric {
			field := strings.TrimSpace(rec.Text)
			if field == "" {
				logger.WithField("record", rec.String()).Debug("skipping blank line")
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", rec, err)
			}
			rec.Value = v
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return records, nil
}

func writeRecords(w io.Writer, records []record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := fmt.Fprintln(bw, rec.Text); err != nil {
			return err
		}
	}
	return bw.Flush()
}
