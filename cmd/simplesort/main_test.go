package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lanrat/simplesort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"simplesort"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSortNumericStdin(t *testing.T) {
	out, err := run(t, "5\n3\n8\n1\n", "sort", "-n")
	require.NoError(t, err)
	assert.Equal(t, "1\n3\n5\n8\n", out)
}

func TestSortNumericKeepsOriginalText(t *testing.T) {
	out, err := run(t, "10\n 2.50\n\n-1e1\n", "sort", "--numeric", "--algorithm", "selection")
	require.NoError(t, err)
	assert.Equal(t, "-1e1\n 2.50\n10\n", out)
}

func TestSortStringsFromFiles(t *testing.T) {
	a := writeFile(t, "a.txt", "cherry\napple\n")
	b := writeFile(t, "b.txt", "date\nbanana\n")

	out, err := run(t, "", "sort", "-a", "selection", "-r", a, b)
	require.NoError(t, err)
	assert.Equal(t, "date\ncherry\nbanana\napple\n", out)
}

func TestSortLexicalByDefault(t *testing.T) {
	out, err := run(t, "10\n9\n100\n", "sort")
	require.NoError(t, err)
	assert.Equal(t, "10\n100\n9\n", out)
}

func TestSortErrors(t *testing.T) {
	_, err := run(t, "1\nnope\n", "sort", "-n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin:2")

	_, err = run(t, "1\n", "sort", "-a", "quick")
	var ce *simplesort.ConfigError
	require.ErrorAs(t, err, &ce)

	_, err = run(t, "", "sort", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSortTraceLogsSteps(t *testing.T) {
	var logs bytes.Buffer
	logger.SetOutput(&logs)
	defer logger.SetOutput(io.Discard)

	out, err := run(t, "2\n1\n", "--trace", "--no-color", "sort", "-n")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
	assert.Contains(t, logs.String(), "msg=step")
	assert.Contains(t, logs.String(), "swapped=true")
}

func TestCheck(t *testing.T) {
	_, err := run(t, "1\n2\n2\n10\n", "check", "-n")
	assert.NoError(t, err)

	_, err = run(t, "3\n2\n1\n", "check", "-n", "-r")
	assert.NoError(t, err)

	_, err = run(t, "a\nc\nb\n", "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin:2")
	assert.Contains(t, err.Error(), "stdin:3")
}

func TestCompare(t *testing.T) {
	out, err := run(t, "5\n3\n8\n1\n", "compare", "-n")
	require.NoError(t, err)
	assert.Equal(t, "bubble passes=3 comparisons=6 swaps=4\nselection passes=4 comparisons=6 swaps=2\n", out)
}

func TestCompareEmptyInput(t *testing.T) {
	out, err := run(t, "", "compare")
	require.NoError(t, err)
	assert.Equal(t, "bubble passes=0 comparisons=0 swaps=0\nselection passes=0 comparisons=0 swaps=0\n", out)
}
