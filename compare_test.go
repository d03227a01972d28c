package simplesort_test

import (
	"errors"
	"math"
	"testing"

	"github.com/lanrat/simplesort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtract(t *testing.T) {
	assert.Equal(t, -1, simplesort.Subtract(1, 2))
	assert.Equal(t, 1, simplesort.Subtract(2.5, 1.0))
	assert.Equal(t, 0, simplesort.Subtract(7, 7))

	// no wrap-around or overflow
	assert.Equal(t, -1, simplesort.Subtract(uint8(1), uint8(200)))
	assert.Equal(t, -1, simplesort.Subtract(int64(math.MinInt64), int64(1)))
	assert.Equal(t, 1, simplesort.Subtract(int64(math.MaxInt64), int64(-1)))

	assert.Equal(t, 0, simplesort.Subtract(math.NaN(), 1.0))
}

type celsius float64

func TestDefaultComparatorNumericKinds(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5, 8}, simplesort.BubbleSortFunc([]int{5, 3, 8, 1}, nil))
	assert.Equal(t, []uint16{1, 2, 65535}, simplesort.SelectionSortFunc([]uint16{65535, 2, 1}, nil))
	assert.Equal(t, []celsius{-4.5, 0, 21.5}, simplesort.BubbleSortFunc([]celsius{21.5, -4.5, 0}, nil))

	mixed := []any{3, 1.5, uint8(2)}
	simplesort.SelectionSortFunc(mixed, nil)
	assert.Equal(t, []any{1.5, uint8(2), 3}, mixed)
}

func TestDefaultComparatorRejectsNonNumeric(t *testing.T) {
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		simplesort.BubbleSortFunc([]string{"b", "a"}, nil)
	}()
	require.NotNil(t, recovered, "default comparator must fail on strings")

	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v is not an error", recovered)
	var ce *simplesort.ComparisonError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, simplesort.ErrNotNumeric)
	assert.Contains(t, err.Error(), "string")
}

func TestDefaultComparatorNilInterface(t *testing.T) {
	assert.Panics(t, func() {
		simplesort.SelectionSortFunc([]any{1, nil}, nil)
	})
}

func TestDefaultComparatorNeedsNoComparisonForTrivialInput(t *testing.T) {
	assert.NotPanics(t, func() {
		simplesort.BubbleSortFunc([]string{"only"}, nil)
		simplesort.SelectionSortFunc([]string{}, nil)
	})
}

func TestReverse(t *testing.T) {
	desc := simplesort.Reverse[int](nil)
	assert.Equal(t, 1, desc(1, 2))
	assert.Equal(t, []int{9, 5, 1}, simplesort.BubbleSortFunc([]int{1, 9, 5}, desc))

	byLen := func(a, b string) int { return len(a) - len(b) }
	assert.Equal(t, []string{"ccc", "bb", "a"}, simplesort.SelectionSortFunc([]string{"a", "ccc", "bb"}, simplesort.Reverse(byLen)))
}

func TestBy(t *testing.T) {
	type month struct {
		Name   string
		Amount int
	}
	sales := []month{{"Jan", 1200}, {"Feb", 1800}, {"Mar", 1350}, {"Apr", 2100}, {"May", 1500}}
	simplesort.SelectionSortFunc(sales, simplesort.By(func(m month) int { return m.Amount }))

	names := make([]string, len(sales))
	for i, m := range sales {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"Jan", "Mar", "May", "Feb", "Apr"}, names)
}

func TestComparisonErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := simplesort.NewComparisonError(cause, "test")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "comparison panic in test: boom", err.Error())

	notAnError := simplesort.NewComparisonError("just a string", "")
	assert.Nil(t, errors.Unwrap(notAnError))
	assert.Equal(t, "comparison panic: just a string", notAnError.Error())

	// an existing ComparisonError is not wrapped twice
	inner := &simplesort.ComparisonError{Cause: cause}
	outer := simplesort.NewComparisonError(inner, "outer")
	assert.Same(t, inner, outer)
	assert.Equal(t, "outer", inner.Context)
}
