package simplesort

import (
	"fmt"
	"strings"
)

// Comparator is a function type for comparing two items of type E.
// Returns a negative integer if a should be ordered before b, zero if they are equal,
// and a positive integer if a should be ordered after b.
// It should be pure and consistent. An inconsistent comparator never makes a sort
// loop forever, it only produces an unspecified permutation of the input.
// This follows the same semantics as cmp.Compare.
type Comparator[E any] func(a, b E) int

// Number is the set of element types the default comparator can subtract.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Algorithm selects which comparison sort a Sorter runs.
type Algorithm int

const (
	// Bubble repeatedly swaps adjacent out of order pairs and stops after a pass without swaps.
	Bubble Algorithm = iota
	// Selection moves the smallest remaining element to the front of the unsorted suffix.
	Selection
)

// Algorithms lists every supported algorithm in declaration order.
var Algorithms = []Algorithm{Bubble, Selection}

func (a Algorithm) String() string {
	switch a {
	case Bubble:
		return "bubble"
	case Selection:
		return "selection"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

func (a Algorithm) valid() bool {
	return a == Bubble || a == Selection
}

// ParseAlgorithm returns the Algorithm with the given case-insensitive name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bubble":
		return Bubble, nil
	case "selection":
		return Selection, nil
	}
	return Bubble, &ConfigError{Field: "Algorithm", Value: name, Reason: "expected bubble or selection"}
}

// Stats counts the work done by a single sort call.
type Stats struct {
	Passes      int // bubble: sweeps over the active range, selection: outer iterations
	Comparisons int // comparator calls
	Swaps       int // element exchanges
}

func (s Stats) String() string {
	return fmt.Sprintf("passes=%d comparisons=%d swaps=%d", s.Passes, s.Comparisons, s.Swaps)
}

// Step describes one decision taken while sorting.
// For bubble sort I and J are the adjacent pair just compared.
// For selection sort I is the boundary of the sorted prefix and J the index of the
// minimum found in the unsorted suffix.
type Step struct {
	Algorithm Algorithm
	Pass      int
	I, J      int
	Swapped   bool
}

// TraceFunc receives every Step of a sort while it runs.
type TraceFunc func(Step)
