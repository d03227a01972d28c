package simplesort

import "cmp"

// IsSorted reports whether s is in ascending order as defined by cmp.Compare.
func IsSorted[S ~[]E, E cmp.Ordered](s S) bool {
	return FirstUnsorted[S, E](s, cmp.Compare[E]) < 0
}

// IsSortedFunc reports whether compare(s[i], s[i+1]) <= 0 holds for every adjacent pair.
func IsSortedFunc[S ~[]E, E any](s S, compare Comparator[E]) bool {
	return FirstUnsorted(s, compare) < 0
}

// FirstUnsorted returns the first index i for which s[i] orders after s[i+1],
// or -1 when s is sorted. A nil compare uses the default numeric comparator.
func FirstUnsorted[S ~[]E, E any](s S, compare Comparator[E]) int {
	compare = orDefault(compare)
	for i := 1; i < len(s); i++ {
		if compare(s[i-1], s[i]) > 0 {
			return i - 1
		}
	}
	return -1
}
