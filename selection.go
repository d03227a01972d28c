package simplesort

import "cmp"

// SelectionSort sorts s in place in ascending order and returns it.
// Numbers are ordered by value and strings lexicographically, as by cmp.Compare.
func SelectionSort[S ~[]E, E cmp.Ordered](s S) S {
	return SelectionSortFunc[S, E](s, cmp.Compare[E])
}

// SelectionSortFunc sorts s in place using compare and returns it.
//
// For each position i it scans the unsorted suffix for the smallest element and swaps
// it into place. Only a strictly smaller element replaces the current minimum, so the
// earliest of several equal minimums is chosen. Equal elements can still change their
// relative order through the swap: the sort is not stable.
// A nil compare is replaced by the default numeric comparator, which panics with a
// *ComparisonError when the elements are not numbers.
//
// It always performs n(n-1)/2 comparisons, at most n-1 swaps, and uses O(1) extra space.
func SelectionSortFunc[S ~[]E, E any](s S, compare Comparator[E]) S {
	selection[E](s, newRun(compare, nil))
	return s
}

// SelectionSortStats is SelectionSortFunc that also reports the work it did.
func SelectionSortStats[S ~[]E, E any](s S, compare Comparator[E]) (S, Stats) {
	r := newRun(compare, nil)
	selection[E](s, r)
	return s, r.stats
}

func selection[E any](s []E, r *run[E]) {
	n := len(s)
	for i := 0; i < n; i++ {
		r.stats.Passes++
		minIndex := i
		for j := i + 1; j < n; j++ {
			if r.compare(s[j], s[minIndex]) < 0 {
				minIndex = j
			}
		}
		moved := minIndex != i
		if moved {
			r.swap(s, i, minIndex)
		}
		r.step(Step{Algorithm: Selection, Pass: r.stats.Passes, I: i, J: minIndex, Swapped: moved})
	}
}
