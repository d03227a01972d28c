package simplesort

import "cmp"

// BubbleSort sorts s in place in ascending order and returns it.
// Numbers are ordered by value and strings lexicographically, as by cmp.Compare.
func BubbleSort[S ~[]E, E cmp.Ordered](s S) S {
	return BubbleSortFunc[S, E](s, cmp.Compare[E])
}

// BubbleSortFunc sorts s in place using compare and returns it.
//
// Every pass swaps the adjacent pairs that compare out of order, which carries the
// largest remaining element to the end of the active range and shrinks that range by
// one. A pass without swaps ends the sort early, so sorted input costs a single pass.
// A nil compare is replaced by the default numeric comparator, which panics with a
// *ComparisonError when the elements are not numbers.
//
// The sort is stable. It runs in O(n²) time in the worst case, O(n) when s is already
// sorted, and O(1) extra space.
func BubbleSortFunc[S ~[]E, E any](s S, compare Comparator[E]) S {
	bubble[E](s, newRun(compare, nil))
	return s
}

// BubbleSortStats is BubbleSortFunc that also reports the work it did.
func BubbleSortStats[S ~[]E, E any](s S, compare Comparator[E]) (S, Stats) {
	r := newRun(compare, nil)
	bubble[E](s, r)
	return s, r.stats
}

func bubble[E any](s []E, r *run[E]) {
	for end := len(s); end > 1; end-- {
		r.stats.Passes++
		swapped := false
		for j := 0; j < end-1; j++ {
			out := r.compare(s[j], s[j+1]) > 0
			if out {
				r.swap(s, j, j+1)
				swapped = true
			}
			r.step(Step{Algorithm: Bubble, Pass: r.stats.Passes, I: j, J: j + 1, Swapped: out})
		}
		if !swapped {
			return
		}
	}
}
