package simplesort

// run carries the comparator, the optional trace hook and the counters of one sort call.
type run[E any] struct {
	compareFunc Comparator[E]
	trace       TraceFunc
	stats       Stats
}

func newRun[E any](compareFunc Comparator[E], trace TraceFunc) *run[E] {
	return &run[E]{
		compareFunc: orDefault(compareFunc),
		trace:       trace,
	}
}

func (r *run[E]) compare(a, b E) int {
	r.stats.Comparisons++
	return r.compareFunc(a, b)
}

func (r *run[E]) swap(s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
	r.stats.Swaps++
}

func (r *run[E]) step(st Step) {
	if r.trace != nil {
		r.trace(st)
	}
}
