// Package simplesort implements in-place comparison sorts (bubble sort and selection sort)
// over slices, ordered by a pluggable comparator that defaults to ascending numeric order.
package simplesort

// Sorter runs one configured algorithm with a fixed comparator. Unlike the plain
// functions it counts its work, reports every step to Config.Trace, and returns a
// *ComparisonError instead of panicking when the comparator fails.
// A Sorter holds no per-call state and may be shared; the slices it sorts may not.
type Sorter[E any] struct {
	config      Config
	compareFunc Comparator[E]
}

// New returns a Sorter ordering elements with compareFunc.
// compareFunc may be nil to use the default numeric comparator.
// config can be nil to use the defaults, or only set the non-default values desired.
func New[E any](compareFunc Comparator[E], config *Config) *Sorter[E] {
	config = mergeConfig(config)
	compareFunc = orDefault(compareFunc)
	if config.Reverse {
		compareFunc = Reverse(compareFunc)
	}
	return &Sorter[E]{
		config:      *config,
		compareFunc: compareFunc,
	}
}

// Algorithm returns the algorithm this Sorter runs.
func (s *Sorter[E]) Algorithm() Algorithm {
	return s.config.Algorithm
}

// Sort sorts data in place and returns the work done.
// If the comparator panics the panic is recovered and returned as a *ComparisonError,
// and data is left holding some permutation of its original elements.
func (s *Sorter[E]) Sort(data []E) (stats Stats, err error) {
	r := newRun(s.compareFunc, s.config.Trace)
	defer func() {
		// Recover from panics in comparison function
		if p := recover(); p != nil {
			stats = r.stats
			err = NewComparisonError(p, s.config.Algorithm.String()+" sort")
		}
	}()

	switch s.config.Algorithm {
	case Selection:
		selection(data, r)
	default:
		bubble(data, r)
	}
	return r.stats, nil
}
