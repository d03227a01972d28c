package simplesort

// Config holds configuration settings for a Sorter
type Config struct {
	Algorithm Algorithm // sorting algorithm to run, Bubble by default
	Reverse   bool      // order from largest to smallest under the comparator
	Trace     TraceFunc // called for every step when not nil
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		Algorithm: Bubble,
		Reverse:   false,
		Trace:     nil,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	merged := *c
	if !merged.Algorithm.valid() {
		merged.Algorithm = d.Algorithm
	}
	// skipping Reverse and Trace as their zero values are the defaults
	return &merged
}
