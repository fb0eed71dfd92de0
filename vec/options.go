package vec

import "runtime"

// Options configures bulk evaluation.
type Options struct {
	// MinParallel is the element count at which MapParallel starts splitting
	// work across goroutines. If 0, DefaultMinParallel is used.
	MinParallel int
	// Workers caps the number of concurrent workers. If 0, GOMAXPROCS is
	// used.
	Workers int
}

// normalizeOptions returns a copy of opts with default values filled in for
// zero values, so every entry point shares one threshold policy.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.MinParallel == 0 {
		normalized.MinParallel = DefaultMinParallel
	}
	if normalized.Workers == 0 {
		normalized.Workers = runtime.GOMAXPROCS(0)
	}
	return normalized
}
