// Package vec applies fixed-point kernel functions across slices, with an
// optional parallel path for large batches and an instrumented evaluator
// for callers that want metrics and tracing around bulk work.
package vec

// ─────────────────────────────────────────────────────────────────────────────
// Performance Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultMinParallel is the default element count below which MapParallel
	// falls back to the sequential path. Each kernel call is a handful of
	// nanoseconds of pure integer work, so goroutine scheduling only pays for
	// itself on batches well into the thousands.
	DefaultMinParallel = 8192

	// chunkMultiple keeps parallel chunk boundaries aligned so workers touch
	// disjoint cache lines. A Value is 8 bytes; 8 values fill a 64-byte line.
	chunkMultiple = 8
)
