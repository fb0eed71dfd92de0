package vec

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/fixcalc/fixed"
)

// Func is a scalar kernel function lifted over slices, e.g. fixed.Sin.
type Func func(fixed.Value) fixed.Value

// LengthError reports a destination too short for the source batch.
type LengthError struct {
	Dst, Src int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("vec: destination length %d shorter than source length %d", e.Dst, e.Src)
}

// Map applies f to every element of src, writing results into dst at the
// same index. dst and src may be the same slice for in-place evaluation.
func Map(dst, src []fixed.Value, f Func) error {
	if len(dst) < len(src) {
		return &LengthError{Dst: len(dst), Src: len(src)}
	}
	for i, v := range src {
		dst[i] = f(v)
	}
	return nil
}

// MapParallel applies f to every element of src, splitting the batch into
// cache-line-aligned chunks across an errgroup when it is large enough to
// pay for the scheduling (see Options.MinParallel). Cancellation is checked
// per chunk: the kernel functions themselves never block, so a chunk is the
// granularity at which a canceled context takes effect.
func MapParallel(ctx context.Context, dst, src []fixed.Value, f Func, opts Options) error {
	if len(dst) < len(src) {
		return &LengthError{Dst: len(dst), Src: len(src)}
	}
	opts = normalizeOptions(opts)

	n := len(src)
	if n < opts.MinParallel || opts.Workers < 2 {
		if err := ctx.Err(); err != nil {
			return err
		}
		return Map(dst, src, f)
	}

	chunk := (n + opts.Workers - 1) / opts.Workers
	chunk = (chunk + chunkMultiple - 1) / chunkMultiple * chunkMultiple

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				dst[i] = f(src[i])
			}
			return nil
		})
	}
	return g.Wait()
}
