package vec

import (
	"context"

	"github.com/agbru/fixcalc/fixed"
)

// Pre-built instrumented evaluators for the kernel functions most often
// applied in bulk. Callers needing other functions construct their own with
// NewEvaluator.
var (
	sinEvaluator  = NewEvaluator("sin", fixed.Sin)
	cosEvaluator  = NewEvaluator("cos", fixed.Cos)
	expEvaluator  = NewEvaluator("exp", fixed.Exp)
	sqrtEvaluator = NewEvaluator("sqrt", fixed.Sqrt)
)

// SinSlice evaluates fixed.Sin over src into dst.
func SinSlice(ctx context.Context, dst, src []fixed.Value, opts Options) error {
	return sinEvaluator.Apply(ctx, dst, src, opts)
}

// CosSlice evaluates fixed.Cos over src into dst.
func CosSlice(ctx context.Context, dst, src []fixed.Value, opts Options) error {
	return cosEvaluator.Apply(ctx, dst, src, opts)
}

// ExpSlice evaluates fixed.Exp over src into dst.
func ExpSlice(ctx context.Context, dst, src []fixed.Value, opts Options) error {
	return expEvaluator.Apply(ctx, dst, src, opts)
}

// SqrtSlice evaluates fixed.Sqrt over src into dst.
func SqrtSlice(ctx context.Context, dst, src []fixed.Value, opts Options) error {
	return sqrtEvaluator.Apply(ctx, dst, src, opts)
}
