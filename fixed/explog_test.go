package fixed

import (
	"fmt"
	"math"
	"testing"
)

func TestExp(t *testing.T) {
	t.Parallel()

	if got := Exp(0); got != One {
		t.Errorf("Exp(0) = %#x, want exactly one", int64(got))
	}

	for _, f := range []float64{-10, -4, -1, -0.5, 0.5, 1, 2, 4, 10, 20} {
		f := f
		t.Run(fmt.Sprintf("x=%g", f), func(t *testing.T) {
			t.Parallel()
			got := Exp(FromFloat64(f)).Float64()
			want := math.Exp(f)
			// Small results bottom out at a few ulps of absolute chop error,
			// so the bound has both a relative and an absolute term.
			if d := math.Abs(got - want); d > want*1e-7+math.Ldexp(1, -28) {
				t.Errorf("Exp(%g) = %g, want %g (err %g)", f, got, want, d)
			}
		})
	}
}

func TestLog(t *testing.T) {
	t.Parallel()

	eps := math.Ldexp(1, -22)
	for _, f := range []float64{1e-6, 0.01, 0.5, 1, 1.5, 2, math.E, 10, 1000, 1e6} {
		f := f
		t.Run(fmt.Sprintf("x=%g", f), func(t *testing.T) {
			t.Parallel()
			got := Log(FromFloat64(f)).Float64()
			if d := math.Abs(got - math.Log(f)); d > eps {
				t.Errorf("Log(%g) = %g, want %g (err %g)", f, got, math.Log(f), d)
			}
		})
	}
}

func TestExpLog_Inverses(t *testing.T) {
	t.Parallel()

	eps := math.Ldexp(1, -20)
	for _, f := range []float64{-4, -1, -0.25, 0, 0.25, 1, 4} {
		f := f
		got := Log(Exp(FromFloat64(f))).Float64()
		if d := math.Abs(got - f); d > eps {
			t.Errorf("log(exp(%g)) = %g (err %g)", f, got, d)
		}
	}
	for _, f := range []float64{0.05, 0.5, 1, 2, 10, 50} {
		f := f
		got := Exp(Log(FromFloat64(f))).Float64()
		// exp magnifies log's absolute error by the value itself.
		if d := math.Abs(got - f); d > eps*math.Max(1, f) {
			t.Errorf("exp(log(%g)) = %g (err %g)", f, got, d)
		}
	}
}

func TestPow(t *testing.T) {
	t.Parallel()

	// x^0 short-circuits to one before any log is taken, even for arguments
	// log would mangle.
	for _, x := range []Value{0, One, Two, Ten.Neg()} {
		if got := Pow(x, 0); got != One {
			t.Errorf("Pow(%#x, 0) = %#x, want one", int64(x), int64(got))
		}
	}

	tests := []struct {
		x, y, want float64
	}{
		{2, 2, 4},
		{2, 0.5, math.Sqrt2},
		{10, 3, 1000},
		{4, -0.5, 0.5},
		{1.5, 7, math.Pow(1.5, 7)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%g**%g", tt.x, tt.y), func(t *testing.T) {
			t.Parallel()
			got := Pow(FromFloat64(tt.x), FromFloat64(tt.y)).Float64()
			rel := math.Abs(got-tt.want) / tt.want
			if rel > 1e-6 {
				t.Errorf("Pow(%g, %g) = %g, want %g (rel err %g)", tt.x, tt.y, got, tt.want, rel)
			}
		})
	}
}

func TestExp2_Log2_Log10(t *testing.T) {
	t.Parallel()

	eps := math.Ldexp(1, -20)
	if got := Exp2(Three).Float64(); math.Abs(got-8) > 8*eps {
		t.Errorf("Exp2(3) = %g, want 8", got)
	}
	if got := Log2(FromInt(8)).Float64(); math.Abs(got-3) > eps {
		t.Errorf("Log2(8) = %g, want 3", got)
	}
	if got := Log10(FromInt(1000)).Float64(); math.Abs(got-3) > eps {
		t.Errorf("Log10(1000) = %g, want 3", got)
	}
}

func TestSqrt(t *testing.T) {
	t.Parallel()

	// Power-of-four arguments take the scaling loops straight to one and come
	// back exact.
	exact := []struct {
		x, want Value
	}{
		{Four, Two},
		{One, One},
		{FromInt(16), Four},
		{FromInt(64), FromInt(8)},
	}
	for _, tt := range exact {
		tt := tt
		if got := Sqrt(tt.x); got != tt.want {
			t.Errorf("Sqrt(%#x) = %#x, want exactly %#x", int64(tt.x), int64(got), int64(tt.want))
		}
	}

	for _, f := range []float64{0.001, 0.1, 0.5, 2, 3, 10, 1000, 1e6} {
		f := f
		t.Run(fmt.Sprintf("x=%g", f), func(t *testing.T) {
			t.Parallel()
			got := Sqrt(FromFloat64(f)).Float64()
			want := math.Sqrt(f)
			rel := math.Abs(got-want) / want
			if rel > 1e-7 {
				t.Errorf("Sqrt(%g) = %g, want %g (rel err %g)", f, got, want, rel)
			}
		})
	}
}

// Non-positive arguments pass through unchanged instead of reporting an
// error; Checked.Sqrt is the variant that reports.
func TestSqrt_OutOfDomain(t *testing.T) {
	t.Parallel()

	for _, x := range []Value{0, One.Neg(), Ten.Neg()} {
		if got := Sqrt(x); got != x {
			t.Errorf("Sqrt(%#x) = %#x, want the argument back", int64(x), int64(got))
		}
	}
}

func TestSqrt_SquaresBack(t *testing.T) {
	t.Parallel()

	for _, f := range []float64{0.25, 0.7, 2, 9, 100, 12345} {
		f := f
		x := FromFloat64(f)
		r := Sqrt(x)
		got := r.Mul(r).Float64()
		if d := math.Abs(got - f); d > math.Ldexp(1, -20)*math.Max(1, f) {
			t.Errorf("Sqrt(%g)^2 = %g (err %g)", f, got, d)
		}
	}
}

func BenchmarkExp(b *testing.B) {
	b.ReportAllocs()
	x := FromFloat64(2.5)
	var sink Value
	for i := 0; i < b.N; i++ {
		sink = Exp(x)
	}
	_ = sink
}

func BenchmarkSqrt(b *testing.B) {
	b.ReportAllocs()
	x := FromFloat64(2.5)
	var sink Value
	for i := 0; i < b.N; i++ {
		sink = Sqrt(x)
	}
	_ = sink
}
