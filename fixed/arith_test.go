package fixed

import (
	"fmt"
	"math"
	"testing"
)

// close reports whether a and b differ by no more than eps (both as real
// numbers, i.e. raw difference scaled by 2^-32).
func close(a, b Value, eps float64) bool {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	return float64(d)/(1<<32) <= eps
}

func TestInv(t *testing.T) {
	t.Parallel()

	tests := []float64{1, 2, 3, 0.5, 0.001, 1000, 1.0 / 3.0, math.Pi, 1e6, 1e-6}
	for _, f := range tests {
		for _, sign := range []float64{1, -1} {
			f := f * sign
			t.Run(fmt.Sprintf("x=%g", f), func(t *testing.T) {
				t.Parallel()
				x := FromFloat64(f)
				got := Inv(x).Float64()
				// The oracle inverts the value x actually holds, not f:
				// extreme arguments already lose bits on the way in.
				want := 1 / x.Float64()
				// The result is quantized to 2^-32 no matter how well the
				// solver converges, so the bound carries an absolute floor
				// alongside the relative term.
				if d := math.Abs(got - want); d > math.Abs(want)*1e-8+math.Ldexp(1, -28) {
					t.Errorf("Inv(%g) = %g, want %g (err %g)", f, got, want, d)
				}
			})
		}
	}
}

func TestDiv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x, y Value
		want float64
	}{
		{"6/3", FromInt(6), Three, 2},
		{"1/3", One, Three, 1.0 / 3.0},
		{"pi/2", Pi, Two, math.Pi / 2},
		{"-10/4", Ten.Neg(), Four, -2.5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.x.Div(tt.y)
			eps := math.Ldexp(1, -28) * math.Max(1, math.Abs(tt.want))
			if !close(got, FromFloat64(tt.want), eps) {
				t.Errorf("Div = %g, want %g", got.Float64(), tt.want)
			}
		})
	}
}

// Division is computed as multiplication by a Newton-Raphson reciprocal, so
// x/x converges to one but is not always bit-exact. 1/3 truncates on every
// refinement step, for example, and 3*(1/3) lands one ulp short of one. The
// reciprocal's few ulps of absolute error are scaled back up by the final
// multiply, so the drift from one grows linearly with the magnitude of x
// (Div(1000, 1000) is some hundreds of ulps off).
func TestDiv_SelfNearOne(t *testing.T) {
	t.Parallel()

	for _, x := range []Value{One, Two, Three, Pi, Ten, Half, OneThird, FromInt(1000)} {
		got := x.Div(x)
		eps := math.Ldexp(1, -28) * math.Max(1, math.Abs(x.Float64()))
		if !close(got, One, eps) {
			t.Errorf("Div(%#x, same) = %#x, outside %g of one", int64(x), int64(got), eps)
		}
	}
}

func BenchmarkInv(b *testing.B) {
	b.ReportAllocs()
	var sink Value
	for i := 0; i < b.N; i++ {
		sink = Inv(Pi)
	}
	_ = sink
}
