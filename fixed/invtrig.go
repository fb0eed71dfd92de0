package fixed

// The inverse circular functions run a short two-term approximation and a
// fixed number of refinement passes instead of a long series: the arctangent
// series converges miserably near |x| = 1, while the refinement below gets
// there in two passes.

// Atan returns atan(x), in (-pi/2, pi/2).
//
// Arguments beyond the unit interval fold back through the identity
// atan(x) = +-pi/2 -+ atan(1/x), so the core solver only ever sees |x| <= 1,
// its worst case for convergence.
func Atan(x Value) Value {
	switch {
	case x > One:
		return PiOver2.Sub(atanCore(Inv(x)))
	case x < One.Neg():
		return PiOver2.Neg().Sub(atanCore(Inv(x)))
	default:
		return atanCore(x)
	}
}

// atanCore solves atan for |x| <= 1.
//
// Start from the two-term series a = x - x^3/3. The residual atan(x) - a is
// itself an arctangent: applying tan to it and the subtraction identity
//
//	tan(u - v) = (tan u - tan v) / (1 + tan u * tan v)
//
// with t = tan(a) turns the remaining error into a fresh, much smaller
// argument x' = (x - t)/(1 + x*t), which the two-term series picks up again.
// Two refinement passes cover the worst case |x| = 1.
func atanCore(x Value) Value {
	a := x.Mul(One.Sub(x.Mul(x.Mul(OneThird))))
	r := a

	for i := 0; i < 2; i++ {
		t := sinSeries(a).Div(cosSeries(a))
		x = x.Sub(t).Div(One.Add(t.Mul(x)))
		a = x.Mul(One.Sub(x.Mul(x.Mul(OneThird))))
		r = r.Add(a)
	}
	return r
}

// Asin returns asin(x), in [-pi/2, pi/2], for x in [-1, 1].
//
// Out-of-domain arguments return 0 rather than an error; use Checked.Asin
// to get a domain error instead.
//
// The solver mirrors atanCore: seed with the two-term series
// a = x*(1 + x^2/6), then convert the residual to a new small argument via
//
//	sin(asin(x) - a) = x*cos(a) - sqrt(1-x^2)*sin(a)
//
// and fold the two-term series of that residual back into a. Two passes
// reach full precision, including the endpoints where the seed alone is far
// off.
func Asin(x Value) Value {
	neg := x < 0
	if neg {
		x = x.Neg()
	}
	if x > One {
		return 0
	}

	c := Sqrt(One.Sub(x.Mul(x))) // cos(asin x)
	a := x.Mul(One.Add(x.Mul(x).Mul(OneSixth)))

	for i := 0; i < 2; i++ {
		d := x.Mul(cosSeries(a)).Sub(c.Mul(sinSeries(a)))
		a = a.Add(d.Mul(One.Add(d.Mul(d).Mul(OneSixth))))
	}

	if neg {
		return a.Neg()
	}
	return a
}

// Acos returns acos(x) = pi/2 - asin(x), in [0, pi]. It inherits Asin's
// out-of-domain quirk: |x| > 1 yields pi/2.
func Acos(x Value) Value {
	return PiOver2.Sub(Asin(x))
}

// Acot returns acot(x) = atan(1/x).
func Acot(x Value) Value {
	return Atan(Inv(x))
}

// Asec returns asec(x) = acos(1/x).
func Asec(x Value) Value {
	return Acos(Inv(x))
}

// Acsc returns acsc(x) = asin(1/x).
func Acsc(x Value) Value {
	return Asin(Inv(x))
}
