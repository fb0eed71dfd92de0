package fixed

// Inv returns 1/v by Newton-Raphson refinement.
//
// The solver works on the magnitude and reapplies the sign at the end. The
// initial guess is derived from the position of the highest set bit: an
// all-ones accumulator is shifted right once for every bit of |v|, leaving a
// power-of-two-sized estimate of the reciprocal from which six iterations of
//
//	u = u * (2 - v*u)
//
// converge to full fixed-point precision. Six is enough for any nonzero
// input because the error roughly squares on every pass.
//
// Inv(0) is a caller error: there is no divide-by-zero detection, and the
// result is garbage.
func Inv(v Value) Value {
	neg := v < 0
	if neg {
		v = -v
	}

	// Seed: logical shifts, one per significant bit of v.
	s := ^uint64(0)
	for u := uint64(v); u != 0; u >>= 1 {
		s >>= 1
	}

	u := Value(s)
	for i := 0; i < 6; i++ {
		u = u.Mul(Two.Sub(v.Mul(u)))
	}

	if neg {
		return -u
	}
	return u
}

// Div returns v / x, computed as v * Inv(x). Division inherits the
// reciprocal's accuracy (a few ulps of absolute error in 1/x, scaled back
// up by v) and its lack of a divide-by-zero check.
func (v Value) Div(x Value) Value {
	return v.Mul(Inv(x))
}
