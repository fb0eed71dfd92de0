package fixed

// The circular functions reduce any argument to a quadrant-relative one:
//
//	i  = round(x * 2/pi)      (round half up: add 1/2, chop)
//	x' = x - i * pi/2
//
// which pins x' to [-pi/4, pi/4], where the truncated series below are
// accurate to the last representable bit. The quadrant index i mod 4 then
// selects which core series to evaluate and with which sign.

// reduceQuadrant returns the quadrant index and the reduced argument.
func reduceQuadrant(x Value) (int32, Value) {
	i := x.Mul(TwoOverPi).Add(Half).Int()
	return i, x.Sub(FromInt(i).Mul(PiOver2))
}

// Sin returns sin(x) for x in radians.
func Sin(x Value) Value {
	i, x := reduceQuadrant(x)
	switch i & 3 {
	case 1:
		return cosSeries(x)
	case 2:
		return sinSeries(x).Neg()
	case 3:
		return cosSeries(x).Neg()
	default:
		return sinSeries(x)
	}
}

// Cos returns cos(x) for x in radians.
func Cos(x Value) Value {
	i, x := reduceQuadrant(x)
	switch i & 3 {
	case 1:
		return sinSeries(x).Neg()
	case 2:
		return cosSeries(x).Neg()
	case 3:
		return sinSeries(x)
	default:
		return cosSeries(x)
	}
}

// Tan returns tan(x) for x in radians. It shares the quadrant reduction with
// Sin and Cos, evaluating both core series once on the reduced argument so
// the ratio stays consistent near quadrant boundaries. No pole detection:
// near odd multiples of pi/2 the cosine factor underflows and the result is
// garbage, per the package contract.
func Tan(x Value) Value {
	i, x := reduceQuadrant(x)
	switch i & 3 {
	case 1, 3:
		return cosSeries(x).Div(sinSeries(x)).Neg()
	default:
		return sinSeries(x).Div(cosSeries(x))
	}
}

// cosSeries evaluates the truncated Maclaurin cosine on [-pi/4, pi/4]:
//
//	cos x = 1 - x^2/2! + x^4/4! - ... + x^12/12!
//
// nested so every term is the previous one times x^2 over the ratio of
// consecutive factorials (see the constant table). The next term,
// (pi/4)^14/14!, is already below 2^-32, so six terms are exact at this
// precision.
func cosSeries(x Value) Value {
	x2 := x.Mul(x)
	r := One.Sub(x2.Mul(One).Mul(inv132))
	r = One.Sub(x2.Mul(r).Mul(inv90))
	r = One.Sub(x2.Mul(r).Mul(inv56))
	r = One.Sub(x2.Mul(r).Mul(inv30))
	r = One.Sub(x2.Mul(r).Mul(OneTwelfth))
	r = One.Sub(x2.Mul(r).Mul(Half))
	return r
}

// sinSeries evaluates the truncated Maclaurin sine on [-pi/4, pi/4]:
//
//	sin x = x - x^3/3! + x^5/5! - ... + x^13/13!
//
// with the same nesting as cosSeries; (pi/4)^15/15! < 2^-32.
func sinSeries(x Value) Value {
	x2 := x.Mul(x)
	r := x.Sub(x2.Mul(One).Mul(inv156))
	r = x.Sub(x2.Mul(r).Mul(inv110))
	r = x.Sub(x2.Mul(r).Mul(inv72))
	r = x.Sub(x2.Mul(r).Mul(inv42))
	r = x.Sub(x2.Mul(r).Mul(inv20))
	r = x.Sub(x2.Mul(r).Mul(OneSixth))
	return r
}

// Sec returns 1/cos(x). No dedicated series; accuracy follows Inv.
func Sec(x Value) Value {
	return Inv(Cos(x))
}

// Csc returns 1/sin(x).
func Csc(x Value) Value {
	return Inv(Sin(x))
}

// Cot returns cos(x)/sin(x).
func Cot(x Value) Value {
	return Cos(x).Div(Sin(x))
}
