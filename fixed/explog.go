package fixed

// Exp returns e^x.
//
// The argument splits into a nearest integer i (round half up) and a
// remainder in [-1/2, 1/2] handled by the truncated series; the integer part
// comes back in by exponentiation-by-squaring over the bits of |i|, with
// 1/e as the base when i is negative. Results above the representable range
// wrap silently.
func Exp(x Value) Value {
	i := x.Add(Half).Int()
	r := expSeries(x.Sub(FromInt(i)))

	e := E
	if i < 0 {
		i = -i
		e = InvE
	}
	for ; i != 0; i >>= 1 {
		if i&1 != 0 {
			r = r.Mul(e)
		}
		e = e.Mul(e)
	}
	return r
}

// expSeries evaluates the truncated Maclaurin exponential on [-1/2, 1/2]:
//
//	e^x = 1 + x + x^2/2! + ... + x^11/11!
//
// nested from the deepest divisor outward. (1/2)^12/12! is below 2^-32, so
// eleven series terms saturate the precision.
func expSeries(x Value) Value {
	r := One.Add(x.Mul(OneEleventh))
	r = One.Add(x.Mul(r).Mul(OneTenth))
	r = One.Add(x.Mul(r).Mul(OneNinth))
	r = One.Add(x.Mul(r).Mul(OneEighth))
	r = One.Add(x.Mul(r).Mul(OneSeventh))
	r = One.Add(x.Mul(r).Mul(OneSixth))
	r = One.Add(x.Mul(r).Mul(OneFifth))
	r = One.Add(x.Mul(r).Mul(OneQuarter))
	r = One.Add(x.Mul(r).Mul(OneThird))
	r = One.Add(x.Mul(r).Mul(Half))
	r = One.Add(x.Mul(r))
	return r
}

// Log returns the natural logarithm of x by Newton-Raphson, for x > 0.
// Non-positive arguments are a caller error: negative ones produce garbage
// and zero never leaves the scaling loop. Checked.Log reports both instead.
//
// The argument is first walked into [1/sqrt(e), sqrt(e)] by whole factors of
// e, each step adding or removing one unit from the accumulator. Inside that
// interval the refinement
//
//	delta = (x-1)*(x-3)/2
//
// approximates -ln(x) well enough that subtracting delta from the
// accumulator and rescaling x by e^delta (series only: delta stays inside
// the reduced range) converges in three passes, the last of which needs no
// rescale.
func Log(x Value) Value {
	var ln Value
	for x < InvSqrtE {
		ln = ln.Sub(One)
		x = x.Mul(E)
	}
	for x > SqrtE {
		ln = ln.Add(One)
		x = x.Mul(InvE)
	}

	for i := 0; i < 2; i++ {
		delta := x.Sub(One).Mul(x.Sub(Three).Mul(Half))
		ln = ln.Sub(delta)
		x = x.Mul(expSeries(delta))
	}
	delta := x.Sub(One).Mul(x.Sub(Three).Mul(Half))
	return ln.Sub(delta)
}

// Pow returns x^y as e^(y * ln x). Pow(x, 0) is 1 for any x, including the
// values Log would butcher; everything else requires x > 0.
func Pow(x, y Value) Value {
	if y == 0 {
		return One
	}
	return Exp(y.Mul(Log(x)))
}

// Exp2 returns 2^x as e^(x * ln 2).
func Exp2(x Value) Value {
	return Exp(x.Mul(Ln2))
}

// Log2 returns the base-2 logarithm of x.
func Log2(x Value) Value {
	return Log(x).Mul(Log2E)
}

// Log10 returns the base-10 logarithm of x.
func Log10(x Value) Value {
	return Log(x).Mul(Log10E)
}

// Sqrt returns the square root of x by Newton's method.
//
// Non-positive arguments come back unchanged rather than reporting an error
// (Checked.Sqrt signals a domain error instead), and Sqrt(1) is exactly 1.
//
// The argument scales into [1/2, 2) by exact factors of 4 while a scale
// factor n collects the corresponding factors of 2. Landing exactly on 1
// means x was a power of 4 and n is the answer. Otherwise Newton's update
// for the root of f(t) = t^2 - x,
//
//	t' = t - (t - x/t)/2
//
// starting from t = 1 (between the extremes sqrt(1/2) and sqrt(2)) converges
// within four iterations, and n scales the root back up.
func Sqrt(x Value) Value {
	if x <= 0 || x == One {
		return x
	}

	n := One
	for x >= Two {
		x = x.Div4()
		n = n.Mul2()
	}
	for x < Half {
		x = x.Mul4()
		n = n.Div2()
	}
	if x == One {
		return n
	}

	t := One
	for i := 0; i < 4; i++ {
		t = t.Sub(Half.Mul(t.Sub(x.Div(t))))
	}
	return n.Mul(t)
}
