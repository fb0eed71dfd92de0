package fixed

// The hyperbolic family is expressed directly through Exp; there are no
// dedicated series. Accuracy and overflow behavior follow Exp's: arguments
// whose exponential leaves the representable range produce garbage.

// Sinh returns (e^x - e^-x)/2.
func Sinh(x Value) Value {
	return Exp(x).Sub(Exp(x.Neg())).Div2()
}

// Cosh returns (e^x + e^-x)/2.
func Cosh(x Value) Value {
	return Exp(x).Add(Exp(x.Neg())).Div2()
}

// Tanh returns (e^2x - 1)/(e^2x + 1).
func Tanh(x Value) Value {
	e2 := Exp(x.Mul2())
	return e2.Sub(One).Div(e2.Add(One))
}

// Sech returns 1/cosh(x).
func Sech(x Value) Value {
	return Inv(Cosh(x))
}

// Csch returns 1/sinh(x).
func Csch(x Value) Value {
	return Inv(Sinh(x))
}

// Coth returns (e^2x + 1)/(e^2x - 1).
func Coth(x Value) Value {
	e2 := Exp(x.Mul2())
	return e2.Add(One).Div(e2.Sub(One))
}
