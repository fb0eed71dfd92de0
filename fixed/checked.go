package fixed

import "github.com/agbru/fixcalc/internal/logging"

// Checked is an opt-in strict variant of the kernel for callers (mostly
// tests) that want domain violations reported instead of silently chopped
// into garbage. On the success path every method returns exactly the same
// bits as its unchecked counterpart; the plain functions remain the fast,
// unvalidated contract.
//
// The zero Checked value is ready to use. An optional Logger records each
// rejected argument at debug level.
type Checked struct {
	Logger logging.Logger
}

func (c Checked) reject(op string, raw Value, err error) error {
	if c.Logger != nil {
		c.Logger.Debug("argument rejected",
			logging.String("op", op),
			logging.Int64("raw", int64(raw)),
			logging.Err(err),
		)
	}
	return err
}

// Div returns x/y, or ErrDivideByZero when y is zero.
func (c Checked) Div(x, y Value) (Value, error) {
	if y == 0 {
		return 0, c.reject("div", y, ErrDivideByZero)
	}
	return x.Div(y), nil
}

// Inv returns 1/x, or ErrDivideByZero when x is zero.
func (c Checked) Inv(x Value) (Value, error) {
	if x == 0 {
		return 0, c.reject("inv", x, ErrDivideByZero)
	}
	return Inv(x), nil
}

// Asin returns asin(x), or ErrDomain for |x| > 1 (where the unchecked Asin
// quietly returns 0).
func (c Checked) Asin(x Value) (Value, error) {
	if x > One || x < One.Neg() {
		return 0, c.reject("asin", x, ErrDomain)
	}
	return Asin(x), nil
}

// Acos returns acos(x), or ErrDomain for |x| > 1.
func (c Checked) Acos(x Value) (Value, error) {
	if x > One || x < One.Neg() {
		return 0, c.reject("acos", x, ErrDomain)
	}
	return Acos(x), nil
}

// Log returns ln(x), or ErrDomain for x <= 0 (where the unchecked Log
// produces garbage, or in the case of zero never returns).
func (c Checked) Log(x Value) (Value, error) {
	if x <= 0 {
		return 0, c.reject("log", x, ErrDomain)
	}
	return Log(x), nil
}

// Sqrt returns the square root of x, or ErrDomain for x < 0 (where the
// unchecked Sqrt returns its argument unchanged).
func (c Checked) Sqrt(x Value) (Value, error) {
	if x < 0 {
		return 0, c.reject("sqrt", x, ErrDomain)
	}
	return Sqrt(x), nil
}
