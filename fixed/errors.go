package fixed

import "errors"

// Sentinel errors reported by the Checked wrapper. The plain kernel
// functions never return errors of any kind.
var (
	// ErrDivideByZero is returned by Checked.Div and Checked.Inv for a zero
	// divisor.
	ErrDivideByZero = errors.New("fixed: divide by zero")

	// ErrDomain is returned when an argument lies outside a function's
	// mathematical domain (asin/acos beyond [-1, 1], log/sqrt of a
	// non-positive value).
	ErrDomain = errors.New("fixed: argument outside domain")
)
