package fixed

// Value is a Q32.32 fixed-point number: a 64-bit signed integer whose real
// value is the raw bits divided by 2^32. The upper 32 bits hold the signed
// integer part, the lower 32 bits the fraction.
//
// Value is a plain integer type. It is passed and returned by value, never
// carries allocation, and is immutable in the sense that every operation
// produces a new Value.
type Value int64

const (
	intMask  = ^Value(0) << 32 // integer-part bits
	fracMask = ^intMask        // fractional-part bits
)

// FromInt converts an integer to its exact fixed-point representation.
func FromInt(i int32) Value {
	return Value(i) << 32
}

// Int truncates v to an integer, chopping the fractional bits.
// The truncation is toward negative infinity (arithmetic shift), consistent
// with every other chop in the package.
func (v Value) Int() int32 {
	return int32(v >> 32)
}

// IntPart returns v with its fractional bits cleared.
func (v Value) IntPart() Value {
	return v & intMask
}

// FracPart returns v with its integer bits cleared.
func (v Value) FracPart() Value {
	return v & fracMask
}

// Add returns v + x. Native two's-complement addition; overflow wraps.
func (v Value) Add(x Value) Value {
	return v + x
}

// Sub returns v - x. Native two's-complement subtraction; overflow wraps.
func (v Value) Sub(x Value) Value {
	return v - x
}

// Neg returns -v.
func (v Value) Neg() Value {
	return -v
}

// Mul2 returns v * 2. Exact (a left shift), unlike Mul with a constant,
// which chops.
func (v Value) Mul2() Value {
	return v << 1
}

// Mul4 returns v * 4. Exact.
func (v Value) Mul4() Value {
	return v << 2
}

// Mul2n returns v * 2^n for 0 <= n <= 31. Exact.
func (v Value) Mul2n(n int) Value {
	return v << uint(n)
}

// Div2 returns v / 2, chopped toward negative infinity (arithmetic shift).
func (v Value) Div2() Value {
	return v >> 1
}

// Div4 returns v / 4, chopped toward negative infinity.
func (v Value) Div4() Value {
	return v >> 2
}

// Div2n returns v / 2^n for 0 <= n <= 31, chopped toward negative infinity.
func (v Value) Div2n(n int) Value {
	return v >> uint(n)
}
