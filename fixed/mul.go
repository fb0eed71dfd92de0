package fixed

import "math/bits"

// Multiplying two Q32.32 values produces a 128-bit product in Q64.64; the
// fixed-point result is the middle 64 bits of that product. Writing each
// operand as hi*2^0 + lo*2^-32 (hi the signed integer word, lo the unsigned
// fraction word), the exact product is
//
//	hi_x*hi_y*2^0 + (hi_x*lo_y + lo_x*hi_y)*2^-32 + lo_x*lo_y*2^-64
//
// of which we keep:
//
//   - the low 32 bits of the hi*hi term (the rest is overflow, discarded),
//   - all 64 bits of the cross term,
//   - the high 32 bits of the lo*lo term (the rest is underflow, discarded).
//
// Two implementations compute this identically, bit for bit:
//
//   - mulWidening uses the machine's 64x64->128 widening multiply
//     (math/bits.Mul64) and extracts the middle directly, fixing up the top
//     half for negative operands. This is the fast path.
//   - mulPortable decomposes both operands into 32-bit words and sums the
//     four partial products, the way machines without a widening multiply
//     have to do it.
//
// Their equivalence, and their agreement with an arbitrary-precision
// reference product, is locked down by property tests over all four sign
// combinations.
var mulImpl = mulWidening

// Mul returns v * x, keeping the middle 64 bits of the exact 128-bit
// product. The low 32 bits of the product chop away (underflow) and the high
// 32 bits are discarded (overflow); neither condition is detected.
func (v Value) Mul(x Value) Value {
	return mulImpl(v, x)
}

// mulWidening computes the middle 64 bits via a single widening multiply.
// The unsigned 128-bit product differs from the signed one by y*2^64 for
// each negative operand, so subtracting the other operand from the high half
// recovers the two's-complement product before extraction.
func mulWidening(x, y Value) Value {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if x < 0 {
		hi -= uint64(y)
	}
	if y < 0 {
		hi -= uint64(x)
	}
	return Value(hi<<32 | lo>>32)
}

// mulPortable computes the same middle 64 bits from four 32x32->64 partial
// products. The sign fix-up mirrors mulWidening: subtracting the other
// operand's fraction word at integer weight is the only part of the y*2^64
// correction that lands inside the kept window.
func mulPortable(x, y Value) Value {
	xhi := uint64(x) >> 32
	xlo := uint64(x) & 0xffffffff
	yhi := uint64(y) >> 32
	ylo := uint64(y) & 0xffffffff

	r := xhi*yhi<<32 + xhi*ylo + xlo*yhi + xlo*ylo>>32
	if x < 0 {
		r -= ylo << 32
	}
	if y < 0 {
		r -= xlo << 32
	}
	return Value(r)
}
