// Package fixed implements Q32.32 fixed-point arithmetic and a transcendental
// function library on top of it.
//
// All math is done on a 64-bit signed two's-complement integer reinterpreted
// as a fixed-point fraction: a Value with raw bits r represents the real
// number r / 2^32. This gives a whole part of up to 2^31 - 1 in magnitude and
// a fractional resolution of 2^-32, which is a decent range and accuracy for
// platforms where floating-point hardware is unavailable, slow, or simply
// unwanted in a hot path.
//
// The package provides the arithmetic primitives (Add, Sub, Neg, Mul, Inv,
// Div, and exact power-of-two scaling), bit-exact conversion to and from the
// IEEE-754 double-precision encoding, and sin/cos/tan, their inverses, exp,
// log, pow, sqrt and the hyperbolic family, all built from range reduction,
// truncated power series and Newton-Raphson refinement.
//
// # Contract
//
// For speed, the kernel performs no validation whatsoever:
//
//   - No checking for arguments out of range.
//   - No checking for divide by zero.
//   - No checking for overflow or underflow.
//   - Chops (truncates), doesn't round.
//
// Garbage in, garbage out is the documented behavior, not a bug. Callers that
// want domain validation for testing can opt into the Checked wrapper, whose
// success path is bit-identical to the plain functions.
//
// Every operation is a pure function over 64-bit values with no shared
// mutable state, no allocation and a fixed, input-independent number of
// primitive steps (the iterative solvers run bounded iteration counts).
// Values can therefore be shared freely across goroutines without any
// synchronization.
package fixed
