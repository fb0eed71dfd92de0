package fixed

// ─────────────────────────────────────────────────────────────────────────────
// Constant Table
// ─────────────────────────────────────────────────────────────────────────────
//
// Precomputed Q32.32 encodings of the mathematical constants the kernel
// needs. Each hex literal is the chopped (not rounded) fixed-point image of
// the exact value, so e.g. OneThird ends in ...55555555 rather than carrying
// a rounded-up final digit. They are compile-time constants: immutable,
// allocation-free, and safe to share from any number of goroutines.

// Small integers and their reciprocals.
const (
	Zero  Value = 0x0000000000000000
	One   Value = 0x0000000100000000
	Two   Value = 0x0000000200000000
	Three Value = 0x0000000300000000
	Four  Value = 0x0000000400000000
	Ten   Value = 0x0000000a00000000

	Half        Value = 0x0000000080000000 // 1/2
	OneThird    Value = 0x0000000055555555 // 1/3
	OneQuarter  Value = 0x0000000040000000 // 1/4
	OneFifth    Value = 0x0000000033333333 // 1/5
	OneSixth    Value = 0x000000002aaaaaaa // 1/6
	OneSeventh  Value = 0x0000000024924924 // 1/7
	OneEighth   Value = 0x0000000020000000 // 1/8
	OneNinth    Value = 0x000000001c71c71c // 1/9
	OneTenth    Value = 0x0000000019999999 // 1/10
	OneEleventh Value = 0x000000001745d174 // 1/11
	OneTwelfth  Value = 0x0000000015555555 // 1/12
)

// e and friends.
const (
	E        Value = 0x00000002b7e15162 // e
	InvE     Value = 0x000000005e2d58d8 // 1/e
	SqrtE    Value = 0x00000001a61298e1 // sqrt(e)
	InvSqrtE Value = 0x000000009b4597e3 // 1/sqrt(e)
	Log2E    Value = 0x0000000171547652 // log2(e)
	Log10E   Value = 0x000000006f2dec54 // log10(e)
	Ln2      Value = 0x00000000b17217f7 // ln(2)
	Ln10     Value = 0x000000024d763776 // ln(10)
)

// The pi family.
const (
	Pi            Value = 0x00000003243f6a88 // pi
	PiOver2       Value = 0x00000001921fb544 // pi/2
	PiOver4       Value = 0x00000000c90fdaa2 // pi/4
	InvPi         Value = 0x00000000517cc1b7 // 1/pi
	TwoOverPi     Value = 0x00000000a2f9836e // 2/pi
	TwoOverSqrtPi Value = 0x0000000120dd7504 // 2/sqrt(pi)
	Sqrt2         Value = 0x000000016a09e667 // sqrt(2)
	InvSqrt2      Value = 0x00000000b504f333 // 1/sqrt(2)
)

// Reciprocals of the factorial ratios consumed by the sine and cosine
// series. Successive factorials grow by the product of two consecutive
// integers, so each series term is the previous one scaled by x^2 over one
// of these:
//
//	cos: 2! = 2*1, 4! = 12*2!, 6! = 30*4!, 8! = 56*6!, 10! = 90*8!, 12! = 132*10!
//	sin: 3! = 6*1, 5! = 20*3!, 7! = 42*5!, 9! = 72*7!, 11! = 110*9!, 13! = 156*11!
const (
	inv20  Value = 0x000000000ccccccc // 1/20
	inv30  Value = 0x0000000008888888 // 1/30
	inv42  Value = 0x0000000006186186 // 1/42
	inv56  Value = 0x0000000004924924 // 1/56
	inv72  Value = 0x00000000038e38e3 // 1/72
	inv90  Value = 0x0000000002d82d82 // 1/90
	inv110 Value = 0x000000000253c825 // 1/110
	inv132 Value = 0x0000000001f07c1f // 1/132
	inv156 Value = 0x0000000001a41a41 // 1/156
)
