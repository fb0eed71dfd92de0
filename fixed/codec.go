package fixed

import (
	"encoding/binary"
	"math"

	"golang.org/x/sys/cpu"
)

// Conversion between Q32.32 and the IEEE-754 double-precision encoding:
// 1 sign bit, 11-bit exponent biased by 1023, 52 explicit mantissa bits plus
// an implicit leading 1. The mapping is deliberately lossy in both
// directions: decoding chops fraction bits below 2^-32 and flushes
// subnormals to zero, encoding chops significant bits beyond the mantissa's
// 53. Magnitudes at or above 2^31 are outside the fixed-point range and
// produce unspecified results, consistent with the no-overflow-checking
// contract.

const (
	expBias  = 1023
	expShift = 52
	expMask  = 0x7ff
	mantMask = 1<<expShift - 1

	// alignBias is the biased exponent at which a double's magnitude,
	// reconstructed with its implicit leading 1 at bit 62, needs no shift
	// to line its binary point up with Q32.32: 1023 + (62 - 32).
	alignBias = expBias + 30
)

// FromFloat64 converts a double to fixed point, chopping excess fraction
// bits. Subnormals and zeros decode to zero.
func FromFloat64(f float64) Value {
	return FromBits(math.Float64bits(f))
}

// Float64 converts v to the nearest-below double. Values whose significant
// bits span no more than the 53-bit mantissa convert exactly.
func (v Value) Float64() float64 {
	return math.Float64frombits(v.Bits())
}

// FromBits decodes a raw IEEE-754 double encoding into fixed point.
//
// The magnitude is rebuilt with the implicit 1 at bit 62 and the 52 mantissa
// bits directly below it, then shifted right by alignBias - exponent to land
// on the Q32.32 binary point. A zero exponent field (zero or subnormal)
// returns zero; the sign bit negates the result.
func FromBits(b uint64) Value {
	exp := int(b>>expShift) & expMask
	if exp == 0 {
		return 0
	}

	m := uint64(1)<<62 | (b&mantMask)<<10
	m >>= uint(alignBias - exp)

	if b>>63 != 0 {
		return Value(m).Neg()
	}
	return Value(m)
}

// Bits encodes v as a raw IEEE-754 double encoding.
//
// The magnitude is normalized by left shifts until its top bit reaches bit
// 63, decrementing the biased exponent from alignBias as it goes; one more
// shift drops the leading 1 (implicit in the encoding) and the next 52 bits
// become the mantissa.
func (v Value) Bits() uint64 {
	if v == 0 {
		return 0
	}

	var sign uint64
	if v < 0 {
		sign = 1 << 63
		v = v.Neg()
	}

	u := uint64(v)
	exp := uint64(alignBias)
	for u&(1<<63) == 0 {
		u <<= 1
		exp--
	}
	u <<= 1 // leading 1 becomes the implicit bit
	exp++

	return sign | exp<<expShift | u>>12
}

// byteOrder is the platform's natural in-memory layout for a double,
// resolved once so the rest of the codec never thinks about endianness.
// The read and append halves of the encoding/binary API live on separate
// interfaces; binary.LittleEndian and binary.BigEndian satisfy both.
var byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
} = binary.LittleEndian

func init() {
	if cpu.IsBigEndian {
		byteOrder = binary.BigEndian
	}
}

// DecodeBytes decodes a double from its native in-memory byte layout, as
// read from foreign structs or wire captures. It is FromBits after the
// platform byte-order fixup.
func DecodeBytes(b []byte) Value {
	return FromBits(byteOrder.Uint64(b))
}

// AppendBytes appends v's double encoding in native byte layout and returns
// the extended slice.
func (v Value) AppendBytes(b []byte) []byte {
	return byteOrder.AppendUint64(b, v.Bits())
}
