package atof

import "math"

// binary64 layout constants.
const (
	f64MantBits = 52
	f64ExpBits  = 11
	f64Bias     = 1023
	f64ExpMask  = uint64(1)<<f64ExpBits - 1
	f64MantMask = uint64(1)<<f64MantBits - 1

	infBits = f64ExpMask << f64MantBits          // +Inf, unsigned
	nanBits = uint64(0x7FFF_FFFF_FFFF_FFFF)       // canonical quiet NaN payload used by SpecialParser
)

// f64FromBits reinterprets bits as an IEEE 754 binary64, with no
// intermediate integer-to-float conversion: sign in bit 63, the 11-bit
// biased exponent in bits 62..52, and the 52-bit mantissa in bits
// 51..0. math.Float64frombits is exactly this primitive — a pure bit
// reinterpretation — so there is no ecosystem library that does this
// job any more directly; reimplementing it by hand would only
// reintroduce the float-synthesis bugs this function exists to avoid.
func f64FromBits(bits uint64) float64 {
	return math.Float64frombits(bits)
}

// f64Bits is f64FromBits's inverse, used by tests to check exact bit
// patterns without relying on float equality.
func f64Bits(v float64) uint64 {
	return math.Float64bits(v)
}
