package atof

import "math/bits"

// mulU64 computes the full 128-bit product of x and y, returned as
// (lo, hi) such that the product equals hi<<64 | lo. On amd64 and
// arm64 the compiler lowers bits.Mul64 to a single hardware wide
// multiply instruction, so there is no need for a schoolbook 32-bit
// split here; bits.Mul64 is exact across the entire uint64 domain on
// every platform Go supports.
func mulU64(x, y uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(x, y)
	return lo, hi
}

// clzU64 returns the number of leading zero bits of x, or 64 if x == 0.
func clzU64(x uint64) int {
	return bits.LeadingZeros64(x)
}
