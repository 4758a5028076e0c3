package atof

import "math/bits"

// eiselLemireGiveUp is returned by eiselLemire when the 128-bit table
// approximation cannot resolve rounding; the caller must fall back to
// the HPD slow path.
const eiselLemireGiveUp = -1

// eiselLemire implements the Eisel-Lemire algorithm (spec.md §4.4):
// given a nonzero 64-bit mantissa and a decimal exponent in
// [minExp10, maxExp10], it returns the packed (biased exponent,
// mantissa) bit pattern of the correctly rounded unsigned binary64, or
// eiselLemireGiveUp if the table's precision is insufficient to
// resolve rounding (the caller must then use the HPD fallback).
//
// The multiplication and carry-propagation order mirror
// original_source/wuffs_eisel_lemire.c exactly, including the
// three-part truncation-recovery check in step 4: a port that
// simplifies (merged_lo + 1) == 0 to "merged_lo is large" instead of
// the precise all-ones test fails on cases like 5.9604644775390625e-8.
func eiselLemire(man uint64, exp10 int) int64 {
	if man == 0 || exp10 < minExp10 || exp10 > maxExp10 {
		return eiselLemireGiveUp
	}

	clz := clzU64(man)
	man <<= uint(clz)

	retExp2 := uint64(int64(217706*exp10)>>16+1087) - uint64(clz)

	entry := &powersOf10[exp10-minExp10]
	hi1, lo1 := entry[0], entry[1]

	xLo, xHi := mulU64(man, hi1)

	if xHi&0x1FF == 0x1FF && xLo+man < xLo {
		yLo, yHi := mulU64(man, lo1)
		mergedLo, carry := bits.Add64(xLo, yHi, 0)
		mergedHi := xHi + carry
		if mergedHi&0x1FF == 0x1FF && mergedLo+1 == 0 && yLo+man < yLo {
			return eiselLemireGiveUp
		}
		xHi, xLo = mergedHi, mergedLo
	}

	msb := xHi >> 63
	retMantissa := xHi >> (msb + 9)
	retExp2 -= 1 - msb

	if xLo == 0 && xHi&0x1FF == 0 && retMantissa&3 == 1 {
		return eiselLemireGiveUp
	}

	retMantissa = (retMantissa + (retMantissa & 1)) >> 1
	if retMantissa>>53 != 0 {
		retMantissa >>= 1
		retExp2++
	}

	retMantissa &= f64MantMask
	return int64(retMantissa | retExp2<<f64MantBits)
}

// eiselLemireChecked runs eiselLemire once, or twice (with man and
// man+1) when digitCount indicates the mantissa may have lost
// precision when truncated to 64 bits (more than 19 significant
// digits were present in the source text). It only accepts the
// result when both runs agree, per spec.md §4.4's caller
// responsibilities.
func eiselLemireChecked(man uint64, exp10 int, digitCount int) (bits64 uint64, ok bool) {
	r := eiselLemire(man, exp10)
	if r == eiselLemireGiveUp {
		return 0, false
	}
	if digitCount <= 19 {
		return uint64(r), true
	}
	r2 := eiselLemire(man+1, exp10)
	if r2 == eiselLemireGiveUp || r2 != r {
		return 0, false
	}
	return uint64(r), true
}
