package atof

// exactPowersOf10 holds 10**0 .. 10**22: the largest range of integer
// powers of ten exactly representable as a binary64. The lexer's
// fast-fast path uses this table to compute man * 10**exp10 (or
// man / 10**exp10 for negative exp10) by a single binary64
// multiply/divide when both man and exp10 are small enough that the
// result is guaranteed exact.
var exactPowersOf10 = [23]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
	1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// hpdShiftTable maps a decimal_point magnitude n (1..18) to the number
// of bits HPDToF64's Simple Decimal Conversion driver shifts the HPD
// by in one step while walking decimal_point down to {0,1} (or up to
// 0) a chunk at a time; values of n outside the table are clamped to a
// shift of 60 bits. P[n] is chosen so that shifting an HPD of up to
// 800 digits by P[n] bits changes decimal_point by at most n places.
var hpdShiftTable = [19]uint{
	0, 3, 6, 9, 13, 16, 19, 23, 26, 29, 33, 36, 39, 43, 46, 49, 53, 56, 59,
}

// maxShiftBits bounds a single left/right small shift step.
const maxShiftBits = 60

// shiftForDecimalPoint returns the shift (bits) used for one chunk of
// the right-shift walk (decimal_point > 1 toward {0,1}), for a
// distance of n decimal places.
func shiftForDecimalPoint(n int) uint {
	if n <= 0 {
		return 1
	}
	if n < len(hpdShiftTable) {
		return hpdShiftTable[n]
	}
	return maxShiftBits
}

// shiftForNegDecimalPoint returns the shift (bits) used for one chunk
// of the left-shift walk (decimal_point < 0 toward {0,1}), for a
// distance of n decimal places: hpdShiftTable[n]+1 in range, or
// exactly maxShiftBits when out of the table (not maxShiftBits+1 —
// hpdLshift has no entry beyond maxShiftBits).
func shiftForNegDecimalPoint(n int) uint {
	if n <= 0 {
		return 1
	}
	if n < len(hpdShiftTable) {
		return hpdShiftTable[n] + 1
	}
	return maxShiftBits
}
