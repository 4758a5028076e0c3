// Package atoftest provides the shared round-trip and boundary-value
// fixtures used by atof's own tests and available to external
// consumers that want to exercise a compatible parser against the
// same corpus.
package atoftest

import (
	"math"
	"strconv"
)

// Case pairs a decimal literal with the binary64 bit pattern it must
// parse to.
type Case struct {
	Name  string
	Input string
	Want  uint64
}

// Boundaries holds named boundary values: every power of two in
// binary64's exponent range, the subnormal boundaries, DBL_MIN,
// DBL_MAX, and signed zero.
var Boundaries = buildBoundaries()

func buildBoundaries() []Case {
	cases := []Case{
		{"zero", "0", 0},
		{"neg zero", "-0", 1 << 63},
		{"dbl min normal", "2.2250738585072014e-308", math.Float64bits(math.Ldexp(1, -1022))},
		{"dbl max", "1.7976931348623157e+308", math.Float64bits(math.MaxFloat64)},
		{"smallest subnormal", "5e-324", math.Float64bits(math.SmallestNonzeroFloat64)},
		{"one", "1", math.Float64bits(1)},
	}

	for exp := -1074; exp <= 1023; exp++ {
		v := math.Ldexp(1, exp)
		if v == 0 || math.IsInf(v, 0) {
			continue
		}
		cases = append(cases, Case{
			Name:  "2^" + strconv.Itoa(exp),
			Input: strconv.FormatFloat(v, 'g', -1, 64),
			Want:  math.Float64bits(v),
		})
	}
	return cases
}
