package atof

//go:generate stringer -type=Option

// Option is a bit-or configuration value for Parse. The zero value
// selects strict parsing: no multiple leading zeroes, no underscores,
// '.' as the decimal separator, and inf/nan literals accepted.
type Option uint32

const (
	// AllowMultipleLeadingZeroes permits mantissas such as "00", "0644"
	// and "00.7" that would otherwise be rejected.
	AllowMultipleLeadingZeroes Option = 0x01
	// AllowUnderscores permits '_' as a digit-group separator, around
	// the sign, and within the exponent. A leading, trailing, or
	// adjacent-only underscore is allowed; an underscore cannot be the
	// last character of a region expecting a digit.
	AllowUnderscores Option = 0x02
	// DecimalSeparatorIsComma selects ',' instead of '.' as the radix
	// point.
	DecimalSeparatorIsComma Option = 0x10
	// RejectInfAndNaN refuses the literal spellings of infinity and NaN,
	// and also refuses any finite input whose magnitude would overflow
	// to ±Inf.
	RejectInfAndNaN Option = 0x20
)

// Has reports whether all bits of opt are set in o.
func (o Option) Has(opt Option) bool {
	return o&opt == opt
}
