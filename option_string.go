// Hand-written String method for Option, in the style of stringer output.

package atof

import "strconv"

func (i Option) String() string {
	switch i {
	case 0:
		return "Option(0)"
	case AllowMultipleLeadingZeroes:
		return "AllowMultipleLeadingZeroes"
	case AllowUnderscores:
		return "AllowUnderscores"
	case DecimalSeparatorIsComma:
		return "DecimalSeparatorIsComma"
	case RejectInfAndNaN:
		return "RejectInfAndNaN"
	default:
		return "Option(" + strconv.FormatUint(uint64(i), 16) + ")"
	}
}
