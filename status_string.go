// Hand-written String method for Status, in the style of stringer output.

package atof

import "strconv"

func (i Status) String() string {
	switch i {
	case OK:
		return "OK"
	case BadArgument:
		return "BadArgument"
	default:
		return "Status(" + strconv.Itoa(int(i)) + ")"
	}
}
