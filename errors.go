package atof

import "github.com/pkg/errors"

// ErrSyntax is the single error kind this package ever returns: the
// input was not a recognizable decimal, inf/nan literal, or was
// rejected under the Options in effect. Wrap/compare with errors.Is.
var ErrSyntax = errors.New("atof: bad argument")

// NumError reports a failed conversion, in the shape of the standard
// library's strconv.NumError, so callers already handling strconv
// errors can adapt with minimal friction.
type NumError struct {
	Func  string // the failing function, e.g. "ParseFloat"
	Input string // the input that could not be converted
	Err   error  // always ErrSyntax, or a wrapped ErrSyntax carrying a diagnostic
}

func (e *NumError) Error() string {
	return "atof." + e.Func + ": parsing " + quoteInput(e.Input) + ": " + e.Err.Error()
}

// Unwrap enables errors.Is(err, ErrSyntax).
func (e *NumError) Unwrap() error { return e.Err }

func quoteInput(s string) string {
	const maxLen = 64
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return "\"" + s + "\""
}

// syntaxError builds the *NumError a public entry point returns for a
// rejected input, annotating the internal diagnostic (if any) onto the
// single ErrSyntax taxonomy.
func syntaxError(fn string, input []byte, why string) *NumError {
	err := error(ErrSyntax)
	if why != "" {
		err = errors.Wrap(ErrSyntax, why)
	}
	return &NumError{Func: fn, Input: string(input), Err: err}
}
