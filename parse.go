package atof

// Parse converts b, a decimal (or inf/nan) literal, to the nearest
// binary64, honoring opt. It tries the fast lexer and Eisel-Lemire
// first, falls back to the fixed-precision HPD path, and finally
// the inf/nan special-value recognizer, per the dispatcher in
// spec.md §4.10. Parse never panics and never blocks; it allocates at
// most one stack-sized hpd scratch value for the duration of the call.
func Parse(b []byte, opt Option) Result {
	r, _ := parse(b, opt)
	return r
}

// parse is Parse's implementation, additionally reporting why on a
// BadArgument result: the failing stage's diagnostic, so that
// ParseFloat can annotate its *NumError with something more useful
// than the bare ErrSyntax sentinel.
func parse(b []byte, opt Option) (r Result, why string) {
	if r, handled := tryFastLexer(b, opt); handled {
		return r, ""
	}

	var h hpd
	if err := h.parse(b, opt); err == nil {
		r, err := hpdToF64(&h, opt)
		if err != nil {
			return bad(), err.Error()
		}
		return r, ""
	} else if r := parseSpecial(b, opt); r.Status == OK {
		return r, ""
	} else {
		return bad(), err.Error()
	}
}

// ParseFloat is the string-based convenience wrapper around Parse,
// shaped after strconv.ParseFloat: it returns the converted value, or
// a *NumError wrapping ErrSyntax on failure.
func ParseFloat(s string, opt Option) (float64, error) {
	b := []byte(s)
	r, why := parse(b, opt)
	if r.Status != OK {
		return 0, syntaxError("ParseFloat", b, why)
	}
	return r.Value, nil
}
