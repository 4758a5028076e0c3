package atof

// parseSpecial recognizes the inf/nan literal forms (spec.md §4.9):
// optional sign, then case-insensitive "inf" optionally followed by
// "inity", or case-insensitive "nan"; nothing else may trail except
// underscores when AllowUnderscores is set. It is the last stage of
// the dispatcher, tried only after both the fast lexer and the HPD
// parser have failed.
func parseSpecial(b []byte, opt Option) Result {
	if opt.Has(RejectInfAndNaN) {
		return bad()
	}

	underscores := opt.Has(AllowUnderscores)
	i, n := 0, len(b)

	skipUnderscores := func() {
		if !underscores {
			return
		}
		for i < n && b[i] == '_' {
			i++
		}
	}

	skipUnderscores()

	neg := false
	if i < n && (b[i] == '+' || b[i] == '-') {
		neg = b[i] == '-'
		i++
		skipUnderscores()
	}

	rest := b[i:]
	if underscores {
		rest = stripUnderscores(rest)
	}

	switch {
	case equalFoldASCII(rest, "nan"):
		return ok(f64FromBits(nanBits | signBit(neg)))
	case equalFoldASCII(rest, "inf"), equalFoldASCII(rest, "infinity"):
		return ok(f64FromBits(infBits | signBit(neg)))
	default:
		return bad()
	}
}

// stripUnderscores removes every '_' byte from b, allocating only when
// at least one is present.
func stripUnderscores(b []byte) []byte {
	has := false
	for _, c := range b {
		if c == '_' {
			has = true
			break
		}
	}
	if !has {
		return b
	}
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c != '_' {
			out = append(out, c)
		}
	}
	return out
}

// equalFoldASCII reports whether b equals the ASCII literal s, ignoring case.
func equalFoldASCII(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := b[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != s[i] {
			return false
		}
	}
	return true
}
