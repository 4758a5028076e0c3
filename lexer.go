package atof

// fastLexerMaxLen bounds the inputs the fast lexer will attempt;
// anything at or beyond this length bails to the slow path
// unconditionally (spec.md §4.3).
const fastLexerMaxLen = 256

// tryFastLexer recognizes `[-]? ("0" | [1-9][0-9]*) (SEP [0-9]+)?
// ([eE][+-]?[0-9]+)?` in a single pass and, on success, resolves it to
// a Result via the fast-fast exact-float path or Eisel-Lemire. It
// reports handled=false on any bail condition (leading '+', any
// underscore, malformed leading zeroes, an out-of-range exponent,
// trailing bytes, or a mantissa Eisel-Lemire can't resolve), in which
// case the caller must fall back to the HPD slow path; the input is
// left unexamined for the caller's purposes.
func tryFastLexer(b []byte, opt Option) (Result, bool) {
	man, exp10, negative, ok1 := scanFast(b, opt)
	if !ok1 {
		return Result{}, false
	}

	if man == 0 {
		return signedZero(negative), true
	}

	if exp10 >= -22 && exp10 <= 22 && man>>53 == 0 {
		v := float64(man)
		if exp10 >= 0 {
			v *= exactPowersOf10[exp10]
		} else {
			v /= exactPowersOf10[-exp10]
		}
		if negative {
			v = -v
		}
		return ok(v), true
	}

	r := eiselLemire(man, exp10)
	if r == eiselLemireGiveUp {
		return Result{}, false
	}
	return ok(f64FromBits(uint64(r) | signBit(negative))), true
}

// scanFast performs the single-pass recognition step of §4.3, with no
// knowledge of Eisel-Lemire or the fast-fast path.
func scanFast(b []byte, opt Option) (man uint64, exp10 int, negative bool, ok bool) {
	n := len(b)
	if n == 0 || n >= fastLexerMaxLen {
		return 0, 0, false, false
	}

	sep := byte('.')
	if opt.Has(DecimalSeparatorIsComma) {
		sep = ','
	}

	i := 0
	if b[i] == '-' {
		negative = true
		i++
	}
	if i >= n || b[i] == '+' || b[i] == '_' {
		return 0, 0, false, false
	}

	sigDigits := 0
	sawLeadingZero := false

	switch {
	case b[i] == '0':
		sawLeadingZero = true
		i++
		if i < n && isDigit(b[i]) {
			return 0, 0, false, false
		}
	case isDigit(b[i]):
		for i < n && isDigit(b[i]) {
			man = man*10 + uint64(b[i]-'0')
			i++
			sigDigits++
		}
	default:
		return 0, 0, false, false
	}

	sawDigits := sigDigits > 0 || sawLeadingZero
	exp10 = 0

	if i < n && b[i] == sep {
		i++
		fracStart := i
		for i < n && isDigit(b[i]) {
			man = man*10 + uint64(b[i]-'0')
			i++
		}
		fracDigits := i - fracStart
		if fracDigits == 0 {
			return 0, 0, false, false
		}
		sigDigits += fracDigits
		exp10 -= fracDigits
		sawDigits = true
	}

	if !sawDigits || sigDigits > 19 {
		return 0, 0, false, false
	}

	explicitExp := 0
	if i < n && (b[i] == 'e' || b[i] == 'E') {
		i++
		expNeg := false
		if i < n && (b[i] == '+' || b[i] == '-') {
			expNeg = b[i] == '-'
			i++
		}
		expStart := i
		expVal := 0
		for i < n && isDigit(b[i]) {
			if expVal <= 0x1000000 {
				expVal = expVal*10 + int(b[i]-'0')
			}
			i++
		}
		if i == expStart || expVal > 0x1000000 {
			return 0, 0, false, false
		}
		if expNeg {
			expVal = -expVal
		}
		explicitExp = expVal
		exp10 += expVal
	}

	if i != n {
		return 0, 0, false, false
	}

	// "0e99" must normalize through the slow path rather than be
	// treated as a trivial signed zero with a discarded exponent; "0",
	// "0.0" and "0e0" carry no nonzero explicit exponent and are fine.
	if man == 0 && explicitExp != 0 {
		return 0, 0, false, false
	}

	if exp10 < minExp10 || exp10 > maxExp10 {
		return 0, 0, false, false
	}

	return man, exp10, negative, true
}
