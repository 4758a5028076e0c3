// Copyright 2024 The atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package atof converts a decimal text representation of a number into the
IEEE 754 binary64 value that is its correctly rounded (round-to-nearest,
ties-to-even) conversion.

Parse is the sole entry point:

    r := atof.Parse([]byte("3.14159e100"), 0)
    if r.Status != atof.OK {
        // r.Status wraps a single error kind: bad argument.
    }
    x := r.Value

Parse never allocates on the fast path. Most inputs are handled by a
single-pass lexer feeding the Eisel-Lemire algorithm, which multiplies the
mantissa by a precomputed 128-bit approximation of the relevant power of
ten and inspects the product to decide rounding (see eisellemire.go).
Inputs the lexer does not accept (a leading '+', underscores, more than 19
significant digits, an exponent outside the table) and inputs where that
approximation is insufficient to resolve rounding fall back to a
fixed-precision decimal accumulator (HPD, see
hpd.go) that holds up to 800 significant digits and is shifted by small
powers of two until the value lies in [1,2), at which point its leading
53 bits become the binary64 mantissa.

Option is a bit-or value, not a struct of bools or a map, so that
callers can compose and pass it by value:

    r := atof.Parse(b, atof.AllowUnderscores|atof.DecimalSeparatorIsComma)

Special values ("inf", "infinity", "nan", case-insensitive, optionally
signed) are recognized by a dedicated scanner once both the fast path and
the decimal fallback have declined the input; see special.go.

atof is pure: there is no shared mutable state beyond the immutable
lookup tables, and no invocation blocks, allocates heap memory for
results, or retains data across calls.
*/
package atof
