// Package context provides named presets of atof.Option for common
// input dialects, so callers do not have to hand-assemble a bit-or
// value for the common cases.
package context

import "github.com/db47h/atof"

// A Context is a named, reusable Option bundle.
type Context struct {
	opt atof.Option
}

// New returns a Context wrapping opt verbatim.
func New(opt atof.Option) *Context {
	return &Context{opt: opt}
}

// Option returns c's underlying Option value.
func (c *Context) Option() atof.Option {
	return c.opt
}

// With returns a new Context with opt added to c's bundle.
func (c *Context) With(opt atof.Option) *Context {
	return &Context{opt: c.opt | opt}
}

// Without returns a new Context with opt cleared from c's bundle.
func (c *Context) Without(opt atof.Option) *Context {
	return &Context{opt: c.opt &^ opt}
}

// Parse parses b using c's Option bundle.
func (c *Context) Parse(b []byte) atof.Result {
	return atof.Parse(b, c.opt)
}

// ParseFloat parses s using c's Option bundle.
func (c *Context) ParseFloat(s string) (float64, error) {
	return atof.ParseFloat(s, c.opt)
}

// Strict rejects multiple leading zeroes, underscores, and inf/nan
// literals, and uses '.' as the decimal separator: the narrowest
// reading of a decimal literal.
var Strict = New(atof.RejectInfAndNaN)

// Go matches the literal forms accepted by Go's own float literals
// and strconv.ParseFloat: underscores allowed as digit-group
// separators, '.' as the decimal separator, inf/nan accepted.
var Go = New(atof.AllowUnderscores)

// Lenient accepts the widest input this package recognizes: multiple
// leading zeroes, underscores, and inf/nan.
var Lenient = New(atof.AllowMultipleLeadingZeroes | atof.AllowUnderscores)

// Locale returns a Context like Lenient but using ',' as the decimal
// separator, for locales where ',' is conventional.
func Locale() *Context {
	return New(atof.AllowMultipleLeadingZeroes | atof.AllowUnderscores | atof.DecimalSeparatorIsComma)
}
