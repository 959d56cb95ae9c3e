package jscalar

// An Option overrides the default parsing
// behavior of the ParseOpts function.
type Option func(*decOpts)

type bitmask uint64

func (b *bitmask) set(f bitmask)      { *b |= f }
func (b *bitmask) has(f bitmask) bool { return *b&f != 0 }

const (
	strictExponent bitmask = 1 << iota
	rejectOverflow
)

type decOpts struct {
	flags bitmask
}

func defaultDecOpts() decOpts {
	return decOpts{}
}

func (do *decOpts) apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(do)
		}
	}
}

// StrictExponent configures the parser to reject
// a number whose exponent marker isn't followed
// by at least one digit, such as "1e" or "2E+",
// with an ErrInvalidValue error.
//
// By default, the digits are optional: the number
// converted stops before the marker, which is then
// reported as trailing content.
func StrictExponent() Option {
	return func(o *decOpts) { o.flags.set(strictExponent) }
}

// RejectOverflow configures the parser to return
// ErrNumberTooBig for a number whose magnitude
// overflows a float64, instead of parsing it as
// positive or negative infinity.
func RejectOverflow() Option {
	return func(o *decOpts) { o.flags.set(rejectOverflow) }
}
