package jscalar

import (
	"errors"
	"math"
	"strconv"
)

// decoder holds the state of a single parse.
// The offset only ever moves forward, and a
// decoder isn't reused once decode returned.
type decoder struct {
	data string
	off  int
	opts decOpts
}

// decode parses the root value of the input,
// which must be the only content besides the
// surrounding whitespaces. Any error leaves the
// returned value null.
func (d *decoder) decode() (Value, error) {
	d.skipWhitespace()

	v, err := d.value()
	if err != nil {
		return Value{}, err
	}
	d.skipWhitespace()

	if d.off != len(d.data) {
		return Value{}, ErrRootNotSingular
	}
	return v, nil
}

func (d *decoder) skipWhitespace() {
	for d.off < len(d.data) && isWhitespace(d.data[d.off]) {
		d.off++
	}
}

// value chooses how to parse the value that
// starts at the current offset by looking at
// its first character.
func (d *decoder) value() (Value, error) {
	if d.off == len(d.data) {
		return Value{}, ErrExpectValue
	}
	switch d.data[d.off] {
	case 't':
		return d.literal("true", True)
	case 'f':
		return d.literal("false", False)
	case 'n':
		return d.literal("null", Null)
	default:
		return d.number()
	}
}

// literal matches lit at the current offset.
// The first character must already be known
// to be equal to the first one of lit.
func (d *decoder) literal(lit string, k Kind) (Value, error) {
	expect(d.data, d.off, func(c byte) bool { return c == lit[0] })

	i := d.off + 1
	for j := 1; j < len(lit); j++ {
		if i == len(d.data) || d.data[i] != lit[j] {
			return Value{}, ErrInvalidValue
		}
		i++
	}
	d.off = i

	return Value{kind: k}, nil
}

// number validates the number that starts at
// the current offset, then converts it.
func (d *decoder) number() (Value, error) {
	s := d.data[d.off:]

	n, err := validateNumber(s, d.opts.flags.has(strictExponent))
	if err != nil {
		return Value{}, err
	}
	if n == 0 {
		return Value{}, ErrInvalidValue
	}
	f, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return Value{}, ErrInvalidValue
		}
		// Out of range numbers are rounded to
		// the nearest infinity, or to zero.
		if math.IsInf(f, 0) && d.opts.flags.has(rejectOverflow) {
			return Value{}, ErrNumberTooBig
		}
	}
	d.off += n

	return Value{kind: Number, num: f}, nil
}
