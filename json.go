// Package jscalar implements a strict parser for JSON
// texts whose root value is a scalar: one of the
// literals true, false and null, or a number.
//
// Numbers are checked against the grammar of RFC 8259
// before being converted, so that forms accepted by
// strconv.ParseFloat but not by JSON, such as ".5",
// "1." or "+1", are rejected.
package jscalar

import (
	"errors"
	"fmt"
	"reflect"
)

// ParseResult represents the outcome of a parse.
type ParseResult int

// Parse results.
const (
	OK ParseResult = iota
	ExpectValue
	InvalidValue
	RootNotSingular
	NumberTooBig
)

// String implements the fmt.Stringer interface.
func (r ParseResult) String() string {
	if r < OK || r > NumberTooBig {
		return "unknown"
	}
	names := []string{
		"ok",
		"expect value",
		"invalid value",
		"root not singular",
		"number too big",
	}
	return names[r]
}

// A SyntaxError describes why a JSON text was
// rejected. The Result field never equals OK.
type SyntaxError struct {
	msg    string
	Result ParseResult
}

// Error implements the builtin error interface.
func (e *SyntaxError) Error() string { return e.msg }

// Is reports whether target is a SyntaxError with
// the same result, so that errors.Is matches the
// sentinels of the package.
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	return ok && t.Result == e.Result
}

func newSyntaxError(r ParseResult) *SyntaxError {
	return &SyntaxError{
		msg:    "json: " + r.String(),
		Result: r,
	}
}

// Errors returned by the parse functions.
var (
	// ErrExpectValue is returned when the input is
	// empty or contains only whitespace.
	ErrExpectValue = newSyntaxError(ExpectValue)

	// ErrInvalidValue is returned for a malformed
	// literal or number.
	ErrInvalidValue = newSyntaxError(InvalidValue)

	// ErrRootNotSingular is returned when a value is
	// followed by non-whitespace content.
	ErrRootNotSingular = newSyntaxError(RootNotSingular)

	// ErrNumberTooBig is returned when a number does
	// not fit a float64 and the RejectOverflow option
	// is set.
	ErrNumberTooBig = newSyntaxError(NumberTooBig)
)

// ResultOf returns the parse result carried by err.
// A nil error maps to OK, and an error that doesn't
// come from this package maps to InvalidValue.
func ResultOf(err error) ParseResult {
	if err == nil {
		return OK
	}
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Result
	}
	return InvalidValue
}

// UnsupportedValueError is the error returned
// when attempting to encode a number that has
// no JSON representation, such as NaN.
type UnsupportedValueError struct {
	Value reflect.Value
	Str   string
}

// Error implements the builtin error interface.
func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("json: unsupported value: %s", e.Str)
}

// Parse parses the JSON text and returns its root
// value. On failure, the value returned is null and
// the error is one of the Err* sentinels of the
// package.
func Parse(text string) (Value, error) {
	return parse(text, defaultDecOpts())
}

// ParseBytes is similar to Parse, but takes its
// input as a byte slice. The slice isn't copied,
// and must not be modified during the call.
func ParseBytes(b []byte) (Value, error) {
	return parse(b2s(b), defaultDecOpts())
}

// ParseOpts is similar to Parse, but also accepts
// a list of options to configure the parsing behavior.
func ParseOpts(text string, opts ...Option) (Value, error) {
	do := defaultDecOpts()
	(&do).apply(opts...)

	return parse(text, do)
}

// Valid reports whether text is a JSON text that
// Parse accepts.
func Valid(text string) bool {
	_, err := parse(text, defaultDecOpts())
	return err == nil
}

// ValidNumber reports whether s is a single JSON
// number, without surrounding whitespace.
func ValidNumber(s string) bool {
	return isValidNumber(s)
}

func parse(text string, opts decOpts) (Value, error) {
	d := decoder{data: text, opts: opts}
	return d.decode()
}
