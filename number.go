package jscalar

import "strconv"

func isDigit(c byte) bool      { return '0' <= c && c <= '9' }
func isDigit1to9(c byte) bool  { return '1' <= c && c <= '9' }
func isExpMarker(c byte) bool  { return c == 'e' || c == 'E' }
func isWhitespace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func skipDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// validateNumber checks that s starts with a JSON
// number token followed by either the end of the
// input or a whitespace character. It returns the
// length of the prefix of s that holds the numeric
// value to convert, which may be shorter than the
// token when the exponent has no digits.
//
// A token followed by any other character is not
// a grammar error but a trailing content one, and
// is reported as such.
func validateNumber(s string, strictExp bool) (int, error) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		// A leading zero can't be followed
		// by other integer digits.
		return validateTail(s, i+1, strictExp)
	case i < len(s) && isDigit1to9(s[i]):
		return validateInt(s, i, strictExp)
	default:
		return 0, ErrInvalidValue
	}
}

// validateInt scans the integer part of a number
// that starts with a non-zero digit at s[i].
func validateInt(s string, i int, strictExp bool) (int, error) {
	expect(s, i, isDigit1to9)
	return validateTail(s, skipDigits(s, i+1), strictExp)
}

// validateTail dispatches on the character that
// follows the integer part of a number.
func validateTail(s string, i int, strictExp bool) (int, error) {
	if i < len(s) {
		switch c := s[i]; {
		case c == '.':
			return validateFrac(s, i, strictExp)
		case isExpMarker(c):
			return validateExp(s, i, strictExp)
		}
	}
	return terminate(s, i, i)
}

// validateFrac scans the fractional part of a
// number, starting at the decimal point s[i].
// At least one digit must follow the point.
func validateFrac(s string, i int, strictExp bool) (int, error) {
	expect(s, i, func(c byte) bool { return c == '.' })
	i++
	if i == len(s) || !isDigit(s[i]) {
		return 0, ErrInvalidValue
	}
	i = skipDigits(s, i+1)
	if i < len(s) && isExpMarker(s[i]) {
		return validateExp(s, i, strictExp)
	}
	return terminate(s, i, i)
}

// validateExp scans the exponent of a number,
// starting at the marker s[i]. Unless strictExp
// is set, the digits of the exponent are optional,
// in which case the convertible part of the number
// stops before the marker.
func validateExp(s string, i int, strictExp bool) (int, error) {
	expect(s, i, isExpMarker)
	mark := i
	i++
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := skipDigits(s, i)
	if j == i {
		if strictExp {
			return 0, ErrInvalidValue
		}
		return terminate(s, j, mark)
	}
	return terminate(s, j, j)
}

// terminate checks that the token ending at s[i]
// is followed by the end of the input or by a
// whitespace, and returns n on success.
func terminate(s string, i, n int) (int, error) {
	if i == len(s) || isWhitespace(s[i]) {
		return n, nil
	}
	return 0, ErrRootNotSingular
}

// expect panics if the byte at s[i] doesn't satisfy
// fn. The callers of the scanners already checked
// it, so a failure is a bug in the package.
func expect(s string, i int, fn func(byte) bool) {
	if i >= len(s) || !fn(s[i]) {
		panic("jscalar: unexpected character at offset " + strconv.Itoa(i))
	}
}

// isValidNumber returns whether s is a valid JSON
// number literal, with nothing before or after it.
func isValidNumber(s string) bool {
	// This function implements the JSON numbers grammar.
	// See https://tools.ietf.org/html/rfc7159#section-6
	// and https://www.json.org/img/number.png.
	n, err := validateNumber(s, true)
	return err == nil && n == len(s)
}
