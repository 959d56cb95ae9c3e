package jscalar

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidNumber(t *testing.T) {
	// Taken from https://golang.org/src/encoding/json/number_test.go
	// Regexp from: https://stackoverflow.com/a/13340826
	var re = regexp.MustCompile(
		`^-?(?:0|[1-9]\d*)(?:\.\d+)?(?:[eE][+-]?\d+)?$`,
	)
	valid := []string{
		"0",
		"-0",
		"1",
		"-1",
		"0.1",
		"-0.1",
		"1234",
		"-1234",
		"12.34",
		"-12.34",
		"12E0",
		"12E1",
		"12e34",
		"12E-0",
		"12e+1",
		"12e-34",
		"-12E0",
		"-12E1",
		"-12e34",
		"-12E-0",
		"-12e+1",
		"-12e-34",
		"1.2E0",
		"1.2E1",
		"1.2e34",
		"1.2E-0",
		"1.2e+1",
		"1.2e-34",
		"-1.2E0",
		"-1.2E1",
		"-1.2e34",
		"-1.2E-0",
		"-1.2e+1",
		"-1.2e-34",
		"0E0",
		"0E1",
		"0e34",
		"0E-0",
		"0e+1",
		"0e-34",
		"-0E0",
		"-0E1",
		"-0e34",
		"-0E-0",
		"-0e+1",
		"-0e-34",
	}
	for _, tt := range valid {
		if !isValidNumber(tt) {
			t.Errorf("%s should be valid", tt)
		}
		if !re.MatchString(tt) {
			t.Errorf("%s should be valid but regexp does not match", tt)
		}
	}
	invalid := []string{
		"",
		" ",
		"1 ",
		" 1",
		"-",
		"+1",
		".5",
		"invalid",
		"1.0.1",
		"1..1",
		"-1-2",
		"012a42",
		"01.2",
		"012",
		"12E12.12",
		"1e2e3",
		"1e+-2",
		"1e--23",
		"1e",
		"e1",
		"1e+",
		"1ea",
		"1a",
		"1.a",
		"1.",
		"01",
		"1.e1",
	}
	for _, tt := range invalid {
		if isValidNumber(tt) {
			t.Errorf("%s should be invalid", tt)
		}
		if re.MatchString(tt) {
			t.Errorf("%s should be invalid but matches regexp", tt)
		}
	}
}

func TestValidateNumber(t *testing.T) {
	testdata := []struct {
		in     string
		strict bool
		n      int
		err    error
	}{
		{in: "0", n: 1},
		{in: "-0", n: 2},
		{in: "0 ", n: 1},
		{in: "123\t", n: 3},
		{in: "-123\r\n", n: 4},
		{in: "1.5", n: 3},
		{in: "0.25 1", n: 4},
		{in: "1.5e-3", n: 6},
		{in: "1E+10", n: 5},
		{in: "0e0", n: 3},
		// Exponent without digits.
		{in: "1e", n: 1},
		{in: "1e+", n: 1},
		{in: "1E- ", n: 1},
		{in: "1.5e ", n: 3},
		{in: "1e", strict: true, err: ErrInvalidValue},
		{in: "1e+ ", strict: true, err: ErrInvalidValue},
		{in: "1.5E", strict: true, err: ErrInvalidValue},
		{in: "1e5", strict: true, n: 3},
		// Grammar errors.
		{in: "", err: ErrInvalidValue},
		{in: "-", err: ErrInvalidValue},
		{in: "-a", err: ErrInvalidValue},
		{in: "+1", err: ErrInvalidValue},
		{in: ".5", err: ErrInvalidValue},
		{in: "1.", err: ErrInvalidValue},
		{in: "1. ", err: ErrInvalidValue},
		{in: "1.x", err: ErrInvalidValue},
		{in: "-.5", err: ErrInvalidValue},
		// Trailing content.
		{in: "01", err: ErrRootNotSingular},
		{in: "1x", err: ErrRootNotSingular},
		{in: "1ex", err: ErrRootNotSingular},
		{in: "1e5x", err: ErrRootNotSingular},
		{in: "1.5.", err: ErrRootNotSingular},
		{in: "1,2", err: ErrRootNotSingular},
		{in: "0x10", err: ErrRootNotSingular},
		{in: "1\v", err: ErrRootNotSingular},
	}
	for _, tt := range testdata {
		n, err := validateNumber(tt.in, tt.strict)
		if err != tt.err {
			t.Errorf("validateNumber(%q, %t): got error %v, want %v", tt.in, tt.strict, err, tt.err)
			continue
		}
		if n != tt.n {
			t.Errorf("validateNumber(%q, %t): got length %d, want %d", tt.in, tt.strict, n, tt.n)
		}
	}
}

func TestCharacterClasses(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)
		assert.Equal(t, b >= '0' && b <= '9', isDigit(b), "isDigit(%q)", b)
		assert.Equal(t, b >= '1' && b <= '9', isDigit1to9(b), "isDigit1to9(%q)", b)
	}
	for _, b := range []byte(" \t\n\r") {
		assert.True(t, isWhitespace(b), "isWhitespace(%q)", b)
	}
	for _, b := range []byte("\v\f\x00a0") {
		assert.False(t, isWhitespace(b), "isWhitespace(%q)", b)
	}
}

func TestScannerPreconditions(t *testing.T) {
	assert.Panics(t, func() { _, _ = validateInt("0", 0, false) })
	assert.Panics(t, func() { _, _ = validateFrac("1", 0, false) })
	assert.Panics(t, func() { _, _ = validateExp("", 0, false) })
}
