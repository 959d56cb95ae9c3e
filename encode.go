package jscalar

import (
	"math"
	"reflect"
	"strconv"
)

// AppendJSON appends the JSON representation of v
// to dst. It implements the AppendMarshaler interface
// of github.com/wI2L/jettison.
func (v Value) AppendJSON(dst []byte) ([]byte, error) {
	switch v.kind {
	case True:
		return append(dst, "true"...), nil
	case False:
		return append(dst, "false"...), nil
	case Number:
		return appendFloat(dst, v.num)
	default:
		return append(dst, "null"...), nil
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.AppendJSON(make([]byte, 0, 24))
}

// String implements the fmt.Stringer interface.
func (v Value) String() string {
	b, err := v.AppendJSON(nil)
	if err != nil {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return string(b)
}

func appendFloat(dst []byte, f float64) ([]byte, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return dst, &UnsupportedValueError{
			reflect.ValueOf(f),
			strconv.FormatFloat(f, 'g', -1, 64),
		}
	}
	// Convert as it was an ES6 number to string conversion.
	// This matches most other JSON generators. The following
	// code is taken from the floatEncoder implementation of
	// the encoding/json package of the Go standard library.
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// Clean up e-09 to e-9.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst, nil
}
