package jscalar

// Kind represents the type of a JSON value.
type Kind int

// Kinds of values.
const (
	Null Kind = iota
	False
	True
	Number
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	if k < Null || k > Number {
		return "unknown"
	}
	names := []string{
		"null", "false", "true", "number",
	}
	return names[k]
}

// Value represents a scalar JSON value.
// The zero value is the null value.
type Value struct {
	kind Kind
	num  float64
}

// NullValue returns the null value.
func NullValue() Value { return Value{} }

// BoolValue returns the true or false value.
func BoolValue(b bool) Value {
	if b {
		return Value{kind: True}
	}
	return Value{kind: False}
}

// NumberValue returns a number value holding f.
func NumberValue(f float64) Value {
	return Value{kind: Number, num: f}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Number returns the number held by v.
// It panics if the kind of v is not Number.
func (v Value) Number() float64 {
	if v.kind != Number {
		panic(&ValueError{"jscalar.Value.Number", v.kind})
	}
	return v.num
}

// Bool returns whether v is the true value.
// It panics if the kind of v is neither True
// nor False.
func (v Value) Bool() bool {
	if v.kind != True && v.kind != False {
		panic(&ValueError{"jscalar.Value.Bool", v.kind})
	}
	return v.kind == True
}

// UnmarshalJSON implements the json.Unmarshaler
// interface. The receiver is set to the root value
// of data, or to null if data is rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	if v == nil {
		panic("jscalar: UnmarshalJSON on nil pointer")
	}
	var err error
	*v, err = ParseBytes(data)

	return err
}

// A ValueError occurs when a method is
// called on a Value that doesn't have the
// kind it requires.
type ValueError struct {
	Method string
	Kind   Kind
}

// Error implements the builtin error interface.
func (e *ValueError) Error() string {
	return "jscalar: call of " + e.Method + " on " + e.Kind.String() + " value"
}
