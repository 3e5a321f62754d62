package runtime

import "fmt"

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindBool
	KindString
	KindUndefined
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindUndefined:
		return "undefined"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. Every scalar a
// program can compute is a number, a boolean, or a string; Undefined stands
// in for a variable that was never assigned.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

// NumberValue is the only numeric type: integer constants are promoted to it
// on evaluation, so arithmetic is uniformly double-precision.
type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

// UndefinedValue is what reading an unassigned (or undeclared) variable
// yields. It coerces to zero and to false so evaluation never crashes.
type UndefinedValue struct{}

func (UndefinedValue) Kind() Kind { return KindUndefined }

//-----------------------------------------------------------------------------
// Coercions
//-----------------------------------------------------------------------------

// AsNumber reads v as a number. Undefined and non-numeric values read as 0.
func AsNumber(v Value) float64 {
	if n, ok := v.(NumberValue); ok {
		return n.Val
	}
	return 0
}

// AsBool reads v as a boolean. A number counts as true when nonzero;
// undefined and string values count as false.
func AsBool(v Value) bool {
	switch b := v.(type) {
	case BoolValue:
		return b.Val
	case NumberValue:
		return b.Val != 0
	default:
		return false
	}
}

// AsString reads v as text. Non-string values read as the empty string.
func AsString(v Value) string {
	if s, ok := v.(StringValue); ok {
		return s.Val
	}
	return ""
}
