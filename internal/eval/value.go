package eval

import (
	"strings"

	"recalc/internal/units"
)

// ValueKind discriminates the evaluation results.
type ValueKind uint8

const (
	// ValueScalar is a single quantity (plain number or number with unit).
	ValueScalar ValueKind = iota
	// ValueArray is an ordered list of quantities.
	ValueArray
)

// Value is the result of evaluating an expression: either one quantity or
// an array of quantities. Array elements carry their units individually.
type Value struct {
	Kind   ValueKind
	Scalar units.Quantity
	Elems  []units.Quantity
}

// ScalarValue wraps a quantity.
func ScalarValue(q units.Quantity) Value {
	return Value{Kind: ValueScalar, Scalar: q}
}

// NumberValue wraps a plain number.
func NumberValue(v float64) Value {
	return Value{Kind: ValueScalar, Scalar: units.Scalar(v)}
}

// ArrayValue wraps a list of quantities.
func ArrayValue(elems []units.Quantity) Value {
	return Value{Kind: ValueArray, Elems: elems}
}

// IsArray reports whether the value is an array.
func (v Value) IsArray() bool {
	return v.Kind == ValueArray
}

func (v Value) String() string {
	if v.Kind == ValueScalar {
		return v.Scalar.String()
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range v.Elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
