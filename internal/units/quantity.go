package units

import (
	"math"
	"strconv"
)

// Quantity is a magnitude tagged with its unit. Plain numbers carry the
// zero Unit.
type Quantity struct {
	Mag  float64
	Unit Unit
}

// Scalar wraps a bare number.
func Scalar(v float64) Quantity {
	return Quantity{Mag: v}
}

// Add returns a+b with b converted into a's unit. The second result is
// false when the operands measure different dimensions.
func Add(sys System, a, b Quantity) (Quantity, bool) {
	if !sys.Compatible(a.Unit, b.Unit) {
		return Quantity{}, false
	}
	return Quantity{Mag: a.Mag + b.Mag*sys.Factor(b.Unit, a.Unit), Unit: a.Unit}, true
}

// Sub returns a-b with b converted into a's unit.
func Sub(sys System, a, b Quantity) (Quantity, bool) {
	if !sys.Compatible(a.Unit, b.Unit) {
		return Quantity{}, false
	}
	return Quantity{Mag: a.Mag - b.Mag*sys.Factor(b.Unit, a.Unit), Unit: a.Unit}, true
}

// Mul returns the product; units always compose.
func Mul(sys System, a, b Quantity) Quantity {
	return Quantity{Mag: a.Mag * b.Mag, Unit: sys.Mul(a.Unit, b.Unit)}
}

// Div returns the quotient. Division by zero follows IEEE 754 (Inf/NaN),
// the unit algebra stays exact.
func Div(sys System, a, b Quantity) Quantity {
	return Quantity{Mag: a.Mag / b.Mag, Unit: sys.Div(a.Unit, b.Unit)}
}

// Pow raises a to the dimensionless exponent exp.
func Pow(sys System, a Quantity, exp float64) Quantity {
	return Quantity{Mag: math.Pow(a.Mag, exp), Unit: sys.Pow(a.Unit, exp)}
}

// Neg negates the magnitude.
func Neg(a Quantity) Quantity {
	return Quantity{Mag: -a.Mag, Unit: a.Unit}
}

// AsExponent extracts the plain-number value of a quantity used as an
// exponent. False when the quantity carries a dimension.
func AsExponent(q Quantity) (float64, bool) {
	if !q.Unit.IsDimensionless() {
		return 0, false
	}
	// Масштаб безразмерной единицы (проценты, дюжины) входит в значение.
	return q.Mag * q.Unit.factor(), true
}

func (q Quantity) String() string {
	s := strconv.FormatFloat(q.Mag, 'g', -1, 64)
	if name := q.Unit.Name(); name != "" {
		return s + " " + name
	}
	return s
}
