package units

import (
	"strconv"
	"strings"
)

// Базовые размерности СИ; порядок фиксирован и значим для Dims.
const (
	dimLength = iota
	dimMass
	dimTime
	dimCurrent
	dimTemperature
	dimAmount
	dimLuminosity
	numDims
)

var dimNames = map[string]int{
	"length":      dimLength,
	"mass":        dimMass,
	"time":        dimTime,
	"current":     dimCurrent,
	"temperature": dimTemperature,
	"amount":      dimAmount,
	"luminosity":  dimLuminosity,
}

// Dims is the vector of base-dimension exponents. Exponents are floats so
// that fractional powers of units ((4 m^2)^0.5) stay representable.
type Dims [numDims]float64

// IsZero reports whether every exponent is zero (a dimensionless unit).
func (d Dims) IsZero() bool {
	return d == Dims{}
}

// Unit is an opaque handle: a dimension vector plus a scale factor relative
// to the coherent SI unit of that dimension, plus a display name. The zero
// value is the dimensionless unit. Units are immutable; consumers (the
// evaluator) never inspect the internals, only the System operations.
type Unit struct {
	dims  Dims
	scale float64 // 0 means 1: keeps the zero value dimensionless
	name  string
}

// factor returns the scale, treating the zero value as 1.
func (u Unit) factor() float64 {
	if u.scale == 0 {
		return 1
	}
	return u.scale
}

// IsDimensionless reports whether the unit carries no dimension.
func (u Unit) IsDimensionless() bool {
	return u.dims.IsZero()
}

// Name returns the display spelling, empty for plain numbers.
func (u Unit) Name() string {
	return u.name
}

func (u Unit) String() string {
	if u.name == "" {
		if u.dims.IsZero() {
			return "1"
		}
		return "?" // составной юнит без имени не возникает из операций System
	}
	return u.name
}

// System is the unit-arithmetic contract the evaluator consumes. All
// operations are total; dimension checks happen through Compatible.
type System interface {
	// Resolve maps a unit name to its handle.
	Resolve(name string) (Unit, bool)
	// Mul returns the product unit.
	Mul(a, b Unit) Unit
	// Div returns the quotient unit.
	Div(a, b Unit) Unit
	// Pow raises a unit to a float exponent.
	Pow(u Unit, exp float64) Unit
	// Compatible reports whether two units measure the same dimension
	// (possibly at different scales), i.e. whether +/- is meaningful.
	Compatible(a, b Unit) bool
	// Factor returns the multiplier converting a magnitude in `from`
	// into the same quantity expressed in `to`. Defined only when
	// Compatible(from, to).
	Factor(from, to Unit) float64
}

// ===== Композиция имён; только для отображения, истина — в dims+scale =====

func mulName(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + "·" + b
}

func divName(a, b string) string {
	switch {
	case b == "":
		return a
	case a == "":
		a = "1"
	}
	return a + "/" + parenName(b)
}

func powName(a string, exp float64) string {
	if a == "" {
		return ""
	}
	return parenName(a) + "^" + strconv.FormatFloat(exp, 'g', -1, 64)
}

// parenName заключает составное имя в скобки.
func parenName(s string) string {
	if strings.ContainsAny(s, "·/") {
		return "(" + s + ")"
	}
	return s
}
