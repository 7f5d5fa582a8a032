package units

import (
	"math"
	"strings"
)

type entry struct {
	unit       Unit
	prefixable bool
}

// Table is the default System: a name registry with SI base and derived
// units, metric-prefix resolution and user-defined units on top.
type Table struct {
	units map[string]entry
}

var _ System = (*Table)(nil)

type prefix struct {
	text   string
	factor float64
}

// Длинные префиксы раньше коротких: "da" должен выигрывать у несуществующего "d"+"a".
var prefixes = []prefix{
	{"da", 1e1},
	{"µ", 1e-6},
	{"Q", 1e30}, {"R", 1e27}, {"Y", 1e24}, {"Z", 1e21}, {"E", 1e18},
	{"P", 1e15}, {"T", 1e12}, {"G", 1e9}, {"M", 1e6}, {"k", 1e3},
	{"h", 1e2},
	{"d", 1e-1}, {"c", 1e-2}, {"m", 1e-3}, {"u", 1e-6}, {"n", 1e-9},
	{"p", 1e-12}, {"f", 1e-15}, {"a", 1e-18}, {"z", 1e-21}, {"y", 1e-24},
	{"r", 1e-27}, {"q", 1e-30},
}

// NewTable builds a table prepopulated with the SI base units, the common
// derived units and a handful of accepted non-SI units (litre, hour, bar).
// The gram is the prefixable mass unit, so "kg" resolves through the
// ordinary prefix path.
func NewTable() *Table {
	t := &Table{units: make(map[string]entry)}

	base := func(name string, dim int, scale float64, prefixable bool) {
		var d Dims
		d[dim] = 1
		t.define(name, Unit{dims: d, scale: scale, name: name}, prefixable)
	}
	base("m", dimLength, 1, true)
	base("g", dimMass, 1e-3, true)
	base("s", dimTime, 1, true)
	base("A", dimCurrent, 1, true)
	base("K", dimTemperature, 1, true)
	base("mol", dimAmount, 1, true)
	base("cd", dimLuminosity, 1, true)

	derived := func(name string, d Dims, scale float64, prefixable bool) {
		t.define(name, Unit{dims: d, scale: scale, name: name}, prefixable)
	}
	derived("Hz", Dims{dimTime: -1}, 1, true)
	derived("N", Dims{dimMass: 1, dimLength: 1, dimTime: -2}, 1, true)
	derived("Pa", Dims{dimMass: 1, dimLength: -1, dimTime: -2}, 1, true)
	derived("J", Dims{dimMass: 1, dimLength: 2, dimTime: -2}, 1, true)
	derived("W", Dims{dimMass: 1, dimLength: 2, dimTime: -3}, 1, true)
	derived("C", Dims{dimCurrent: 1, dimTime: 1}, 1, true)
	derived("V", Dims{dimMass: 1, dimLength: 2, dimTime: -3, dimCurrent: -1}, 1, true)
	derived("F", Dims{dimMass: -1, dimLength: -2, dimTime: 4, dimCurrent: 2}, 1, true)
	derived("ohm", Dims{dimMass: 1, dimLength: 2, dimTime: -3, dimCurrent: -2}, 1, true)
	derived("Ω", Dims{dimMass: 1, dimLength: 2, dimTime: -3, dimCurrent: -2}, 1, true)
	derived("rad", Dims{}, 1, false)

	// Принятые внесистемные единицы.
	derived("L", Dims{dimLength: 3}, 1e-3, true)
	derived("l", Dims{dimLength: 3}, 1e-3, true)
	derived("t", Dims{dimMass: 1}, 1e3, false)
	derived("min", Dims{dimTime: 1}, 60, false)
	derived("h", Dims{dimTime: 1}, 3600, false)
	derived("bar", Dims{dimMass: 1, dimLength: -1, dimTime: -2}, 1e5, true)
	derived("eV", Dims{dimMass: 1, dimLength: 2, dimTime: -2}, 1.602176634e-19, true)
	derived("Wh", Dims{dimMass: 1, dimLength: 2, dimTime: -2}, 3600, true)

	return t
}

func (t *Table) define(name string, u Unit, prefixable bool) {
	t.units[name] = entry{unit: u, prefixable: prefixable}
}

// Resolve implements System. Exact names win over prefixed forms, so "h"
// stays the hour instead of a bare hecto.
func (t *Table) Resolve(name string) (Unit, bool) {
	if e, ok := t.units[name]; ok {
		return e.unit, true
	}
	for _, p := range prefixes {
		rest, ok := strings.CutPrefix(name, p.text)
		if !ok || rest == "" {
			continue
		}
		e, ok := t.units[rest]
		if !ok || !e.prefixable {
			continue
		}
		u := e.unit
		u.scale = u.factor() * p.factor
		u.name = name
		return u, true
	}
	return Unit{}, false
}

// Mul implements System.
func (t *Table) Mul(a, b Unit) Unit {
	if a.IsDimensionless() && a.factor() == 1 {
		return b
	}
	if b.IsDimensionless() && b.factor() == 1 {
		return a
	}
	var d Dims
	for i := range d {
		d[i] = a.dims[i] + b.dims[i]
	}
	return Unit{dims: d, scale: a.factor() * b.factor(), name: mulName(a.name, b.name)}
}

// Div implements System.
func (t *Table) Div(a, b Unit) Unit {
	if b.IsDimensionless() && b.factor() == 1 {
		return a
	}
	var d Dims
	for i := range d {
		d[i] = a.dims[i] - b.dims[i]
	}
	return Unit{dims: d, scale: a.factor() / b.factor(), name: divName(a.name, b.name)}
}

// Pow implements System.
func (t *Table) Pow(u Unit, exp float64) Unit {
	if u.IsDimensionless() && u.factor() == 1 {
		return Unit{}
	}
	var d Dims
	for i := range d {
		d[i] = u.dims[i] * exp
	}
	return Unit{dims: d, scale: math.Pow(u.factor(), exp), name: powName(u.name, exp)}
}

// Compatible implements System.
func (t *Table) Compatible(a, b Unit) bool {
	return a.dims == b.dims
}

// Factor implements System.
func (t *Table) Factor(from, to Unit) float64 {
	return from.factor() / to.factor()
}
