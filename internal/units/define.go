package units

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Definition is one user-defined unit as it appears in the `[units.<name>]`
// tables of recalc.toml. Exactly one of Of / Dims gives the dimension. Of is
// a unit expression over known names with `*`, `/` and `^`:
//
//	[units.mile]
//	of = "km"
//	scale = 1.609344
//
//	[units.torque]
//	of = "N*m"
//
//	[units.furlong]
//	scale = 201.168
//	dims = { length = 1 }
type Definition struct {
	Of         string             `toml:"of"`
	Scale      float64            `toml:"scale"`
	Dims       map[string]float64 `toml:"dims"`
	Prefixable bool               `toml:"prefixable"`
}

// Define registers a user unit. Redefinitions overwrite, so a project can
// shadow a builtin.
func (t *Table) Define(name string, def Definition) error {
	if name == "" {
		return fmt.Errorf("units: empty unit name")
	}
	scale := def.Scale
	if scale == 0 {
		scale = 1
	}
	u := Unit{name: name}
	switch {
	case def.Of != "":
		base, err := t.resolveRef(def.Of)
		if err != nil {
			return fmt.Errorf("units: %s: %w", name, err)
		}
		u.dims = base.dims
		u.scale = scale * base.factor()
	case len(def.Dims) > 0:
		for dim, exp := range def.Dims {
			idx, ok := dimNames[dim]
			if !ok {
				return fmt.Errorf("units: %s: unknown dimension %q", name, dim)
			}
			u.dims[idx] = exp
		}
		u.scale = scale
	default:
		// Безразмерная константа-единица, например dozen.
		u.scale = scale
	}
	t.define(name, u, def.Prefixable)
	return nil
}

// DefineAll registers a batch of definitions in name order, so aliases can
// reference earlier entries regardless of map iteration.
func (t *Table) DefineAll(defs map[string]Definition) error {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := t.Define(name, defs[name]); err != nil {
			return err
		}
	}
	return nil
}

// resolveRef evaluates a unit reference such as "km", "N*m", "km/h" or
// "m^2" against the table. Factors bind left to right, an exponent applies
// to the name it follows.
func (t *Table) resolveRef(ref string) (Unit, error) {
	rest := strings.TrimSpace(ref)
	if rest == "" {
		return Unit{}, fmt.Errorf("empty unit reference")
	}
	result := Unit{}
	op := byte('*')
	for {
		factor := rest
		next := byte(0)
		if i := strings.IndexAny(rest, "*/"); i >= 0 {
			factor, next = rest[:i], rest[i]
			rest = rest[i+1:]
		} else {
			rest = ""
		}
		u, err := t.resolveFactor(strings.TrimSpace(factor))
		if err != nil {
			return Unit{}, err
		}
		if op == '*' {
			result = t.Mul(result, u)
		} else {
			result = t.Div(result, u)
		}
		if next == 0 {
			return result, nil
		}
		if rest == "" {
			return Unit{}, fmt.Errorf("dangling %q in unit reference %q", string(next), ref)
		}
		op = next
	}
}

func (t *Table) resolveFactor(s string) (Unit, error) {
	name, expStr, hasExp := strings.Cut(s, "^")
	name = strings.TrimSpace(name)
	u, ok := t.Resolve(name)
	if !ok {
		return Unit{}, fmt.Errorf("unknown base unit %q", name)
	}
	if !hasExp {
		return u, nil
	}
	exp, err := strconv.ParseFloat(strings.TrimSpace(expStr), 64)
	if err != nil {
		return Unit{}, fmt.Errorf("bad exponent %q for unit %q", expStr, name)
	}
	return t.Pow(u, exp), nil
}

// LoadDefinitions parses a TOML document of `[units.<name>]` tables and
// registers every definition. The decoder alone пропускает несовпадение
// типов, поэтому форма ключей проверяется через метаданные.
func (t *Table) LoadDefinitions(data []byte) error {
	var doc struct {
		Units map[string]Definition `toml:"units"`
	}
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return fmt.Errorf("units: parse definitions: %w", err)
	}
	for _, key := range md.Keys() {
		if key[0] != "units" {
			continue
		}
		if len(key) == 1 && md.Type(key...) != "Hash" {
			return fmt.Errorf("units: parse definitions: 'units' is not a table")
		}
		if len(key) == 2 && md.Type(key...) != "Hash" {
			return fmt.Errorf("units: parse definitions: 'units.%s' is not a table", key[1])
		}
	}
	return t.DefineAll(doc.Units)
}
