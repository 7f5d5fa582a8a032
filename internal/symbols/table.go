// Package symbols holds the name bindings visible to the evaluator.
// Tables are generic over the stored value so the package stays free of
// evaluator types.
package symbols

import "strings"

// Table maps identifier spellings to values. Tables nest: lookups fall
// through to the parent, definitions always land in the child.
type Table[V any] struct {
	parent *Table[V]
	m      map[string]V
}

// NewTable returns an empty root table.
func NewTable[V any]() *Table[V] {
	return &Table[V]{m: make(map[string]V)}
}

// NewScope returns a child table over parent.
func NewScope[V any](parent *Table[V]) *Table[V] {
	return &Table[V]{parent: parent, m: make(map[string]V)}
}

// Define binds name to v in this table, shadowing any parent binding.
func (t *Table[V]) Define(name string, v V) {
	t.m[name] = v
}

// Len reports the number of bindings in this table, excluding parents.
func (t *Table[V]) Len() int {
	return len(t.m)
}

// Names returns the locally bound names in map order.
func (t *Table[V]) Names() []string {
	out := make([]string, 0, len(t.m))
	for name := range t.m {
		out = append(out, name)
	}
	return out
}

// Lookup resolves name through this table and its parents. Identifiers
// with a subscript or superscript are matched in three steps: the exact
// spelling, the brace-stripped spelling, and the braced form of an
// unbraced spelling. "T_{max}" therefore finds a binding written as
// "T_max" and vice versa.
func (t *Table[V]) Lookup(name string) (V, bool) {
	for s := t; s != nil; s = s.parent {
		if v, ok := s.m[name]; ok {
			return v, true
		}
	}
	for _, alt := range altSpellings(name) {
		for s := t; s != nil; s = s.parent {
			if v, ok := s.m[alt]; ok {
				return v, true
			}
		}
	}
	var zero V
	return zero, false
}

// altSpellings returns the alternative spellings of name, nothing for
// names without a subscript or superscript. Первый разделитель решает.
func altSpellings(name string) []string {
	i := strings.IndexAny(name, "_^")
	if i < 0 || i+1 == len(name) {
		return nil
	}
	base, sep, sub := name[:i], name[i:i+1], name[i+1:]
	if inner, ok := strings.CutPrefix(sub, "{"); ok {
		inner, ok = strings.CutSuffix(inner, "}")
		if !ok {
			return nil
		}
		return []string{base + sep + inner}
	}
	return []string{base + sep + "{" + sub + "}"}
}
