package symbols

import "testing"

func TestDefineLookup(t *testing.T) {
	tab := NewTable[int]()
	tab.Define("x", 1)
	tab.Define("y", 2)

	if v, ok := tab.Lookup("x"); !ok || v != 1 {
		t.Errorf("Lookup(x) = %d, %v; want 1, true", v, ok)
	}
	if _, ok := tab.Lookup("z"); ok {
		t.Errorf("Lookup(z) succeeded, want miss")
	}

	tab.Define("x", 10)
	if v, _ := tab.Lookup("x"); v != 10 {
		t.Errorf("redefined x = %d, want 10", v)
	}
	if tab.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tab.Len())
	}
}

func TestScopes(t *testing.T) {
	root := NewTable[string]()
	root.Define("a", "outer")
	child := NewScope(root)
	child.Define("a", "inner")
	child.Define("b", "only child")

	if v, _ := child.Lookup("a"); v != "inner" {
		t.Errorf("child a = %q, want inner", v)
	}
	if v, _ := root.Lookup("a"); v != "outer" {
		t.Errorf("root a = %q, want outer", v)
	}
	if v, ok := child.Lookup("b"); !ok || v != "only child" {
		t.Errorf("child b = %q, %v", v, ok)
	}
	if _, ok := root.Lookup("b"); ok {
		t.Errorf("child binding leaked into root")
	}
}

func TestSubscriptSpellings(t *testing.T) {
	cases := []struct {
		defined string
		lookup  string
	}{
		{"T_{max}", "T_{max}"},
		{"T_{max}", "T_max"},
		{"T_max", "T_{max}"},
		{"v_{out,1}", "v_out,1"},
		{"x^{ref}", "x^ref"},
		{"x^ref", "x^{ref}"},
	}
	for _, tc := range cases {
		tab := NewTable[int]()
		tab.Define(tc.defined, 42)
		if v, ok := tab.Lookup(tc.lookup); !ok || v != 42 {
			t.Errorf("defined %q, Lookup(%q) = %d, %v; want hit", tc.defined, tc.lookup, v, ok)
		}
	}

	tab := NewTable[int]()
	tab.Define("T_{max}", 1)
	if _, ok := tab.Lookup("T_{min}"); ok {
		t.Errorf("T_{min} resolved against T_{max}")
	}
	if _, ok := tab.Lookup("T"); ok {
		t.Errorf("bare T resolved against T_{max}")
	}
}
