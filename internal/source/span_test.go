package source_test

import (
	"testing"

	"recalc/internal/source"
)

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     source.Span
		expected source.Span
	}{
		{
			name:     "disjoint spans",
			a:        source.Span{File: 0, Start: 0, End: 3},
			b:        source.Span{File: 0, Start: 10, End: 12},
			expected: source.Span{File: 0, Start: 0, End: 12},
		},
		{
			name:     "contained span",
			a:        source.Span{File: 0, Start: 0, End: 20},
			b:        source.Span{File: 0, Start: 5, End: 8},
			expected: source.Span{File: 0, Start: 0, End: 20},
		},
		{
			name:     "other extends left",
			a:        source.Span{File: 0, Start: 4, End: 9},
			b:        source.Span{File: 0, Start: 1, End: 5},
			expected: source.Span{File: 0, Start: 1, End: 9},
		},
		{
			name:     "different files keep receiver",
			a:        source.Span{File: 0, Start: 4, End: 9},
			b:        source.Span{File: 1, Start: 1, End: 5},
			expected: source.Span{File: 0, Start: 4, End: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cover(tt.b)
			if got != tt.expected {
				t.Errorf("Cover: expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSpanLenEmpty(t *testing.T) {
	sp := source.Span{Start: 3, End: 3}
	if !sp.Empty() {
		t.Errorf("expected empty span")
	}
	sp = source.Span{Start: 3, End: 7}
	if sp.Empty() || sp.Len() != 4 {
		t.Errorf("expected non-empty span of length 4, got %d", sp.Len())
	}
}

func TestSpanAfter(t *testing.T) {
	sp := source.Span{File: 2, Start: 3, End: 7}
	after := sp.After()
	if after != (source.Span{File: 2, Start: 7, End: 7}) {
		t.Errorf("After: got %v", after)
	}
}

func TestResolve(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rc", []byte("a := 1 m\nb := 2 m\nc := a + b\n"))

	tests := []struct {
		name  string
		span  source.Span
		start source.LineCol
		end   source.LineCol
	}{
		{
			name:  "first line start",
			span:  source.Span{File: id, Start: 0, End: 1},
			start: source.LineCol{Line: 1, Col: 1},
			end:   source.LineCol{Line: 1, Col: 2},
		},
		{
			name:  "second line",
			span:  source.Span{File: id, Start: 9, End: 10},
			start: source.LineCol{Line: 2, Col: 1},
			end:   source.LineCol{Line: 2, Col: 2},
		},
		{
			name:  "third line operator",
			span:  source.Span{File: id, Start: 25, End: 26},
			start: source.LineCol{Line: 3, Col: 8},
			end:   source.LineCol{Line: 3, Col: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := fs.Resolve(tt.span)
			if start != tt.start || end != tt.end {
				t.Errorf("Resolve(%v): expected %v..%v, got %v..%v",
					tt.span, tt.start, tt.end, start, end)
			}
		})
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rc", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Errorf("GetLine(1): got %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Errorf("GetLine(2): got %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("GetLine(3): got %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("GetLine(4): expected empty, got %q", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("GetLine(0): expected empty, got %q", got)
	}
}

func TestLoadNormalization(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("crlf.rc", []byte("a := 1\nb := 2"))
	f := fs.Get(id)
	if f.Flags&source.FileVirtual == 0 {
		t.Errorf("expected FileVirtual flag")
	}
}
