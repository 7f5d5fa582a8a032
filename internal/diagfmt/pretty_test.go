package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"recalc/internal/diag"
	"recalc/internal/diagfmt"
	"recalc/internal/lexer"
	"recalc/internal/parser"
	"recalc/internal/source"
)

func makeBag(t *testing.T, input string, code diag.Code, start, end uint32, msg string) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rc", []byte(input))

	bag := diag.NewBag(8)
	bag.Add(diag.NewError(code, source.Span{File: fileID, Start: start, End: end}, msg))
	return bag, fs
}

func TestPrettyBasic(t *testing.T) {
	// Подчёркиваем "y" в "1 + y".
	bag, fs := makeBag(t, "1 + y", diag.EvalUndefinedVariable, 4, 5, `undefined variable "y"`)

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	out := sb.String()

	for _, want := range []string{
		"test.rc:1:5:",
		"ERROR EVAL3001",
		`undefined variable "y"`,
		"1 + y",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if lines[2] != "      ^" {
		t.Errorf("caret line = %q, want %q", lines[2], "      ^")
	}
}

func TestPrettyUnderlineWidth(t *testing.T) {
	// Спан на три байта "2 m" даёт ^~~.
	bag, fs := makeBag(t, "1 + 2 m", diag.EvalUnknownUnit, 4, 7, "unknown unit")

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if got, want := lines[len(lines)-1], "      ^~~"; got != want {
		t.Errorf("underline = %q, want %q", got, want)
	}
}

func TestPrettyMax(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rc", []byte("x"))
	bag := diag.NewBag(8)
	for range 3 {
		bag.Add(diag.NewError(diag.EvalUndefinedVariable,
			source.Span{File: fileID, Start: 0, End: 1}, "undefined"))
	}

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{Max: 1})
	if !strings.Contains(sb.String(), "and 2 more") {
		t.Errorf("truncation notice missing:\n%s", sb.String())
	}
}

func TestJSON(t *testing.T) {
	bag, fs := makeBag(t, "1 + y", diag.EvalUndefinedVariable, 4, 5, "undefined variable")

	var sb strings.Builder
	if err := diagfmt.JSON(&sb, bag, fs, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out []struct {
		Severity string `json:"severity"`
		Code     string `json:"code"`
		Message  string `json:"message"`
		Pos      *struct {
			Line uint32 `json:"line"`
			Col  uint32 `json:"col"`
		} `json:"pos"`
	}
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(out))
	}
	d := out[0]
	if d.Severity != "ERROR" || d.Code != "EVAL3001" || d.Pos == nil || d.Pos.Line != 1 || d.Pos.Col != 5 {
		t.Errorf("unexpected JSON diagnostic: %+v", d)
	}
}

func TestTree(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rc", []byte("1 + 2 * 3")))

	rep := diag.NopReporter{}
	expr, ok := parser.Parse(lexer.Tokenize(file, rep), rep)
	if !ok {
		t.Fatalf("parse failed")
	}

	var sb strings.Builder
	diagfmt.Tree(&sb, expr, fs)
	out := sb.String()

	for _, want := range []string{"Binary +", "Binary *", "Number 1", "Number 2", "Number 3", "└── "} {
		if !strings.Contains(out, want) {
			t.Errorf("tree misses %q:\n%s", want, out)
		}
	}
}
