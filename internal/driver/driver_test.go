package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"recalc/internal/diag"
	"recalc/internal/driver"
	"recalc/internal/eval"
	"recalc/internal/symbols"
	"recalc/internal/units"
)

func TestTokenizeText(t *testing.T) {
	tr := driver.TokenizeText("<expr>", `1 + 2 \mathrm{m}`, driver.Options{})
	// Number, Plus, Number, Unit, EOF.
	if len(tr.Tokens) != 5 {
		t.Fatalf("got %d tokens: %v", len(tr.Tokens), tr.Tokens)
	}
	if tr.Bag.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", tr.Bag.Items())
	}
}

func TestTokenizeReportsSplitIdents(t *testing.T) {
	tr := driver.TokenizeText("<expr>", "a b", driver.Options{})
	if !tr.Bag.HasWarnings() {
		t.Errorf("adjacent single letters not flagged: %v", tr.Bag.Items())
	}
}

func TestParseText(t *testing.T) {
	pr := driver.ParseText("<expr>", "1 + 2 * 3", driver.Options{})
	if !pr.OK || pr.Expr == nil {
		t.Fatalf("parse failed: %v", pr.Bag.Items())
	}

	pr = driver.ParseText("<expr>", "(1 + 2", driver.Options{})
	if pr.OK {
		t.Fatalf("parse of unclosed paren succeeded")
	}
	if !pr.Bag.HasErrors() {
		t.Errorf("no error diagnostics recorded")
	}
}

func TestEvalText(t *testing.T) {
	sys := units.NewTable()
	syms := symbols.NewTable[eval.Value]()
	er := driver.EvalText(context.Background(), "<expr>", "2 + 3 * 4", sys, syms, driver.Options{})
	if !er.OK {
		t.Fatalf("eval failed: %v", er.Bag.Items())
	}
	if got := er.Value.String(); got != "14" {
		t.Errorf("value = %q, want 14", got)
	}
}

func TestEvalDefine(t *testing.T) {
	sys := units.NewTable()
	syms := symbols.NewTable[eval.Value]()

	// Определения видят привязки более ранних определений.
	for _, def := range []string{`x = 5 \mathrm{m}`, "y = x + x"} {
		res, err := driver.EvalDefine(context.Background(), def, sys, syms, driver.Options{})
		if err != nil {
			t.Fatalf("EvalDefine(%q): %v", def, err)
		}
		if !res.OK {
			t.Fatalf("EvalDefine(%q) diagnostics: %v", def, res.Bag.Items())
		}
	}
	er := driver.EvalText(context.Background(), "<expr>", "y", sys, syms, driver.Options{})
	if !er.OK {
		t.Fatalf("eval failed: %v", er.Bag.Items())
	}
	if got := er.Value.String(); got != "10 m" {
		t.Errorf("y = %q, want 10 m", got)
	}

	for _, def := range []string{"", "=1", "x=", "no equals"} {
		if _, err := driver.EvalDefine(context.Background(), def, sys, syms, driver.Options{}); err == nil {
			t.Errorf("EvalDefine(%q) accepted malformed definition", def)
		}
	}

	// Неудачное определение ничего не привязывает.
	res, err := driver.EvalDefine(context.Background(), "bad = nope + 1", sys, syms, driver.Options{})
	if err != nil {
		t.Fatalf("EvalDefine(bad): %v", err)
	}
	if res.OK {
		t.Fatalf("definition with unknown name evaluated")
	}
	if _, ok := syms.Lookup("bad"); ok {
		t.Errorf("failed definition was bound")
	}
}

func writeSheet(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	return path
}

func TestRunSheet(t *testing.T) {
	sheet := `# геометрия
a := 2 \mathrm{m}
b := 3 \mathrm{m}
area := a \cdot b

area  # голое выражение печатает значение
`
	path := writeSheet(t, t.TempDir(), "geom.rc", sheet)
	res, err := driver.RunFile(context.Background(), path, driver.Options{})
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if len(res.Lines) != 4 {
		t.Fatalf("got %d lines, want 4: %+v", len(res.Lines), res.Lines)
	}
	if res.HasErrors() {
		for _, l := range res.Lines {
			t.Logf("line %d: %v", l.LineNum, l.Result.Bag.Items())
		}
		t.Fatalf("sheet failed")
	}

	area := res.Lines[2]
	if area.Name != "area" || area.Value.String() != "6 m·m" {
		t.Errorf("area line = %q %q", area.Name, area.Value.String())
	}
	bare := res.Lines[3]
	if bare.Name != "" || bare.LineNum != 6 {
		t.Errorf("bare line = %+v", bare)
	}
}

func TestRunSheetFailedLineContinues(t *testing.T) {
	sheet := `a := 1 \mathrm{m}
bad := a + 1 \mathrm{kg}
c := a + a
`
	path := writeSheet(t, t.TempDir(), "mix.rc", sheet)
	res, err := driver.RunFile(context.Background(), path, driver.Options{})
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if len(res.Lines) != 3 {
		t.Fatalf("got %d lines", len(res.Lines))
	}
	if res.Lines[1].OK {
		t.Errorf("kg + m line succeeded")
	}
	foundDim := false
	for _, d := range res.Lines[1].Result.Bag.Items() {
		if d.Code == diag.EvalDimensionMismatch {
			foundDim = true
		}
	}
	if !foundDim {
		t.Errorf("no dimension diagnostic: %v", res.Lines[1].Result.Bag.Items())
	}
	// Третья строка не видит сломанного определения, но видит a.
	if !res.Lines[2].OK {
		t.Errorf("line after failure did not run: %v", res.Lines[2].Result.Bag.Items())
	}
}

func TestRunSheetSpansMatchSheetGeometry(t *testing.T) {
	sheet := "x := 1\ny := zorp\n"
	path := writeSheet(t, t.TempDir(), "spans.rc", sheet)
	res, err := driver.RunFile(context.Background(), path, driver.Options{})
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	bad := res.Lines[1]
	if bad.OK {
		t.Fatalf("zorp line succeeded")
	}
	items := bad.Result.Bag.Items()
	if len(items) != 1 {
		t.Fatalf("want 1 diagnostic, got %v", items)
	}
	start, _ := bad.Result.FileSet.Resolve(items[0].Primary)
	// "zorp" стоит на второй строке листа, колонка 6.
	if start.Line != 2 || start.Col != 6 {
		t.Errorf("diagnostic at %d:%d, want 2:6", start.Line, start.Col)
	}
}

func TestRunDir(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "a.rc", "x := 1 + 1\n")
	// Одинаковое имя в двух листах — изоляция документов.
	writeSheet(t, dir, "b.rc", "x := 2 + 2\ny := x\n")
	writeSheet(t, dir, "skip.txt", "not a sheet")

	results, err := driver.RunDir(context.Background(), dir, driver.Options{Jobs: 2})
	if err != nil {
		t.Fatalf("RunDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// Отсортированы по пути.
	if filepath.Base(results[0].Path) != "a.rc" || filepath.Base(results[1].Path) != "b.rc" {
		t.Errorf("unexpected order: %s, %s", results[0].Path, results[1].Path)
	}
	if got := results[1].Lines[1].Value.String(); got != "4" {
		t.Errorf("b.rc y = %q, want 4", got)
	}
}

func TestRunDirEmpty(t *testing.T) {
	results, err := driver.RunDir(context.Background(), t.TempDir(), driver.Options{})
	if err != nil {
		t.Fatalf("RunDir: %v", err)
	}
	if results != nil {
		t.Errorf("expected no results, got %v", results)
	}
}
