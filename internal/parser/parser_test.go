package parser_test

import (
	"testing"

	"recalc/internal/ast"
	"recalc/internal/diag"
	"recalc/internal/lexer"
	"recalc/internal/parser"
	"recalc/internal/source"
)

// mustParse разбирает выражение и падает, если не получилось.
func mustParse(t *testing.T, input string) *ast.Expr {
	t.Helper()
	expr, bag := tryParse(t, input)
	if expr == nil {
		t.Fatalf("parse %q failed: %v", input, bag.Items())
	}
	return expr
}

// tryParse разбирает выражение, возвращая дерево (или nil) и диагностики.
func tryParse(t *testing.T, input string) (*ast.Expr, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rc", []byte(input))
	bag := diag.NewBag(16)
	reporter := diag.BagReporter{Bag: bag}

	toks := lexer.Tokenize(fs.Get(id), reporter)
	expr, ok := parser.Parse(toks, reporter)
	if !ok {
		return nil, bag
	}
	return expr, bag
}

// expectParseError проверяет, что разбор падает с заданным кодом.
func expectParseError(t *testing.T, input string, code diag.Code) {
	t.Helper()
	expr, bag := tryParse(t, input)
	if expr != nil {
		t.Fatalf("parse %q: expected failure, got tree", input)
	}
	for _, d := range bag.Items() {
		if d.Code == code {
			return
		}
	}
	t.Errorf("parse %q: expected code %v, diagnostics: %v", input, code, bag.Items())
}

func TestPrecedenceMulOverAdd(t *testing.T) {
	// 2 + 3 * 4 == 2 + (3 * 4)
	expr := mustParse(t, "2 + 3 * 4")
	if expr.Kind != ast.ExprBinary || expr.Op != ast.OpAdd {
		t.Fatalf("root: expected Add, got %v %v", expr.Kind, expr.Op)
	}
	if expr.Y.Kind != ast.ExprBinary || expr.Y.Op != ast.OpMul {
		t.Errorf("right: expected Mul, got %v %v", expr.Y.Kind, expr.Y.Op)
	}
}

func TestPowerRightAssociative(t *testing.T) {
	// 2^3^2 == 2^(3^2)
	expr := mustParse(t, "2^3^2")
	if expr.Kind != ast.ExprBinary || expr.Op != ast.OpPow {
		t.Fatalf("root: expected Pow, got %v %v", expr.Kind, expr.Op)
	}
	if expr.X.Kind != ast.ExprNumber || expr.X.Value != 2 {
		t.Errorf("base: expected 2, got %+v", expr.X)
	}
	if expr.Y.Kind != ast.ExprBinary || expr.Y.Op != ast.OpPow {
		t.Errorf("exponent: expected nested Pow, got %v", expr.Y.Kind)
	}
}

func TestUnaryMinus(t *testing.T) {
	expr := mustParse(t, "-x")
	if expr.Kind != ast.ExprUnary {
		t.Fatalf("expected Unary, got %v", expr.Kind)
	}
	if expr.X.Kind != ast.ExprIdent || expr.X.Name != "x" {
		t.Errorf("operand: got %+v", expr.X)
	}

	// минус в показателе степени
	expr = mustParse(t, "2^-3")
	if expr.Op != ast.OpPow || expr.Y.Kind != ast.ExprUnary {
		t.Errorf("2^-3: expected Pow with Unary exponent, got %v %v", expr.Op, expr.Y.Kind)
	}
}

func TestFraction(t *testing.T) {
	expr := mustParse(t, `\frac{1}{2}`)
	if expr.Kind != ast.ExprFraction {
		t.Fatalf("expected Fraction, got %v", expr.Kind)
	}
	if expr.X.Value != 1 || expr.Y.Value != 2 {
		t.Errorf("args: got %v, %v", expr.X.Value, expr.Y.Value)
	}
}

func TestUnitAttachment(t *testing.T) {
	expr := mustParse(t, `5 \mathrm{kg}`)
	if expr.Kind != ast.ExprUnitAttach || expr.Unit != "kg" {
		t.Fatalf("expected UnitAttach(kg), got %v %q", expr.Kind, expr.Unit)
	}
	if expr.X.Kind != ast.ExprNumber || expr.X.Value != 5 {
		t.Errorf("inner: got %+v", expr.X)
	}
}

func TestUnitBindsToPrimaryOnly(t *testing.T) {
	// юнит липнет к 3, а не к сумме
	expr := mustParse(t, `2 + 3 \mathrm{m}`)
	if expr.Kind != ast.ExprBinary || expr.Op != ast.OpAdd {
		t.Fatalf("root: expected Add, got %v", expr.Kind)
	}
	if expr.Y.Kind != ast.ExprUnitAttach {
		t.Errorf("right: expected UnitAttach, got %v", expr.Y.Kind)
	}
	if expr.X.Kind != ast.ExprNumber {
		t.Errorf("left: expected bare Number, got %v", expr.X.Kind)
	}
}

func TestUnitAfterParenthesizedExpr(t *testing.T) {
	expr := mustParse(t, `(2 + 3) \mathrm{m}`)
	if expr.Kind != ast.ExprUnitAttach || expr.Unit != "m" {
		t.Fatalf("expected UnitAttach(m) over parens, got %v", expr.Kind)
	}
	if expr.X.Kind != ast.ExprBinary {
		t.Errorf("inner: expected Binary, got %v", expr.X.Kind)
	}
}

func TestArrayLiteral(t *testing.T) {
	expr := mustParse(t, "[1, 2, 3]")
	if expr.Kind != ast.ExprArray || len(expr.Elems) != 3 {
		t.Fatalf("expected Array of 3, got %v (%d)", expr.Kind, len(expr.Elems))
	}
	for i, want := range []float64{1, 2, 3} {
		if expr.Elems[i].Value != want {
			t.Errorf("elem %d: expected %v, got %v", i, want, expr.Elems[i].Value)
		}
	}
}

func TestEmptyArrayLiteral(t *testing.T) {
	expr := mustParse(t, "[]")
	if expr.Kind != ast.ExprArray || len(expr.Elems) != 0 {
		t.Fatalf("expected empty Array, got %v (%d)", expr.Kind, len(expr.Elems))
	}
}

func TestArrayWithUnits(t *testing.T) {
	expr := mustParse(t, `[1 \mathrm{m}, 2 \mathrm{m}]`)
	if expr.Kind != ast.ExprArray || len(expr.Elems) != 2 {
		t.Fatalf("got %v (%d)", expr.Kind, len(expr.Elems))
	}
	for i, e := range expr.Elems {
		if e.Kind != ast.ExprUnitAttach {
			t.Errorf("elem %d: expected UnitAttach, got %v", i, e.Kind)
		}
	}
}

func TestIndexChaining(t *testing.T) {
	expr := mustParse(t, "arr[0][1]")
	if expr.Kind != ast.ExprIndex {
		t.Fatalf("root: expected Index, got %v", expr.Kind)
	}
	if expr.X.Kind != ast.ExprIndex {
		t.Errorf("inner: expected nested Index, got %v", expr.X.Kind)
	}
	if expr.X.X.Kind != ast.ExprIdent || expr.X.X.Name != "arr" {
		t.Errorf("array expr: got %+v", expr.X.X)
	}
}

func TestSpansCoverSource(t *testing.T) {
	input := "2 + 3 * 4"
	expr := mustParse(t, input)
	if expr.Span.Start != 0 || expr.Span.End != uint32(len(input)) {
		t.Errorf("root span: expected 0-%d, got %d-%d", len(input), expr.Span.Start, expr.Span.End)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"(1 + 2", diag.SynUnclosedParen},
		{"[1, 2", diag.SynUnclosedBracket},
		{"arr[0", diag.SynUnclosedBracket},
		{`\frac{1}{2`, diag.SynUnclosedBrace},
		{"1 +", diag.SynUnexpectedEOF},
		{"", diag.SynUnexpectedEOF},
		{"1 2", diag.SynUnexpectedToken},
		{"1, 2", diag.SynUnexpectedToken},
		{")", diag.SynExpectExpression},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectParseError(t, tt.input, tt.code)
		})
	}
}

func TestErrorSpanAtEOFPointsPastLastToken(t *testing.T) {
	_, bag := tryParse(t, "1 +")
	if bag.Len() == 0 {
		t.Fatal("expected diagnostics")
	}
	d := bag.Items()[0]
	if d.Primary.Start != 3 || !d.Primary.Empty() {
		t.Errorf("expected empty span at offset 3, got %v", d.Primary)
	}
}
