package eval

import (
	"context"
	"fmt"
	"math"

	"recalc/internal/ast"
	"recalc/internal/diag"
	"recalc/internal/source"
	"recalc/internal/symbols"
	"recalc/internal/units"

	"fortio.org/safecast"
)

// constants are the builtin named values. They resolve before the symbol
// table, so a document cannot shadow them.
var constants = map[string]float64{
	`\pi`: math.Pi,
	"pi":  math.Pi,
	"e":   math.E,
}

// Evaluator walks an expression tree and produces a Value. Failures are
// reported through the diag.Reporter with the span of the offending node;
// the ok result is false when any error fired.
type Evaluator struct {
	sys      units.System
	syms     *symbols.Table[Value]
	reporter diag.Reporter
}

// New builds an evaluator over the given unit system and symbol table.
// A nil reporter discards diagnostics.
func New(sys units.System, syms *symbols.Table[Value], reporter diag.Reporter) *Evaluator {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Evaluator{sys: sys, syms: syms, reporter: reporter}
}

// Eval evaluates the tree rooted at expr. The context carries the
// recalculation deadline: once it is done, evaluation stops at the next
// node with an EvalTimeout diagnostic.
func (e *Evaluator) Eval(ctx context.Context, expr *ast.Expr) (Value, bool) {
	if expr == nil {
		return Value{}, false
	}
	return e.eval(ctx, expr)
}

func (e *Evaluator) err(code diag.Code, sp source.Span, format string, args ...any) {
	e.reporter.Report(code, diag.SevError, sp, fmt.Sprintf(format, args...), nil)
}

func (e *Evaluator) eval(ctx context.Context, expr *ast.Expr) (Value, bool) {
	if ctx.Err() != nil {
		e.err(diag.EvalTimeout, expr.Span, "evaluation deadline exceeded")
		return Value{}, false
	}

	switch expr.Kind {
	case ast.ExprNumber:
		return NumberValue(expr.Value), true

	case ast.ExprIdent:
		if c, ok := constants[expr.Name]; ok {
			return NumberValue(c), true
		}
		if v, ok := e.syms.Lookup(expr.Name); ok {
			return v, true
		}
		e.err(diag.EvalUndefinedVariable, expr.Span, "undefined variable %q", expr.Name)
		return Value{}, false

	case ast.ExprUnary:
		v, ok := e.eval(ctx, expr.X)
		if !ok {
			return Value{}, false
		}
		return mapElems(v, units.Neg), true

	case ast.ExprBinary:
		return e.evalBinary(ctx, expr, expr.Op)

	case ast.ExprFraction:
		return e.evalBinary(ctx, expr, ast.OpDiv)

	case ast.ExprUnitAttach:
		return e.evalUnitAttach(ctx, expr)

	case ast.ExprArray:
		return e.evalArray(ctx, expr)

	case ast.ExprIndex:
		return e.evalIndex(ctx, expr)
	}

	e.err(diag.UnknownCode, expr.Span, "unsupported expression kind %v", expr.Kind)
	return Value{}, false
}

func (e *Evaluator) evalBinary(ctx context.Context, expr *ast.Expr, op ast.BinOp) (Value, bool) {
	x, ok := e.eval(ctx, expr.X)
	if !ok {
		return Value{}, false
	}
	y, ok := e.eval(ctx, expr.Y)
	if !ok {
		return Value{}, false
	}
	if op == ast.OpPow {
		return e.evalPow(expr, x, y)
	}
	return e.broadcast(expr, op, x, y)
}

// broadcast applies op element-wise, spreading a scalar operand across the
// other side's array.
func (e *Evaluator) broadcast(expr *ast.Expr, op ast.BinOp, x, y Value) (Value, bool) {
	apply := func(a, b units.Quantity) (units.Quantity, bool) {
		return e.applyOp(expr, op, a, b)
	}

	switch {
	case !x.IsArray() && !y.IsArray():
		q, ok := apply(x.Scalar, y.Scalar)
		if !ok {
			return Value{}, false
		}
		return ScalarValue(q), true

	case x.IsArray() && y.IsArray():
		if len(x.Elems) != len(y.Elems) {
			e.err(diag.EvalSizeMismatch, expr.Span,
				"array size mismatch: %d vs %d", len(x.Elems), len(y.Elems))
			return Value{}, false
		}
		out := make([]units.Quantity, len(x.Elems))
		for i := range x.Elems {
			q, ok := apply(x.Elems[i], y.Elems[i])
			if !ok {
				return Value{}, false
			}
			out[i] = q
		}
		return ArrayValue(out), true

	case x.IsArray():
		out := make([]units.Quantity, len(x.Elems))
		for i := range x.Elems {
			q, ok := apply(x.Elems[i], y.Scalar)
			if !ok {
				return Value{}, false
			}
			out[i] = q
		}
		return ArrayValue(out), true

	default: // y.IsArray()
		out := make([]units.Quantity, len(y.Elems))
		for i := range y.Elems {
			q, ok := apply(x.Scalar, y.Elems[i])
			if !ok {
				return Value{}, false
			}
			out[i] = q
		}
		return ArrayValue(out), true
	}
}

func (e *Evaluator) applyOp(expr *ast.Expr, op ast.BinOp, a, b units.Quantity) (units.Quantity, bool) {
	switch op {
	case ast.OpAdd:
		q, ok := units.Add(e.sys, a, b)
		if !ok {
			e.reportDimensions(expr, "+", a, b)
			return units.Quantity{}, false
		}
		return q, true
	case ast.OpSub:
		q, ok := units.Sub(e.sys, a, b)
		if !ok {
			e.reportDimensions(expr, "-", a, b)
			return units.Quantity{}, false
		}
		return q, true
	case ast.OpMul:
		return units.Mul(e.sys, a, b), true
	case ast.OpDiv:
		return units.Div(e.sys, a, b), true
	}
	e.err(diag.UnknownCode, expr.Span, "unsupported operator %v", op)
	return units.Quantity{}, false
}

func (e *Evaluator) reportDimensions(expr *ast.Expr, op string, a, b units.Quantity) {
	e.err(diag.EvalDimensionMismatch, expr.Span,
		"cannot apply %q to incompatible dimensions (%s vs %s)",
		op, a.Unit, b.Unit)
}

func (e *Evaluator) evalPow(expr *ast.Expr, base, exp Value) (Value, bool) {
	if exp.IsArray() {
		e.err(diag.EvalBadExponent, expr.Y.Span, "exponent must be a dimensionless number, got array")
		return Value{}, false
	}
	p, ok := units.AsExponent(exp.Scalar)
	if !ok {
		e.err(diag.EvalBadExponent, expr.Y.Span,
			"exponent must be dimensionless, got %s", exp.Scalar.Unit)
		return Value{}, false
	}
	pow := func(q units.Quantity) units.Quantity {
		return units.Pow(e.sys, q, p)
	}
	return mapElems(base, pow), true
}

func (e *Evaluator) evalUnitAttach(ctx context.Context, expr *ast.Expr) (Value, bool) {
	inner, ok := e.eval(ctx, expr.X)
	if !ok {
		return Value{}, false
	}
	u, ok := e.sys.Resolve(expr.Unit)
	if !ok {
		e.err(diag.EvalUnknownUnit, expr.Span, "unknown unit %q", expr.Unit)
		return Value{}, false
	}
	attach := func(q units.Quantity) units.Quantity {
		if q.Unit.IsDimensionless() {
			// Голое число получает единицу как есть: 5 \mathrm{km} = 5 км.
			return units.Quantity{Mag: q.Mag, Unit: u}
		}
		return units.Quantity{Mag: q.Mag, Unit: e.sys.Mul(q.Unit, u)}
	}
	return mapElems(inner, attach), true
}

func (e *Evaluator) evalArray(ctx context.Context, expr *ast.Expr) (Value, bool) {
	elems := make([]units.Quantity, 0, len(expr.Elems))
	for _, el := range expr.Elems {
		v, ok := e.eval(ctx, el)
		if !ok {
			return Value{}, false
		}
		if v.IsArray() {
			e.err(diag.EvalNestedArray, el.Span, "arrays cannot be nested")
			return Value{}, false
		}
		elems = append(elems, v.Scalar)
	}
	return ArrayValue(elems), true
}

func (e *Evaluator) evalIndex(ctx context.Context, expr *ast.Expr) (Value, bool) {
	arr, ok := e.eval(ctx, expr.X)
	if !ok {
		return Value{}, false
	}
	idx, ok := e.eval(ctx, expr.Y)
	if !ok {
		return Value{}, false
	}

	if !arr.IsArray() {
		e.err(diag.EvalNonArrayIndex, expr.X.Span, "indexing a non-array value")
		return Value{}, false
	}
	if idx.IsArray() {
		e.err(diag.EvalBadIndex, expr.Y.Span, "index must be a dimensionless number, got array")
		return Value{}, false
	}
	raw, ok := units.AsExponent(idx.Scalar)
	if !ok {
		e.err(diag.EvalBadIndex, expr.Y.Span,
			"index must be dimensionless, got %s", idx.Scalar.Unit)
		return Value{}, false
	}
	// Truncate отбрасывает дробную часть и проверяет представимость.
	i, err := safecast.Truncate[int](raw)
	if err != nil {
		e.err(diag.EvalBadIndex, expr.Y.Span, "index %g is not representable", raw)
		return Value{}, false
	}
	if i < 0 || i >= len(arr.Elems) {
		e.err(diag.EvalIndexOutOfBounds, expr.Span,
			"index %d out of bounds for array of length %d", i, len(arr.Elems))
		return Value{}, false
	}
	return ScalarValue(arr.Elems[i]), true
}

// mapElems applies f to the scalar or to every array element.
func mapElems(v Value, f func(units.Quantity) units.Quantity) Value {
	if !v.IsArray() {
		return ScalarValue(f(v.Scalar))
	}
	out := make([]units.Quantity, len(v.Elems))
	for i, q := range v.Elems {
		out[i] = f(q)
	}
	return ArrayValue(out)
}
