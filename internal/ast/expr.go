package ast

import (
	"recalc/internal/source"
)

// ExprKind tags the closed set of expression node variants. Consumers switch
// over it exhaustively; adding a kind must touch every switch.
type ExprKind uint8

const (
	// ExprNumber is a numeric literal; Value holds the parsed float.
	ExprNumber ExprKind = iota
	// ExprIdent is a variable reference; Name keeps the original LaTeX-ish
	// spelling, braces and subscripts included.
	ExprIdent
	// ExprBinary applies Op to X and Y.
	ExprBinary
	// ExprUnary negates X; Op is always OpSub.
	ExprUnary
	// ExprFraction is \frac{X}{Y}; semantically a division.
	ExprFraction
	// ExprUnitAttach attaches or rescales the unit named Unit onto X.
	ExprUnitAttach
	// ExprArray is a fixed-length literal; Elems are in declared order.
	ExprArray
	// ExprIndex selects Y-th element of X; postfix and chainable.
	ExprIndex
)

func (k ExprKind) String() string {
	switch k {
	case ExprNumber:
		return "Number"
	case ExprIdent:
		return "Ident"
	case ExprBinary:
		return "Binary"
	case ExprUnary:
		return "Unary"
	case ExprFraction:
		return "Fraction"
	case ExprUnitAttach:
		return "UnitAttach"
	case ExprArray:
		return "Array"
	case ExprIndex:
		return "Index"
	}
	return "Unknown"
}

// BinOp enumerates binary operators.
type BinOp uint8

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	}
	return "?"
}

// Expr is one node of the expression tree. Which payload fields are
// meaningful depends on Kind (see the kind constants). Trees are immutable
// and acyclic after parsing; Span always covers the source text the node
// was built from.
type Expr struct {
	Kind ExprKind
	Span source.Span

	Op    BinOp   // Binary, Unary
	X     *Expr   // Binary left, Unary operand, Fraction numerator, UnitAttach inner, Index array
	Y     *Expr   // Binary right, Fraction denominator, Index subscript
	Elems []*Expr // Array elements, declared order

	Value float64 // Number
	Name  string  // Ident
	Unit  string  // UnitAttach
}

func NewNumber(sp source.Span, value float64) *Expr {
	return &Expr{Kind: ExprNumber, Span: sp, Value: value}
}

func NewIdent(sp source.Span, name string) *Expr {
	return &Expr{Kind: ExprIdent, Span: sp, Name: name}
}

func NewBinary(sp source.Span, op BinOp, x, y *Expr) *Expr {
	return &Expr{Kind: ExprBinary, Span: sp, Op: op, X: x, Y: y}
}

func NewUnary(sp source.Span, x *Expr) *Expr {
	return &Expr{Kind: ExprUnary, Span: sp, Op: OpSub, X: x}
}

func NewFraction(sp source.Span, num, denom *Expr) *Expr {
	return &Expr{Kind: ExprFraction, Span: sp, X: num, Y: denom}
}

func NewUnitAttach(sp source.Span, x *Expr, unit string) *Expr {
	return &Expr{Kind: ExprUnitAttach, Span: sp, X: x, Unit: unit}
}

func NewArray(sp source.Span, elems []*Expr) *Expr {
	return &Expr{Kind: ExprArray, Span: sp, Elems: elems}
}

func NewIndex(sp source.Span, arr, idx *Expr) *Expr {
	return &Expr{Kind: ExprIndex, Span: sp, X: arr, Y: idx}
}
