package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"recalc/internal/ast"
	"recalc/internal/source"
)

// Tree печатает дерево выражения с отступами; по строке на узел,
// метка — вид узла и его полезная нагрузка, затем спан.
func Tree(w io.Writer, expr *ast.Expr, fs *source.FileSet) {
	writeTreeNode(w, expr, fs, "", "")
}

func writeTreeNode(w io.Writer, expr *ast.Expr, fs *source.FileSet, prefix, childPrefix string) {
	if expr == nil {
		fmt.Fprintf(w, "%s<nil>\n", prefix)
		return
	}
	fmt.Fprintf(w, "%s%s (%s)\n", prefix, nodeLabel(expr), formatSpan(expr.Span, fs))

	children := nodeChildren(expr)
	for i, child := range children {
		connector, nested := "├── ", "│   "
		if i == len(children)-1 {
			connector, nested = "└── ", "    "
		}
		writeTreeNode(w, child, fs, childPrefix+connector, childPrefix+nested)
	}
}

func nodeLabel(expr *ast.Expr) string {
	switch expr.Kind {
	case ast.ExprNumber:
		return "Number " + strconv.FormatFloat(expr.Value, 'g', -1, 64)
	case ast.ExprIdent:
		return "Ident " + expr.Name
	case ast.ExprBinary:
		return "Binary " + expr.Op.String()
	case ast.ExprUnary:
		return "Unary -"
	case ast.ExprFraction:
		return "Fraction"
	case ast.ExprUnitAttach:
		return "UnitAttach " + expr.Unit
	case ast.ExprArray:
		return fmt.Sprintf("Array[%d]", len(expr.Elems))
	case ast.ExprIndex:
		return "Index"
	}
	return expr.Kind.String()
}

func nodeChildren(expr *ast.Expr) []*ast.Expr {
	switch expr.Kind {
	case ast.ExprArray:
		return expr.Elems
	default:
		out := make([]*ast.Expr, 0, 2)
		if expr.X != nil {
			out = append(out, expr.X)
		}
		if expr.Y != nil {
			out = append(out, expr.Y)
		}
		return out
	}
}

func formatSpan(sp source.Span, fs *source.FileSet) string {
	if fs == nil {
		return sp.String()
	}
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}
