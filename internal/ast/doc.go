// Package ast defines the expression tree produced by the parser and walked
// by the evaluator. Nodes form a closed tagged union over ExprKind; trees
// are built per expression evaluation and discarded afterwards.
package ast
