package driver

import (
	"recalc/internal/ast"
	"recalc/internal/diag"
	"recalc/internal/parser"
	"recalc/internal/source"
	"recalc/internal/token"
)

// ParseResult держит дерево одного выражения.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Expr    *ast.Expr
	Bag     *diag.Bag
	OK      bool
}

// Parse парсит файл с диска.
func Parse(path string, opts Options) (*ParseResult, error) {
	tr, err := Tokenize(path, opts)
	if err != nil {
		return nil, err
	}
	return parseTokens(tr), nil
}

// ParseText парсит выражение, переданное строкой.
func ParseText(name, text string, opts Options) *ParseResult {
	return parseTokens(TokenizeText(name, text, opts))
}

func parseTokens(tr *TokenizeResult) *ParseResult {
	expr, ok := parser.Parse(tr.Tokens, diag.BagReporter{Bag: tr.Bag})
	return &ParseResult{
		FileSet: tr.FileSet,
		File:    tr.File,
		Tokens:  tr.Tokens,
		Expr:    expr,
		Bag:     tr.Bag,
		OK:      ok,
	}
}
