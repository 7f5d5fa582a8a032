package diag

import (
	"fmt"
)

// Code identifies a diagnostic condition. Ranges are per phase:
// 1xxx lexical, 2xxx syntactic, 3xxx evaluation.
type Code uint16

const (
	// Неизвестная ошибка — на первое время.
	UnknownCode Code = 0

	// Лексические
	LexInfo        Code = 1000
	LexSkippedChar Code = 1001
	LexSplitIdent  Code = 1002

	// Парсерные
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynUnexpectedEOF    Code = 2002
	SynUnclosedParen    Code = 2003
	SynUnclosedBrace    Code = 2004
	SynUnclosedBracket  Code = 2005
	SynExpectExpression Code = 2006

	// Вычислительные
	EvalInfo              Code = 3000
	EvalUndefinedVariable Code = 3001
	EvalUnknownUnit       Code = 3002
	EvalDimensionMismatch Code = 3003
	EvalBadExponent       Code = 3004
	EvalIndexOutOfBounds  Code = 3005
	EvalNonArrayIndex     Code = 3006
	EvalSizeMismatch      Code = 3007
	EvalBadIndex          Code = 3008
	EvalTimeout           Code = 3009
	EvalNestedArray       Code = 3010
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown condition",

	LexInfo:        "lexical note",
	LexSkippedChar: "unrecognized character skipped",
	LexSplitIdent:  "possible accidentally split identifier",

	SynInfo:             "syntactic note",
	SynUnexpectedToken:  "unexpected token",
	SynUnexpectedEOF:    "unexpected end of expression",
	SynUnclosedParen:    "unclosed parenthesis",
	SynUnclosedBrace:    "unclosed brace",
	SynUnclosedBracket:  "unclosed bracket",
	SynExpectExpression: "expected expression",

	EvalInfo:              "evaluation note",
	EvalUndefinedVariable: "undefined variable",
	EvalUnknownUnit:       "unknown unit",
	EvalDimensionMismatch: "incompatible dimensions",
	EvalBadExponent:       "exponent must be dimensionless",
	EvalIndexOutOfBounds:  "index out of bounds",
	EvalNonArrayIndex:     "indexing a non-array value",
	EvalSizeMismatch:      "array size mismatch",
	EvalBadIndex:          "index must be a dimensionless number",
	EvalTimeout:           "evaluation deadline exceeded",
	EvalNestedArray:       "arrays cannot be nested",
}

// ID returns the short stable identifier, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVAL%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
