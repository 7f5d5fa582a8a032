package token

import (
	"recalc/internal/source"
)

// Token represents a single expression token with its location.
// Tokens are immutable once produced; Span always points into the
// originating file's normalized content.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsOperator reports whether the token is an arithmetic operator.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Caret:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the token opens a bracket pair.
func (t Token) IsOpen() bool {
	switch t.Kind {
	case LParen, LBrace, LBracket:
		return true
	default:
		return false
	}
}

// IsClose reports whether the token closes a bracket pair.
func (t Token) IsClose() bool {
	switch t.Kind {
	case RParen, RBrace, RBracket:
		return true
	default:
		return false
	}
}
