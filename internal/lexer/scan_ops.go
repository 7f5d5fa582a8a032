package lexer

import (
	"recalc/internal/token"
)

// scanOperatorOrBracket сканирует однобайтовые операторы и скобки.
func (lx *Lexer) scanOperatorOrBracket() (token.Token, bool) {
	var kind token.Kind
	switch lx.cursor.Peek() {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '^':
		kind = token.Caret
	case ',':
		kind = token.Comma
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	default:
		return token.Token{}, false
	}

	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}, true
}
