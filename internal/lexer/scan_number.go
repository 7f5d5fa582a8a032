package lexer

import (
	"recalc/internal/token"
)

// scanNumber сканирует числовой литерал: 1, 2.5, .5, 1e-6, 6.022E23.
// Спан токена покрывает литерал побайтово точно.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	// ведущая точка — формат ".digits" (вызывается после isNumberAfterDot)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		lx.scanExponent()
		return lx.emitNumber(start)
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть только если за точкой идёт цифра: "1." это Number(1) + мусор
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	lx.scanExponent()
	return lx.emitNumber(start)
}

// scanExponent съедает [eE][+-]?digits, но только целиком:
// "2e" остаётся Number(2) + Ident(e), чтобы не красть константу Эйлера.
func (lx *Lexer) scanExponent() {
	b := lx.cursor.Peek()
	if b != 'e' && b != 'E' {
		return
	}
	next := lx.cursor.PeekAt(1)
	if isDec(next) {
		lx.cursor.Bump() // e
	} else if (next == '+' || next == '-') && isDec(lx.cursor.PeekAt(2)) {
		lx.cursor.Bump() // e
		lx.cursor.Bump() // sign
	} else {
		return
	}
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) emitNumber(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Number,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
