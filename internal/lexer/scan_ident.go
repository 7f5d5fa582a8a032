package lexer

import (
	"recalc/internal/token"
)

// scanIdent сканирует имя переменной в исходном LaTeX-написании.
// Порядок специфичности (решает, где имя заканчивается):
//   - Name_{sub}  — многобуквенное имя с подскриптом в скобках, один токен;
//   - Name_sub    — то же с простым подскриптом;
//   - x1          — буква+цифры (внутренняя «короткая» форма);
//   - x           — одиночная буква, самый низкий приоритет.
//
// Многобуквенный прогон всегда остаётся одним токеном: "kg" никогда не
// распадается на k*g.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()

	lx.scanLetterRun()
	runLen := lx.cursor.Off - uint32(start)

	switch {
	case lx.cursor.Peek() == '_':
		lx.scanSubscript()
	case runLen == 1 && isDec(lx.cursor.Peek()):
		// буква+цифры: x1, C2
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Ident,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanLetterRun съедает непрерывный прогон букв (ASCII fast-path, юникод
// через руны — готовые греческие буквы, µ и т.п.).
func (lx *Lexer) scanLetterRun() {
	for {
		b := lx.cursor.Peek()
		if isLetterByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b >= utf8RuneSelf {
			if r, _ := lx.peekRune(); isLetterRune(r) {
				lx.bumpRune()
				continue
			}
		}
		return
	}
}

// scanSubscript съедает '_' и подскрипт: либо {..} со вложенностью, либо
// простой буквенно-цифровой прогон. Если после '_' ни того ни другого,
// подчёркивание не входит в имя.
func (lx *Lexer) scanSubscript() {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // '_'

	if lx.cursor.Eat('{') {
		depth := 1
		for depth > 0 && !lx.cursor.EOF() {
			switch lx.cursor.Bump() {
			case '{':
				depth++
			case '}':
				depth--
			}
		}
		return
	}

	if isAlnumByte(lx.cursor.Peek()) {
		for isAlnumByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return
	}

	// одиночный '_' не принадлежит имени
	lx.cursor.Reset(mark)
}
