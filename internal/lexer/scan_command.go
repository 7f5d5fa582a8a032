package lexer

import (
	"recalc/internal/diag"
	"recalc/internal/token"
)

// unitWrappers are the roman-text commands whose argument is a unit name.
var unitWrappers = map[string]bool{
	"mathrm": true,
	"text":   true,
}

// greekLetters are the command names lexed as variable tokens.
var greekLetters = map[string]bool{
	"alpha": true, "beta": true, "gamma": true, "delta": true,
	"epsilon": true, "varepsilon": true, "zeta": true, "eta": true,
	"theta": true, "vartheta": true, "iota": true, "kappa": true,
	"lambda": true, "mu": true, "nu": true, "xi": true, "omicron": true,
	"pi": true, "varpi": true, "rho": true, "varrho": true,
	"sigma": true, "varsigma": true, "tau": true, "upsilon": true,
	"phi": true, "varphi": true, "chi": true, "psi": true, "omega": true,
	"Gamma": true, "Delta": true, "Theta": true, "Lambda": true,
	"Xi": true, "Pi": true, "Sigma": true, "Upsilon": true,
	"Phi": true, "Psi": true, "Omega": true,
}

// spacingCommands are consumed without emitting a token.
var spacingCommands = map[string]bool{
	"quad": true, "qquad": true,
}

// scanCommand разбирает конструкцию, начинающуюся с '\'. Возвращает
// (token, true) для токен-образующих команд; (zero, false) если команда —
// пробельная или нераспознанная (курсор при этом продвинут за неё).
func (lx *Lexer) scanCommand() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'

	// '\\' — перенос строки, токен не порождает
	if lx.cursor.Eat('\\') {
		return token.Token{}, false
	}

	// однобуквенные пробельные команды: \, \; \: \!
	switch lx.cursor.Peek() {
	case ',', ';', ':', '!':
		lx.cursor.Bump()
		return token.Token{}, false
	}

	// имя команды
	nameStart := lx.cursor.Mark()
	for isLetterByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	nameSpan := lx.cursor.SpanFrom(nameStart)
	name := string(lx.file.Content[nameSpan.Start:nameSpan.End])

	switch {
	case name == "":
		// одинокий '\' в конце или перед не-буквой
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexSkippedChar, diag.SevInfo, sp, `skipped stray '\'`)
		return token.Token{}, false

	case unitWrappers[name]:
		return lx.scanUnitWrapper(start, name)

	case name == "frac" || name == "dfrac":
		return lx.emitCommand(start, token.Frac), true

	case name == "cdot" || name == "times":
		return lx.emitCommand(start, token.Star), true

	case name == "left":
		if lx.cursor.Eat('(') {
			return lx.emitCommand(start, token.LParen), true
		}
		if lx.cursor.Eat('[') {
			return lx.emitCommand(start, token.LBracket), true
		}
		// \left без поддерживаемого ограничителя — пропускаем команду
		lx.reportSkippedCommand(start, name)
		return token.Token{}, false

	case name == "right":
		if lx.cursor.Eat(')') {
			return lx.emitCommand(start, token.RParen), true
		}
		if lx.cursor.Eat(']') {
			return lx.emitCommand(start, token.RBracket), true
		}
		lx.reportSkippedCommand(start, name)
		return token.Token{}, false

	case greekLetters[name]:
		return lx.emitCommand(start, token.Ident), true

	case spacingCommands[name]:
		return token.Token{}, false

	default:
		lx.reportSkippedCommand(start, name)
		return token.Token{}, false
	}
}

// scanUnitWrapper дочитывает '{имя-юнита}' после \mathrm или \text.
// Текст токена — только внутреннее имя, спан — вся конструкция.
func (lx *Lexer) scanUnitWrapper(start Mark, wrapper string) (token.Token, bool) {
	if !lx.cursor.Eat('{') {
		lx.reportSkippedCommand(start, wrapper)
		return token.Token{}, false
	}

	innerStart := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '}' && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	innerSpan := lx.cursor.SpanFrom(innerStart)

	if !lx.cursor.Eat('}') {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexSkippedChar, diag.SevInfo, sp,
			`skipped unterminated \`+wrapper+`{...}`)
		return token.Token{}, false
	}

	return token.Token{
		Kind: token.Unit,
		Span: lx.cursor.SpanFrom(start),
		Text: string(lx.file.Content[innerSpan.Start:innerSpan.End]),
	}, true
}

func (lx *Lexer) emitCommand(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) reportSkippedCommand(start Mark, name string) {
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexSkippedChar, diag.SevInfo, sp,
		`skipped unrecognized command '\`+name+`'`)
}
