package lexer

import (
	"recalc/internal/diag"
	"recalc/internal/source"
	"recalc/internal/token"
)

// Lexer converts expression text into tokens. Tokenization is total: it
// never fails, and after the input is exhausted Next always returns EOF.
// Unrecognized characters produce no token; they are skipped and, with a
// Reporter attached, reported as LexSkippedChar.
//
// Priority is resolved by the dispatch in Next plus the scan functions:
// wrapped unit names and backslash commands win over everything, numeric
// literals over identifiers, multi-letter identifiers over single letters.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1-элементный буфер для Peek
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Tokenize scans the whole file and returns its tokens, EOF included.
func Tokenize(file *source.File, reporter diag.Reporter) []token.Token {
	lx := New(file, Options{Reporter: reporter})
	toks := make([]token.Token, 0, 16)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить.
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		// 2) EOF → вернуть EOF.
		if lx.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Span: lx.EmptySpan(),
				Text: "",
			}
		}

		// 3) Посмотреть текущий байт и выбрать сканер.
		ch := lx.cursor.Peek()

		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()

		case ch == '\\':
			// Команда: юнит-обёртка, \frac, \cdot, греческая буква, пробел...
			if tok, ok := lx.scanCommand(); ok {
				return tok
			}
			// команда-пробел или нераспознанная — пропущена, идём дальше

		case isDec(ch), lx.isNumberAfterDot():
			return lx.scanNumber()

		case isLetterByte(ch):
			return lx.scanIdent()

		case ch >= utf8RuneSelf:
			// Юникодная буква (готовая греческая, µ и т.п.) — идентификатор.
			if r, _ := lx.peekRune(); isLetterRune(r) {
				return lx.scanIdent()
			}
			lx.skipRune()

		default:
			if tok, ok := lx.scanOperatorOrBracket(); ok {
				return tok
			}
			lx.skipRune()
		}
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns the zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// skipRune пропускает одну руну и репортит её как нераспознанную.
func (lx *Lexer) skipRune() {
	start := lx.cursor.Mark()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexSkippedChar, diag.SevInfo, sp,
		"skipped unrecognized character "+string(lx.file.Content[sp.Start:sp.End]))
}
