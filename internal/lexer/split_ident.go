package lexer

import (
	"strings"
	"unicode/utf8"

	"recalc/internal/diag"
	"recalc/internal/token"
)

// SuspectSplitIdents — эвристический диагностический проход по потоку
// токенов: помечает прогоны из двух и более одиночных буквенных
// идентификаторов подряд, между которыми нет ни оператора, ни скобок.
// Грамматика не знает неявного умножения, так что такой прогон почти
// наверняка случайно разорванное имя ("k g" вместо "kg") и парсер на нём
// споткнётся. Проход best-effort: на корректность разбора и вычисления он
// не влияет и ничего не меняет в самих токенах.
func SuspectSplitIdents(tokens []token.Token) []diag.Diagnostic {
	var out []diag.Diagnostic

	run := make([]token.Token, 0, 4)
	flush := func() {
		if len(run) >= 2 {
			sp := run[0].Span
			var joined strings.Builder
			for _, t := range run {
				sp = sp.Cover(t.Span)
				joined.WriteString(t.Text)
			}
			out = append(out, diag.New(diag.SevWarning, diag.LexSplitIdent, sp,
				"adjacent single-letter names; did you mean '"+joined.String()+"'?"))
		}
		run = run[:0]
	}

	for _, t := range tokens {
		if t.Kind == token.Ident && utf8.RuneCountInString(t.Text) == 1 {
			run = append(run, t)
			continue
		}
		flush()
	}
	flush()
	return out
}
