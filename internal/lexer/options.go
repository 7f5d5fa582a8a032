package lexer

import (
	"recalc/internal/diag"
	"recalc/internal/source"
)

// Options настраивают лексер. Reporter может быть nil — тогда пропуски
// нераспознанных символов остаются незамеченными (но лексинг продолжается:
// токенизация тотальна и никогда не падает).
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}
