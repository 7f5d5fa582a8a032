package parser

import (
	"recalc/internal/ast"
	"recalc/internal/diag"
	"recalc/internal/source"
	"recalc/internal/token"
)

// Parser — состояние разбора одного выражения. Работает по готовому срезу
// токенов (поток всегда завершён EOF-токеном).
type Parser struct {
	toks     []token.Token
	pos      int
	reporter diag.Reporter
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// Parse builds the expression tree for a full token stream. On malformed
// input it reports exactly one syntax diagnostic carrying the expectation
// and the span reached, and returns ok=false. The input must be the
// complete stream for one expression: trailing tokens after the parsed
// expression are an error.
func Parse(toks []token.Token, reporter diag.Reporter) (*ast.Expr, bool) {
	p := &Parser{toks: toks, reporter: reporter}

	expr, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if !p.at(token.EOF) {
		p.err(diag.SynUnexpectedToken, "unexpected "+p.peek().Kind.String()+" after expression")
		return nil, false
	}
	return expr, true
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		// потока без EOF не бывает, но на всякий случай
		return token.Token{Kind: token.EOF, Span: p.lastSpan.After()}
	}
	return p.toks[p.pos]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// advance — съедает следующий токен и обновляет lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagSpan — лучший span для диагностики: на EOF указываем позицию сразу
// за последним съеденным токеном, а не нулевой спан.
func (p *Parser) diagSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && !p.lastSpan.Empty() {
		return p.lastSpan.After()
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.err(code, msg)
	return token.Token{Kind: token.Invalid, Span: p.diagSpan()}, false
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.reporter != nil {
		p.reporter.Report(code, sev, sp, msg, nil)
	}
}
