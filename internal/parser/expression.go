package parser

import (
	"strconv"

	"recalc/internal/ast"
	"recalc/internal/diag"
	"recalc/internal/token"
)

// Грамматика, от низкого приоритета к высокому; всё левоассоциативно,
// кроме правоассоциативной степени:
//
//	expr       := additive
//	additive   := multiplicative (("+"|"-") multiplicative)*
//	multiplicative := unary (("*"|"/") unary)*
//	unary      := "-" unary | power
//	power      := postfix ("^" unary)?
//	postfix    := primary ("[" expr "]")*
//	primary    := NUMBER | IDENT | "(" expr ")" | FRAC "{" expr "}" "{" expr "}"
//	            | "[" (expr ("," expr)*)? "]"
//	            с опциональным хвостовым UNIT после любого primary

func (p *Parser) parseExpr() (*ast.Expr, bool) {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() (*ast.Expr, bool) {
	left, ok := p.parseMultiplicative()
	if !ok {
		return nil, false
	}
	for {
		var op ast.BinOp
		switch p.peek().Kind {
		case token.Plus:
			op = ast.OpAdd
		case token.Minus:
			op = ast.OpSub
		default:
			return left, true
		}
		p.advance()
		right, ok := p.parseMultiplicative()
		if !ok {
			return nil, false
		}
		left = ast.NewBinary(left.Span.Cover(right.Span), op, left, right)
	}
}

func (p *Parser) parseMultiplicative() (*ast.Expr, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		var op ast.BinOp
		switch p.peek().Kind {
		case token.Star:
			op = ast.OpMul
		case token.Slash:
			op = ast.OpDiv
		default:
			return left, true
		}
		p.advance()
		right, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		left = ast.NewBinary(left.Span.Cover(right.Span), op, left, right)
	}
}

func (p *Parser) parseUnary() (*ast.Expr, bool) {
	if p.at(token.Minus) {
		minus := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return ast.NewUnary(minus.Span.Cover(operand.Span), operand), true
	}
	return p.parsePower()
}

// parsePower: правый операнд степени — снова unary, поэтому
// 2^3^2 == 2^(3^2) и 2^-3 разрешён.
func (p *Parser) parsePower() (*ast.Expr, bool) {
	base, ok := p.parsePostfix()
	if !ok {
		return nil, false
	}
	if !p.at(token.Caret) {
		return base, true
	}
	p.advance()
	exp, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	return ast.NewBinary(base.Span.Cover(exp.Span), ast.OpPow, base, exp), true
}

// parsePostfix обрабатывает цепочки индексации: arr[0][1].
func (p *Parser) parsePostfix() (*ast.Expr, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for p.at(token.LBracket) {
		p.advance()
		idx, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		close, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after index")
		if !ok {
			return nil, false
		}
		expr = ast.NewIndex(expr.Span.Cover(close.Span), expr, idx)
	}
	return expr, true
}

func (p *Parser) parsePrimary() (*ast.Expr, bool) {
	var expr *ast.Expr

	switch tok := p.peek(); tok.Kind {
	case token.Number:
		p.advance()
		value, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			// лексер не должен такое выдавать
			p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, "malformed number "+strconv.Quote(tok.Text))
			return nil, false
		}
		expr = ast.NewNumber(tok.Span, value)

	case token.Ident:
		p.advance()
		expr = ast.NewIdent(tok.Span, tok.Text)

	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		close, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		if !ok {
			return nil, false
		}
		// скобки не порождают узла, но расширяют span
		expr = &ast.Expr{}
		*expr = *inner
		expr.Span = tok.Span.Cover(close.Span)

	case token.Frac:
		p.advance()
		num, denom, ok := p.parseFracArgs()
		if !ok {
			return nil, false
		}
		expr = ast.NewFraction(tok.Span.Cover(denom.Span).Cover(p.lastSpan), num, denom)

	case token.LBracket:
		var ok bool
		expr, ok = p.parseArrayLiteral()
		if !ok {
			return nil, false
		}

	case token.EOF:
		p.err(diag.SynUnexpectedEOF, "expected expression")
		return nil, false

	default:
		p.err(diag.SynExpectExpression, "expected expression, found "+tok.Kind.String())
		return nil, false
	}

	// опциональное хвостовое навешивание юнита
	if p.at(token.Unit) {
		unit := p.advance()
		expr = ast.NewUnitAttach(expr.Span.Cover(unit.Span), expr, unit.Text)
	}
	return expr, true
}

// parseFracArgs разбирает "{num}{denom}" после \frac.
func (p *Parser) parseFracArgs() (num, denom *ast.Expr, ok bool) {
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, `expected '{' after \frac`); !ok {
		return nil, nil, false
	}
	num, okNum := p.parseExpr()
	if !okNum {
		return nil, nil, false
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after numerator"); !ok {
		return nil, nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' before denominator"); !ok {
		return nil, nil, false
	}
	denom, okDenom := p.parseExpr()
	if !okDenom {
		return nil, nil, false
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after denominator"); !ok {
		return nil, nil, false
	}
	return num, denom, true
}

// parseArrayLiteral разбирает "[a, b, c]"; пустой литерал "[]" валиден.
// Запятая существует только здесь — как разделитель элементов.
func (p *Parser) parseArrayLiteral() (*ast.Expr, bool) {
	open := p.advance() // '['

	if p.at(token.RBracket) {
		close := p.advance()
		return ast.NewArray(open.Span.Cover(close.Span), nil), true
	}

	elems := make([]*ast.Expr, 0, 4)
	for {
		elem, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		elems = append(elems, elem)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	close, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ',' or ']' in array literal")
	if !ok {
		return nil, false
	}
	return ast.NewArray(open.Span.Cover(close.Span), elems), true
}
