package parser

import (
	"strconv"
	"strings"

	"terbium/internal/ast"
	"terbium/internal/token"
)

// parseExpr is the precedence-climbing entry point.
func (p *Parser) parseExpr() (ast.ExprID, error) {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(minPower uint8) (ast.ExprID, error) {
	left, err := p.parseUnary()
	if err != nil {
		return ast.NoExprID, err
	}

	for {
		info, ok := binOps[p.peek().Kind]
		if !ok || info.power < minPower {
			return left, nil
		}
		opTok := p.next()

		nextMin := info.power + 1
		if info.rightAssoc {
			nextMin = info.power
		}
		right, err := p.parseBinary(nextMin)
		if err != nil {
			return ast.NoExprID, err
		}

		span := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewBinary(span, info.op, opTok.Span, left, right)
	}
}

func (p *Parser) parseUnary() (ast.ExprID, error) {
	op, ok := unaryOps[p.peek().Kind]
	if !ok {
		return p.parsePrimary()
	}
	opTok := p.next()

	// Prefix chains like !!x nest naturally.
	value, err := p.parseBinary(unaryPower)
	if err != nil {
		return ast.NoExprID, err
	}
	span := opTok.Span.Cover(p.arenas.Exprs.Get(value).Span)
	return p.arenas.Exprs.NewUnary(span, op, opTok.Span, value), nil
}

func (p *Parser) parsePrimary() (ast.ExprID, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.next()
		return p.arenas.Exprs.NewIdent(tok.Span, p.intern(tok.Text)), nil

	case token.IntLit:
		p.next()
		v, err := strconv.ParseInt(strings.ReplaceAll(tok.Text, "_", ""), 0, 64)
		if err != nil {
			return ast.NoExprID, p.errorf(tok, "invalid integer literal %q", tok.Text)
		}
		return p.arenas.Exprs.NewLit(tok.Span, ast.ExprLiteralData{Kind: ast.LitInt, IntVal: v}), nil

	case token.FloatLit:
		p.next()
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok.Text, "_", ""), 64)
		if err != nil {
			return ast.NoExprID, p.errorf(tok, "invalid float literal %q", tok.Text)
		}
		return p.arenas.Exprs.NewLit(tok.Span, ast.ExprLiteralData{Kind: ast.LitFloat, FloatVal: v}), nil

	case token.StringLit:
		p.next()
		data := ast.ExprLiteralData{Kind: ast.LitString, StrVal: p.intern(tok.Text)}
		return p.arenas.Exprs.NewLit(tok.Span, data), nil

	case token.KwTrue, token.KwFalse:
		p.next()
		data := ast.ExprLiteralData{Kind: ast.LitBool, BoolVal: tok.Kind == token.KwTrue}
		return p.arenas.Exprs.NewLit(tok.Span, data), nil

	case token.KwNull:
		p.next()
		return p.arenas.Exprs.NewLit(tok.Span, ast.ExprLiteralData{Kind: ast.LitNull}), nil

	case token.LParen:
		open := p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return ast.NoExprID, err
		}
		closeTok, err := p.expect(token.RParen)
		if err != nil {
			return ast.NoExprID, err
		}
		return p.arenas.Exprs.NewGroup(open.Span.Cover(closeTok.Span), inner), nil

	case token.KwIf:
		return p.parseIf()

	case token.KwWhile:
		return p.parseWhile()
	}

	return ast.NoExprID, p.errorf(tok, "expected expression, found %s", tok.Kind)
}

func (p *Parser) parseIf() (ast.ExprID, error) {
	kw := p.next() // if

	cond, err := p.parseExpr()
	if err != nil {
		return ast.NoExprID, err
	}
	body, bodySpan, err := p.parseBody()
	if err != nil {
		return ast.NoExprID, err
	}

	data := ast.ExprIfData{Then: ast.IfBranch{Cond: cond, Body: body}}
	span := kw.Span.Cover(bodySpan)

	for p.at(token.KwElse) {
		p.next()
		if p.at(token.KwIf) {
			p.next()
			elifCond, err := p.parseExpr()
			if err != nil {
				return ast.NoExprID, err
			}
			elifBody, elifSpan, err := p.parseBody()
			if err != nil {
				return ast.NoExprID, err
			}
			data.ElseIfs = append(data.ElseIfs, ast.IfBranch{Cond: elifCond, Body: elifBody})
			span = span.Cover(elifSpan)
			continue
		}
		elseBody, elseSpan, err := p.parseBody()
		if err != nil {
			return ast.NoExprID, err
		}
		data.Else = elseBody
		span = span.Cover(elseSpan)
		break
	}

	return p.arenas.Exprs.NewIf(span, data), nil
}

func (p *Parser) parseWhile() (ast.ExprID, error) {
	kw := p.next() // while

	cond, err := p.parseExpr()
	if err != nil {
		return ast.NoExprID, err
	}
	body, bodySpan, err := p.parseBody()
	if err != nil {
		return ast.NoExprID, err
	}
	span := kw.Span.Cover(bodySpan)
	return p.arenas.Exprs.NewWhile(span, ast.ExprWhileData{Cond: cond, Body: body}), nil
}
