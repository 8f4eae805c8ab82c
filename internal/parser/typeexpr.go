package parser

import (
	"strconv"
	"strings"

	"terbium/internal/ast"
	"terbium/internal/token"
)

// parseTypeExpr parses a type annotation. Intersections bind tighter
// than unions, array suffixes tighter than both.
func (p *Parser) parseTypeExpr() (ast.TypeExprID, error) {
	return p.parseTypeUnion()
}

func (p *Parser) parseTypeUnion() (ast.TypeExprID, error) {
	left, err := p.parseTypeAnd()
	if err != nil {
		return ast.NoTypeExprID, err
	}
	for p.eat(token.Pipe) {
		right, err := p.parseTypeAnd()
		if err != nil {
			return ast.NoTypeExprID, err
		}
		span := p.arenas.TypeExprs.Get(left).Span.Cover(p.arenas.TypeExprs.Get(right).Span)
		left = p.arenas.TypeExprs.NewUnion(span, left, right)
	}
	return left, nil
}

func (p *Parser) parseTypeAnd() (ast.TypeExprID, error) {
	left, err := p.parseTypePostfix()
	if err != nil {
		return ast.NoTypeExprID, err
	}
	for p.eat(token.Amp) {
		right, err := p.parseTypePostfix()
		if err != nil {
			return ast.NoTypeExprID, err
		}
		span := p.arenas.TypeExprs.Get(left).Span.Cover(p.arenas.TypeExprs.Get(right).Span)
		left = p.arenas.TypeExprs.NewAnd(span, left, right)
	}
	return left, nil
}

func (p *Parser) parseTypePostfix() (ast.TypeExprID, error) {
	inner, err := p.parseTypePrimary()
	if err != nil {
		return ast.NoTypeExprID, err
	}
	for p.at(token.LBracket) {
		open := p.next()
		length := ast.ArrayUnsized
		if p.at(token.IntLit) {
			tok := p.next()
			n, err := strconv.ParseUint(strings.ReplaceAll(tok.Text, "_", ""), 0, 32)
			if err != nil {
				return ast.NoTypeExprID, p.errorf(tok, "invalid array length %q", tok.Text)
			}
			length = uint32(n)
		}
		closeTok, err := p.expect(token.RBracket)
		if err != nil {
			return ast.NoTypeExprID, err
		}
		span := p.arenas.TypeExprs.Get(inner).Span.Cover(open.Span).Cover(closeTok.Span)
		inner = p.arenas.TypeExprs.NewArray(span, inner, length)
	}
	return inner, nil
}

func (p *Parser) parseTypePrimary() (ast.TypeExprID, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.Question:
		p.next()
		inner, err := p.parseTypePostfix()
		if err != nil {
			return ast.NoTypeExprID, err
		}
		span := tok.Span.Cover(p.arenas.TypeExprs.Get(inner).Span)
		return p.arenas.TypeExprs.NewOptional(span, inner), nil

	case token.Ident, token.KwNull:
		p.next()
		return p.arenas.TypeExprs.NewName(tok.Span, p.intern(tok.Text)), nil

	case token.LBracket:
		open := p.next()
		var elems []ast.TypeExprID
		for !p.at(token.RBracket) {
			elem, err := p.parseTypeExpr()
			if err != nil {
				return ast.NoTypeExprID, err
			}
			elems = append(elems, elem)
			if !p.eat(token.Comma) {
				break
			}
		}
		closeTok, err := p.expect(token.RBracket)
		if err != nil {
			return ast.NoTypeExprID, err
		}
		return p.arenas.TypeExprs.NewTuple(open.Span.Cover(closeTok.Span), elems), nil

	case token.LParen:
		open := p.next()
		var params []ast.TypeExprID
		for !p.at(token.RParen) {
			param, err := p.parseTypeExpr()
			if err != nil {
				return ast.NoTypeExprID, err
			}
			params = append(params, param)
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, err := p.expect(token.RParen); err != nil {
			return ast.NoTypeExprID, err
		}
		if !p.at(token.Arrow) {
			// A parenthesized single type is just grouping.
			if len(params) == 1 {
				return params[0], nil
			}
			return ast.NoTypeExprID, p.errorf(p.peek(), "expected -> after parameter list")
		}
		p.next() // ->
		ret, err := p.parseTypeExpr()
		if err != nil {
			return ast.NoTypeExprID, err
		}
		span := open.Span.Cover(p.arenas.TypeExprs.Get(ret).Span)
		return p.arenas.TypeExprs.NewFunc(span, params, ret), nil
	}

	return ast.NoTypeExprID, p.errorf(tok, "expected type, found %s", tok.Kind)
}
