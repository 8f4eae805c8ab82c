package parser

import (
	"terbium/internal/ast"
	"terbium/internal/source"
	"terbium/internal/token"
)

// parseStmt parses one statement. topLevel relaxes nothing today but
// keeps the call sites honest about where they are.
func (p *Parser) parseStmt(topLevel bool) (ast.StmtID, error) {
	_ = topLevel
	switch p.peek().Kind {
	case token.KwLet, token.KwConst:
		return p.parseDeclare()
	default:
		if p.startsAssign() {
			return p.parseAssign()
		}
		return p.parseExprStmt()
	}
}

// startsAssign backtracks over a tentative target list and reports
// whether '=' follows. Array patterns are unambiguous here because the
// expression grammar has no bracket literals.
func (p *Parser) startsAssign() bool {
	save := p.pos
	defer func() { p.pos = save }()

	for {
		if !p.skipTarget() {
			return false
		}
		if p.eat(token.Comma) {
			continue
		}
		return p.at(token.Assign)
	}
}

func (p *Parser) skipTarget() bool {
	switch p.peek().Kind {
	case token.Ident:
		p.next()
		return true
	case token.LBracket:
		p.next()
		for !p.at(token.RBracket) {
			if !p.skipTarget() {
				return false
			}
			if !p.eat(token.Comma) {
				break
			}
		}
		return p.eat(token.RBracket)
	default:
		return false
	}
}

func (p *Parser) parseDeclare() (ast.StmtID, error) {
	kw := p.next() // let or const
	isConst := kw.Kind == token.KwConst
	isMut := p.eat(token.KwMut)

	targets, err := p.parseTargetList()
	if err != nil {
		return ast.NoStmtID, err
	}

	typeExpr := ast.NoTypeExprID
	if p.eat(token.Colon) {
		typeExpr, err = p.parseTypeExpr()
		if err != nil {
			return ast.NoStmtID, err
		}
	}

	value := ast.NoExprID
	if p.eat(token.Assign) {
		value, err = p.parseExpr()
		if err != nil {
			return ast.NoStmtID, err
		}
	}

	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return ast.NoStmtID, err
	}

	return p.arenas.Stmts.NewDeclare(kw.Span.Cover(semi.Span), ast.StmtDeclareData{
		Targets: targets,
		Type:    typeExpr,
		Value:   value,
		IsMut:   isMut,
		IsConst: isConst,
	}), nil
}

func (p *Parser) parseAssign() (ast.StmtID, error) {
	start := p.peek().Span

	targets, err := p.parseTargetList()
	if err != nil {
		return ast.NoStmtID, err
	}
	if _, err := p.expect(token.Assign); err != nil {
		return ast.NoStmtID, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return ast.NoStmtID, err
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return ast.NoStmtID, err
	}

	return p.arenas.Stmts.NewAssign(start.Cover(semi.Span), ast.StmtAssignData{
		Targets: targets,
		Value:   value,
	}), nil
}

func (p *Parser) parseExprStmt() (ast.StmtID, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return ast.NoStmtID, err
	}
	span := p.arenas.Exprs.Get(expr).Span

	terminated := false
	if p.at(token.Semicolon) {
		semi := p.next()
		span = span.Cover(semi.Span)
		terminated = true
	}
	return p.arenas.Stmts.NewExprStmt(span, ast.StmtExprData{Expr: expr, Terminated: terminated}), nil
}

func (p *Parser) parseTargetList() ([]ast.TargetID, error) {
	var targets []ast.TargetID
	for {
		t, err := p.parseTarget()
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
		if !p.eat(token.Comma) {
			return targets, nil
		}
	}
}

func (p *Parser) parseTarget() (ast.TargetID, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.next()
		return p.arenas.Targets.NewIdent(tok.Span, p.intern(tok.Text)), nil

	case token.LBracket:
		open := p.next()
		var elems []ast.TargetID
		for !p.at(token.RBracket) {
			elem, err := p.parseTarget()
			if err != nil {
				return ast.NoTargetID, err
			}
			elems = append(elems, elem)
			if !p.eat(token.Comma) {
				break
			}
		}
		closeTok, err := p.expect(token.RBracket)
		if err != nil {
			return ast.NoTargetID, err
		}
		return p.arenas.Targets.NewArray(open.Span.Cover(closeTok.Span), elems), nil
	}
	return ast.NoTargetID, p.errorf(tok, "expected binding target, found %s", tok.Kind)
}

// parseBody parses a braced statement list. The body yields its last
// statement's value when that statement is an unterminated expression.
func (p *Parser) parseBody() (ast.BodyID, source.Span, error) {
	open, err := p.expect(token.LBrace)
	if err != nil {
		return ast.NoBodyID, source.Span{}, err
	}

	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, err := p.parseStmt(false)
		if err != nil {
			return ast.NoBodyID, source.Span{}, err
		}
		stmts = append(stmts, stmt)
	}
	closeTok, err := p.expect(token.RBrace)
	if err != nil {
		return ast.NoBodyID, source.Span{}, err
	}

	returnsLast := false
	if len(stmts) > 0 {
		if data, ok := p.arenas.Stmts.ExprStmt(stmts[len(stmts)-1]); ok && !data.Terminated {
			returnsLast = true
		}
	}

	span := open.Span.Cover(closeTok.Span)
	body := p.arenas.Bodies.New(ast.BodyData{Span: span, Stmts: stmts, ReturnsLast: returnsLast})
	return body, span, nil
}
