package ast

import (
	"terbium/internal/source"
)

// Exprs manages allocation of expression nodes and their payloads.
type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[ExprIdentData]
	Literals *Arena[ExprLiteralData]
	Unaries  *Arena[ExprUnaryData]
	Binaries *Arena[ExprBinaryData]
	Groups   *Arena[ExprGroupData]
	Ifs      *Arena[ExprIfData]
	Whiles   *Arena[ExprWhileData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated to capHint.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[ExprIdentData](capHint),
		Literals: NewArena[ExprLiteralData](capHint),
		Unaries:  NewArena[ExprUnaryData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
		Groups:   NewArena[ExprGroupData](capHint),
		Ifs:      NewArena[ExprIfData](capHint / 4),
		Whiles:   NewArena[ExprWhileData](capHint / 4),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

// Get returns the expression node for id, or nil for NoExprID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewIdent allocates an identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	return e.new(ExprIdent, span, e.Idents.Allocate(ExprIdentData{Name: name}))
}

// NewLit allocates a literal expression.
func (e *Exprs) NewLit(span source.Span, data ExprLiteralData) ExprID {
	return e.new(ExprLit, span, e.Literals.Allocate(data))
}

// NewUnary allocates a unary expression.
func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, opSpan source.Span, value ExprID) ExprID {
	return e.new(ExprUnary, span, e.Unaries.Allocate(ExprUnaryData{Op: op, OpSpan: opSpan, Value: value}))
}

// NewBinary allocates a binary expression.
func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, opSpan source.Span, left, right ExprID) ExprID {
	return e.new(ExprBinary, span, e.Binaries.Allocate(ExprBinaryData{Op: op, OpSpan: opSpan, Left: left, Right: right}))
}

// NewGroup allocates a parenthesized expression.
func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	return e.new(ExprGroup, span, e.Groups.Allocate(ExprGroupData{Inner: inner}))
}

// NewIf allocates an if expression.
func (e *Exprs) NewIf(span source.Span, data ExprIfData) ExprID {
	return e.new(ExprIf, span, e.Ifs.Allocate(data))
}

// NewWhile allocates a while expression.
func (e *Exprs) NewWhile(span source.Span, data ExprWhileData) ExprID {
	return e.new(ExprWhile, span, e.Whiles.Allocate(data))
}

// Ident returns the identifier payload for id, or (nil, false) on a kind
// mismatch.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// Lit returns the literal payload for id.
func (e *Exprs) Lit(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// Unary returns the unary payload for id.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// Binary returns the binary payload for id.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// Group returns the group payload for id.
func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}

// If returns the if payload for id.
func (e *Exprs) If(id ExprID) (*ExprIfData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIf {
		return nil, false
	}
	return e.Ifs.Get(uint32(expr.Payload)), true
}

// While returns the while payload for id.
func (e *Exprs) While(id ExprID) (*ExprWhileData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprWhile {
		return nil, false
	}
	return e.Whiles.Get(uint32(expr.Payload)), true
}
