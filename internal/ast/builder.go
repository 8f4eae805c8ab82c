package ast

import (
	"terbium/internal/source"
)

// Hints sizes the builder's arenas up front.
type Hints struct{ Modules, Stmts, Exprs, Targets, Types uint }

// Builder owns every arena for one or more parsed modules, plus the string
// interner shared with the lexer.
type Builder struct {
	Modules   *Modules
	Stmts     *Stmts
	Exprs     *Exprs
	Targets   *Targets
	TypeExprs *TypeExprs
	Bodies    *Bodies
	Strings   *source.Interner
}

// NewBuilder constructs a Builder. A nil interner gets a fresh one.
func NewBuilder(hints Hints, strings *source.Interner) *Builder {
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Builder{
		Modules:   NewModules(hints.Modules),
		Stmts:     NewStmts(hints.Stmts),
		Exprs:     NewExprs(hints.Exprs),
		Targets:   NewTargets(hints.Targets),
		TypeExprs: NewTypeExprs(hints.Types),
		Bodies:    NewBodies(hints.Stmts / 4),
		Strings:   strings,
	}
}

// PushStmt appends a top-level statement to the module.
func (b *Builder) PushStmt(module ModuleID, stmt StmtID) {
	m := b.Modules.Get(module)
	m.Stmts = append(m.Stmts, stmt)
	m.Span = m.Span.Cover(b.Stmts.Get(stmt).Span)
}

// StringOf resolves an interned name.
func (b *Builder) StringOf(id source.StringID) string {
	return b.Strings.MustLookup(id)
}
