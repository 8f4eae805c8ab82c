package ast

import (
	"terbium/internal/source"
)

// Module is the root node of one compilation unit.
type Module struct {
	Span  source.Span
	File  source.FileID
	Stmts []StmtID
}

// BodyData is a braced statement list. ReturnsLast reports whether the last
// statement is an unterminated expression whose value the body yields.
type BodyData struct {
	Span        source.Span
	Stmts       []StmtID
	ReturnsLast bool
}

// Modules manages allocation of module roots.
type Modules struct {
	Arena *Arena[Module]
}

func NewModules(capHint uint) *Modules {
	if capHint == 0 {
		capHint = 1 << 2
	}
	return &Modules{Arena: NewArena[Module](capHint)}
}

func (m *Modules) New(span source.Span, file source.FileID) ModuleID {
	return ModuleID(m.Arena.Allocate(Module{Span: span, File: file}))
}

func (m *Modules) Get(id ModuleID) *Module {
	return m.Arena.Get(uint32(id))
}

// Bodies manages allocation of statement bodies.
type Bodies struct {
	Arena *Arena[BodyData]
}

func NewBodies(capHint uint) *Bodies {
	if capHint == 0 {
		capHint = 1 << 5
	}
	return &Bodies{Arena: NewArena[BodyData](capHint)}
}

func (b *Bodies) New(data BodyData) BodyID {
	return BodyID(b.Arena.Allocate(data))
}

func (b *Bodies) Get(id BodyID) *BodyData {
	return b.Arena.Get(uint32(id))
}
