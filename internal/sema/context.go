package sema

import (
	"terbium/internal/ast"
	"terbium/internal/symbols"
	"terbium/internal/types"
)

// Context bundles the per-run state the walker mutates: the AST arenas it
// reads, the type interner it allocates into, and the scope store.
type Context struct {
	Arenas *ast.Builder
	Types  *types.Interner
	Scopes *symbols.Store
	Module ast.ModuleID
}

// NewContext prepares analysis state for one parsed module.
func NewContext(arenas *ast.Builder, module ast.ModuleID) *Context {
	return &Context{
		Arenas: arenas,
		Types:  types.NewInterner(),
		Scopes: symbols.NewStore(),
		Module: module,
	}
}
