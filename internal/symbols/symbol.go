// Package symbols tracks lexical bindings across nested scopes.
package symbols

import (
	"terbium/internal/source"
	"terbium/internal/types"
)

// EntryID is an arena handle for one binding. 0 means absent. It is the
// same index space types.EntryRef points into, so deferred types can
// reference pending bindings without pointers.
type EntryID uint32

// NoEntryID marks the absence of a binding.
const NoEntryID EntryID = 0

// Modifier describes how a binding may be rebound.
type Modifier uint8

const (
	// ModifierNone bindings allow shadowing but not reassignment.
	ModifierNone Modifier = iota
	// ModifierMut bindings allow reassignment.
	ModifierMut
	// ModifierConst bindings forbid both reassignment and redeclaration
	// in nested scopes.
	ModifierConst
)

func (m Modifier) String() string {
	switch m {
	case ModifierMut:
		return "mut"
	case ModifierConst:
		return "const"
	default:
		return ""
	}
}

// Entry is one binding. Used and Mutated accumulate over the walk and
// feed the scope-exit lints.
type Entry struct {
	Name     source.StringID
	Type     types.TypeID
	Modifier Modifier
	Span     source.Span
	Used     bool
	Mutated  bool
}
