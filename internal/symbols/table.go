package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"terbium/internal/source"
	"terbium/internal/types"
)

type scope struct {
	names map[source.StringID]EntryID
	// order keeps declaration order so scope-exit lints come out stable.
	order []EntryID
}

// Store owns every binding of one analysis run. Entries live in a flat
// arena and survive scope exit, so deferred types can still resolve
// through their EntryID after the scope is gone.
type Store struct {
	entries []Entry
	scopes  []scope
}

// NewStore constructs a store with the module scope already open.
func NewStore() *Store {
	s := &Store{}
	s.Push()
	return s
}

// Push opens a nested scope.
func (s *Store) Push() {
	s.scopes = append(s.scopes, scope{names: make(map[source.StringID]EntryID, 8)})
}

// Pop closes the innermost scope and returns its bindings in declaration
// order. A binding redeclared later in the same scope is reported only
// once, through its latest entry.
func (s *Store) Pop() []EntryID {
	if len(s.scopes) == 0 {
		return nil
	}
	top := s.scopes[len(s.scopes)-1]
	s.scopes = s.scopes[:len(s.scopes)-1]

	out := make([]EntryID, 0, len(top.order))
	for _, id := range top.order {
		if top.names[s.Get(id).Name] == id {
			out = append(out, id)
		}
	}
	return out
}

// Insert binds a name in the innermost scope, replacing any same-scope
// binding of that name.
func (s *Store) Insert(e Entry) EntryID {
	lenEntries, err := safecast.Conv[uint32](len(s.entries))
	if err != nil {
		panic(fmt.Errorf("len(entries) overflow: %w", err))
	}
	id := EntryID(lenEntries + 1)
	s.entries = append(s.entries, e)

	top := &s.scopes[len(s.scopes)-1]
	top.names[e.Name] = id
	top.order = append(top.order, id)
	return id
}

// Lookup finds the innermost visible binding of name.
func (s *Store) Lookup(name source.StringID) (EntryID, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if id, ok := s.scopes[i].names[name]; ok {
			return id, true
		}
	}
	return NoEntryID, false
}

// LookupConst finds a visible const binding of name in any scope,
// including outer ones shadowed by non-const bindings.
func (s *Store) LookupConst(name source.StringID) (EntryID, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if id, ok := s.scopes[i].names[name]; ok && s.Get(id).Modifier == ModifierConst {
			return id, true
		}
	}
	return NoEntryID, false
}

// Get returns a mutable view of the entry. Panics on an invalid id.
func (s *Store) Get(id EntryID) *Entry {
	if id == NoEntryID || int(id) > len(s.entries) {
		panic("symbols: invalid EntryID")
	}
	return &s.entries[id-1]
}

// EntryType adapts the store to the deferred-type resolver.
func (s *Store) EntryType(ref types.EntryRef) (types.TypeID, bool) {
	id := EntryID(ref)
	if id == NoEntryID || int(id) > len(s.entries) {
		return types.NoTypeID, false
	}
	return s.entries[id-1].Type, true
}

// IsTopLevel reports whether the innermost scope is the module scope.
func (s *Store) IsTopLevel() bool {
	return len(s.scopes) == 1
}
