package symbols

import (
	"testing"

	"terbium/internal/source"
	"terbium/internal/types"
)

func newEntry(name source.StringID, mod Modifier) Entry {
	return Entry{Name: name, Modifier: mod}
}

func TestStoreLookupWalksScopesOutward(t *testing.T) {
	strings := source.NewInterner()
	s := NewStore()

	x := strings.Intern("x")
	y := strings.Intern("y")

	outer := s.Insert(newEntry(x, ModifierNone))
	s.Push()
	s.Insert(newEntry(y, ModifierMut))

	got, ok := s.Lookup(x)
	if !ok || got != outer {
		t.Errorf("Lookup(x) = %v, %v; want the outer entry", got, ok)
	}
	if _, ok := s.Lookup(y); !ok {
		t.Error("Lookup(y) should hit the nested binding")
	}

	s.Pop()
	if _, ok := s.Lookup(y); ok {
		t.Error("y should be gone after the scope closes")
	}
}

func TestStoreShadowing(t *testing.T) {
	strings := source.NewInterner()
	s := NewStore()

	x := strings.Intern("x")
	outer := s.Insert(newEntry(x, ModifierNone))
	s.Push()
	inner := s.Insert(newEntry(x, ModifierMut))

	if got, _ := s.Lookup(x); got != inner {
		t.Errorf("Lookup(x) = %v, want the shadowing entry %v", got, inner)
	}

	s.Pop()
	if got, _ := s.Lookup(x); got != outer {
		t.Errorf("Lookup(x) = %v after pop, want the outer entry %v", got, outer)
	}
}

func TestStoreLookupConstSeesShadowedOuter(t *testing.T) {
	strings := source.NewInterner()
	s := NewStore()

	y := strings.Intern("y")
	constEntry := s.Insert(newEntry(y, ModifierConst))
	s.Push()
	s.Insert(newEntry(y, ModifierNone))

	// The plain lookup resolves to the shadow, but the const probe still
	// finds the outer const binding.
	if got, _ := s.Lookup(y); got == constEntry {
		t.Error("Lookup(y) should hit the shadowing non-const binding")
	}
	got, ok := s.LookupConst(y)
	if !ok || got != constEntry {
		t.Errorf("LookupConst(y) = %v, %v; want the outer const entry", got, ok)
	}
}

func TestStorePopReturnsDeclarationOrder(t *testing.T) {
	strings := source.NewInterner()
	s := NewStore()
	s.Push()

	a := s.Insert(newEntry(strings.Intern("a"), ModifierNone))
	b := s.Insert(newEntry(strings.Intern("b"), ModifierNone))
	c := s.Insert(newEntry(strings.Intern("c"), ModifierNone))

	got := s.Pop()
	want := []EntryID{a, b, c}
	if len(got) != len(want) {
		t.Fatalf("Pop returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pop[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStorePopReportsLatestRebinding(t *testing.T) {
	strings := source.NewInterner()
	s := NewStore()
	s.Push()

	x := strings.Intern("x")
	s.Insert(newEntry(x, ModifierNone))
	second := s.Insert(newEntry(x, ModifierNone))

	got := s.Pop()
	if len(got) != 1 || got[0] != second {
		t.Errorf("Pop = %v, want only the latest binding %v", got, second)
	}
}

func TestStoreEntriesSurviveScopeExit(t *testing.T) {
	strings := source.NewInterner()
	s := NewStore()
	s.Push()

	x := strings.Intern("x")
	id := s.Insert(Entry{Name: x, Type: 5})
	s.Pop()

	// The arena keeps the entry alive for deferred type resolution.
	ty, ok := s.EntryType(types.EntryRef(id))
	if !ok || ty != 5 {
		t.Errorf("EntryType = %v, %v; want 5, true", ty, ok)
	}
	if _, ok := s.EntryType(types.EntryRef(999)); ok {
		t.Error("EntryType should miss on a dangling handle")
	}
}

func TestStoreIsTopLevel(t *testing.T) {
	s := NewStore()
	if !s.IsTopLevel() {
		t.Error("a fresh store should sit at the module scope")
	}
	s.Push()
	if s.IsTopLevel() {
		t.Error("nested scope reported as top level")
	}
	s.Pop()
	if !s.IsTopLevel() {
		t.Error("store should return to the module scope after pop")
	}
}
