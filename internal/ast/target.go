package ast

import (
	"terbium/internal/source"
)

// TargetKind enumerates declaration/assignment target patterns.
type TargetKind uint8

const (
	// TargetIdent binds a single identifier.
	TargetIdent TargetKind = iota
	// TargetArray destructures an array into nested targets.
	TargetArray
)

// Target represents a binding pattern.
type Target struct {
	Kind    TargetKind
	Span    source.Span
	Payload PayloadID
}

// TargetIdentData carries an identifier target.
type TargetIdentData struct {
	Name source.StringID
}

// TargetArrayData carries the nested targets of an array pattern.
type TargetArrayData struct {
	Elems []TargetID
}

// Targets manages allocation of target patterns.
type Targets struct {
	Arena  *Arena[Target]
	Idents *Arena[TargetIdentData]
	Arrays *Arena[TargetArrayData]
}

func NewTargets(capHint uint) *Targets {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Targets{
		Arena:  NewArena[Target](capHint),
		Idents: NewArena[TargetIdentData](capHint),
		Arrays: NewArena[TargetArrayData](capHint / 4),
	}
}

// Get returns the target node for id, or nil for NoTargetID.
func (t *Targets) Get(id TargetID) *Target {
	return t.Arena.Get(uint32(id))
}

// NewIdent allocates an identifier target.
func (t *Targets) NewIdent(span source.Span, name source.StringID) TargetID {
	payload := t.Idents.Allocate(TargetIdentData{Name: name})
	return TargetID(t.Arena.Allocate(Target{Kind: TargetIdent, Span: span, Payload: PayloadID(payload)}))
}

// NewArray allocates an array destructuring target.
func (t *Targets) NewArray(span source.Span, elems []TargetID) TargetID {
	payload := t.Arrays.Allocate(TargetArrayData{Elems: elems})
	return TargetID(t.Arena.Allocate(Target{Kind: TargetArray, Span: span, Payload: PayloadID(payload)}))
}

// Ident returns the identifier payload for id.
func (t *Targets) Ident(id TargetID) (*TargetIdentData, bool) {
	target := t.Get(id)
	if target == nil || target.Kind != TargetIdent {
		return nil, false
	}
	return t.Idents.Get(uint32(target.Payload)), true
}

// Array returns the array payload for id.
func (t *Targets) Array(id TargetID) (*TargetArrayData, bool) {
	target := t.Get(id)
	if target == nil || target.Kind != TargetArray {
		return nil, false
	}
	return t.Arrays.Get(uint32(target.Payload)), true
}
