package ast

import (
	"terbium/internal/source"
)

// TypeExprKind enumerates syntactic type annotation forms.
type TypeExprKind uint8

const (
	// TypeExprName is a primitive type name (int, float, string, bool, any, null).
	TypeExprName TypeExprKind = iota
	// TypeExprOptional is the ?T shorthand for null | T.
	TypeExprOptional
	// TypeExprUnion is A | B.
	TypeExprUnion
	// TypeExprAnd is A & B.
	TypeExprAnd
	// TypeExprArray is T[] or T[n].
	TypeExprArray
	// TypeExprTuple is [T1, T2, ...].
	TypeExprTuple
	// TypeExprFunc is (P1, P2) -> R.
	TypeExprFunc
)

// TypeExpr represents a type annotation node.
type TypeExpr struct {
	Kind    TypeExprKind
	Span    source.Span
	Payload PayloadID
}

// TypeNameData carries a primitive type name.
type TypeNameData struct {
	Name source.StringID
}

// TypeOptionalData carries the inner type of ?T.
type TypeOptionalData struct {
	Inner TypeExprID
}

// TypePairData carries the operands of a union or intersection.
type TypePairData struct {
	Left  TypeExprID
	Right TypeExprID
}

// ArrayUnsized marks T[] annotations without a fixed length.
const ArrayUnsized = ^uint32(0)

// TypeArrayData carries an array annotation; Len is ArrayUnsized for T[].
type TypeArrayData struct {
	Elem TypeExprID
	Len  uint32
}

// TypeTupleData carries the ordered element annotations of a tuple.
type TypeTupleData struct {
	Elems []TypeExprID
}

// TypeFuncData carries a function type annotation.
type TypeFuncData struct {
	Params []TypeExprID
	Ret    TypeExprID
}

// TypeExprs manages allocation of type annotation nodes.
type TypeExprs struct {
	Arena     *Arena[TypeExpr]
	Names     *Arena[TypeNameData]
	Optionals *Arena[TypeOptionalData]
	Pairs     *Arena[TypePairData]
	Arrays    *Arena[TypeArrayData]
	Tuples    *Arena[TypeTupleData]
	Funcs     *Arena[TypeFuncData]
}

func NewTypeExprs(capHint uint) *TypeExprs {
	if capHint == 0 {
		capHint = 1 << 5
	}
	return &TypeExprs{
		Arena:     NewArena[TypeExpr](capHint),
		Names:     NewArena[TypeNameData](capHint),
		Optionals: NewArena[TypeOptionalData](capHint / 2),
		Pairs:     NewArena[TypePairData](capHint / 2),
		Arrays:    NewArena[TypeArrayData](capHint / 2),
		Tuples:    NewArena[TypeTupleData](capHint / 2),
		Funcs:     NewArena[TypeFuncData](capHint / 2),
	}
}

func (t *TypeExprs) new(kind TypeExprKind, span source.Span, payload uint32) TypeExprID {
	return TypeExprID(t.Arena.Allocate(TypeExpr{Kind: kind, Span: span, Payload: PayloadID(payload)}))
}

// Get returns the type annotation node for id, or nil for NoTypeExprID.
func (t *TypeExprs) Get(id TypeExprID) *TypeExpr {
	return t.Arena.Get(uint32(id))
}

func (t *TypeExprs) NewName(span source.Span, name source.StringID) TypeExprID {
	return t.new(TypeExprName, span, t.Names.Allocate(TypeNameData{Name: name}))
}

func (t *TypeExprs) NewOptional(span source.Span, inner TypeExprID) TypeExprID {
	return t.new(TypeExprOptional, span, t.Optionals.Allocate(TypeOptionalData{Inner: inner}))
}

func (t *TypeExprs) NewUnion(span source.Span, left, right TypeExprID) TypeExprID {
	return t.new(TypeExprUnion, span, t.Pairs.Allocate(TypePairData{Left: left, Right: right}))
}

func (t *TypeExprs) NewAnd(span source.Span, left, right TypeExprID) TypeExprID {
	return t.new(TypeExprAnd, span, t.Pairs.Allocate(TypePairData{Left: left, Right: right}))
}

func (t *TypeExprs) NewArray(span source.Span, elem TypeExprID, length uint32) TypeExprID {
	return t.new(TypeExprArray, span, t.Arrays.Allocate(TypeArrayData{Elem: elem, Len: length}))
}

func (t *TypeExprs) NewTuple(span source.Span, elems []TypeExprID) TypeExprID {
	return t.new(TypeExprTuple, span, t.Tuples.Allocate(TypeTupleData{Elems: elems}))
}

func (t *TypeExprs) NewFunc(span source.Span, params []TypeExprID, ret TypeExprID) TypeExprID {
	return t.new(TypeExprFunc, span, t.Funcs.Allocate(TypeFuncData{Params: params, Ret: ret}))
}

// Name returns the name payload for id.
func (t *TypeExprs) Name(id TypeExprID) (*TypeNameData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeExprName {
		return nil, false
	}
	return t.Names.Get(uint32(node.Payload)), true
}

// Optional returns the optional payload for id.
func (t *TypeExprs) Optional(id TypeExprID) (*TypeOptionalData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeExprOptional {
		return nil, false
	}
	return t.Optionals.Get(uint32(node.Payload)), true
}

// Pair returns the union/intersection payload for id.
func (t *TypeExprs) Pair(id TypeExprID) (*TypePairData, bool) {
	node := t.Get(id)
	if node == nil || (node.Kind != TypeExprUnion && node.Kind != TypeExprAnd) {
		return nil, false
	}
	return t.Pairs.Get(uint32(node.Payload)), true
}

// Array returns the array payload for id.
func (t *TypeExprs) Array(id TypeExprID) (*TypeArrayData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeExprArray {
		return nil, false
	}
	return t.Arrays.Get(uint32(node.Payload)), true
}

// Tuple returns the tuple payload for id.
func (t *TypeExprs) Tuple(id TypeExprID) (*TypeTupleData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeExprTuple {
		return nil, false
	}
	return t.Tuples.Get(uint32(node.Payload)), true
}

// Func returns the function payload for id.
func (t *TypeExprs) Func(id TypeExprID) (*TypeFuncData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeExprFunc {
		return nil, false
	}
	return t.Funcs.Get(uint32(node.Payload)), true
}
