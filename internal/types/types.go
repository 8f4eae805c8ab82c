package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
	KindNull
	KindAny
	// KindUnknown marks a type inference gave up on.
	KindUnknown
	KindUnion
	KindAnd
	KindArray
	KindTuple
	KindFunc
	// KindDeferred marks a type whose resolution is postponed until the
	// binding it depends on settles.
	KindDeferred
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindAny:
		return "any"
	case KindUnknown:
		return "unknown"
	case KindUnion:
		return "union"
	case KindAnd:
		return "and"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindFunc:
		return "func"
	case KindDeferred:
		return "deferred"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// IsPrimitive reports whether k is one of the four primitive kinds.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindInt, KindFloat, KindString, KindBool:
		return true
	default:
		return false
	}
}

// ArrayUnbounded marks arrays without a compile-time length (T[]).
const ArrayUnbounded = ^uint32(0)

// Type is a compact descriptor for any supported type. Lhs/Rhs carry
// union/intersection operands, Elem/Count arrays, Payload indexes the
// tuple/func/deferred side tables.
type Type struct {
	Kind    Kind
	Lhs     TypeID
	Rhs     TypeID
	Elem    TypeID
	Count   uint32
	Payload uint32
}

// MakeUnion describes A | B.
func MakeUnion(lhs, rhs TypeID) Type {
	return Type{Kind: KindUnion, Lhs: lhs, Rhs: rhs}
}

// MakeAnd describes A & B.
func MakeAnd(lhs, rhs TypeID) Type {
	return Type{Kind: KindAnd, Lhs: lhs, Rhs: rhs}
}

// MakeArray describes an array of elem. Use ArrayUnbounded for T[].
func MakeArray(elem TypeID, count uint32) Type {
	return Type{Kind: KindArray, Elem: elem, Count: count}
}
