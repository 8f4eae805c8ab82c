package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the leaf types every analysis needs.
type Builtins struct {
	Invalid TypeID
	Int     TypeID
	Float   TypeID
	String  TypeID
	Bool    TypeID
	Null    TypeID
	Any     TypeID
	Unknown TypeID
}

// FuncInfo stores the shape of a function type.
type FuncInfo struct {
	Params []TypeID
	Ret    TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
// Tuple, function and deferred payloads live in side tables; those types
// get a fresh ID per construction, so comparisons go through Equal rather
// than the raw IDs.
type Interner struct {
	types     []Type
	index     map[Type]TypeID
	builtins  Builtins
	tuples    [][]TypeID
	funcs     []FuncInfo
	deferreds []DeferredInfo
}

// NewInterner constructs an interner seeded with the builtin leaf types.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[Type]TypeID, 64),
	}
	in.tuples = append(in.tuples, nil) // reserve 0 as invalid sentinel
	in.funcs = append(in.funcs, FuncInfo{})
	in.deferreds = append(in.deferreds, DeferredInfo{})
	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Int = in.Intern(Type{Kind: KindInt})
	in.builtins.Float = in.Intern(Type{Kind: KindFloat})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Null = in.Intern(Type{Kind: KindNull})
	in.builtins.Any = in.Intern(Type{Kind: KindAny})
	in.builtins.Unknown = in.Intern(Type{Kind: KindUnknown})
	return in
}

// Builtins returns TypeIDs for the builtin leaf types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	if id, ok := in.index[t]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw adds the descriptor to the storage without consulting the map.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes + 1)
	in.types = append(in.types, t)
	in.index[t] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) > len(in.types) {
		return Type{}, false
	}
	return in.types[id-1], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// Union interns A | B.
func (in *Interner) Union(lhs, rhs TypeID) TypeID {
	return in.Intern(MakeUnion(lhs, rhs))
}

// And interns A & B.
func (in *Interner) And(lhs, rhs TypeID) TypeID {
	return in.Intern(MakeAnd(lhs, rhs))
}

// Array interns an array type; count ArrayUnbounded means T[].
func (in *Interner) Array(elem TypeID, count uint32) TypeID {
	return in.Intern(MakeArray(elem, count))
}

// Tuple allocates a tuple type over the ordered element list.
func (in *Interner) Tuple(elems []TypeID) TypeID {
	slot := in.appendTuple(elems)
	return in.internRaw(Type{Kind: KindTuple, Payload: slot})
}

// Func allocates a function type.
func (in *Interner) Func(params []TypeID, ret TypeID) TypeID {
	slot, err := safecast.Conv[uint32](len(in.funcs))
	if err != nil {
		panic(fmt.Errorf("func info overflow: %w", err))
	}
	in.funcs = append(in.funcs, FuncInfo{Params: cloneIDs(params), Ret: ret})
	return in.internRaw(Type{Kind: KindFunc, Payload: slot})
}

// TupleElems returns the element list of a tuple type, or nil.
func (in *Interner) TupleElems(id TypeID) []TypeID {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindTuple || tt.Payload == 0 || int(tt.Payload) >= len(in.tuples) {
		return nil
	}
	return in.tuples[tt.Payload]
}

// FuncInfo returns the shape of a function type.
func (in *Interner) FuncInfo(id TypeID) (FuncInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindFunc || tt.Payload == 0 || int(tt.Payload) >= len(in.funcs) {
		return FuncInfo{}, false
	}
	return in.funcs[tt.Payload], true
}

func (in *Interner) appendTuple(elems []TypeID) uint32 {
	slot, err := safecast.Conv[uint32](len(in.tuples))
	if err != nil {
		panic(fmt.Errorf("tuple info overflow: %w", err))
	}
	in.tuples = append(in.tuples, cloneIDs(elems))
	return slot
}

func cloneIDs(ids []TypeID) []TypeID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]TypeID, len(ids))
	copy(out, ids)
	return out
}
