package types

import (
	"fmt"

	"fortio.org/safecast"
)

// EntryRef is an arena handle into the scope store, standing in for the
// pending binding a deferred type waits on. It is an index, never a
// pointer: entries may outlive their scope and are looked up through a
// callback at resolution time.
type EntryRef uint32

// DeferredKind enumerates how a deferred type resolves.
type DeferredKind uint8

const (
	// DeferredEntry resolves to the type of a pending scope entry.
	DeferredEntry DeferredKind = iota
	// DeferredKnown wraps an already-known type that participates in a
	// deferred application.
	DeferredKnown
	// DeferredUnary applies a unary operator once the operand resolves.
	DeferredUnary
	// DeferredBinary applies a binary operator once both operands resolve.
	DeferredBinary
)

// DeferredInfo stores the resolution instructions of one deferred type.
// Lhs/Rhs reference other deferred TypeIDs for the application kinds.
type DeferredInfo struct {
	Kind  DeferredKind
	Entry EntryRef
	Known TypeID
	UnOp  UnaryOp
	BinOp BinaryOp
	Lhs   TypeID
	Rhs   TypeID
}

// DeferEntry allocates a deferred type waiting on a scope entry.
func (in *Interner) DeferEntry(ref EntryRef) TypeID {
	return in.newDeferred(DeferredInfo{Kind: DeferredEntry, Entry: ref})
}

// DeferKnown wraps a known type into the deferred domain. Deferred input
// passes through unchanged.
func (in *Interner) DeferKnown(id TypeID) TypeID {
	if tt, ok := in.Lookup(id); ok && tt.Kind == KindDeferred {
		return id
	}
	return in.newDeferred(DeferredInfo{Kind: DeferredKnown, Known: id})
}

// DeferredOf returns the resolution instructions of a deferred type.
func (in *Interner) DeferredOf(id TypeID) (DeferredInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindDeferred || tt.Payload == 0 || int(tt.Payload) >= len(in.deferreds) {
		return DeferredInfo{}, false
	}
	return in.deferreds[tt.Payload], true
}

func (in *Interner) deferUnary(op UnaryOp, value TypeID) TypeID {
	return in.newDeferred(DeferredInfo{Kind: DeferredUnary, UnOp: op, Lhs: in.DeferKnown(value)})
}

func (in *Interner) deferBinary(op BinaryOp, lhs, rhs TypeID) TypeID {
	return in.newDeferred(DeferredInfo{
		Kind:  DeferredBinary,
		BinOp: op,
		Lhs:   in.DeferKnown(lhs),
		Rhs:   in.DeferKnown(rhs),
	})
}

func (in *Interner) newDeferred(info DeferredInfo) TypeID {
	slot, err := safecast.Conv[uint32](len(in.deferreds))
	if err != nil {
		panic(fmt.Errorf("deferred info overflow: %w", err))
	}
	in.deferreds = append(in.deferreds, info)
	return in.internRaw(Type{Kind: KindDeferred, Payload: slot})
}

// EntryLookup resolves an EntryRef to the entry's current type. The second
// result is false for a dangling handle.
type EntryLookup func(EntryRef) (TypeID, bool)

// ResolveDeferred walks a deferred type tree and produces the concrete
// type. Operator applications that turn out unsupported degrade to Unknown
// (the mismatch was already reported, or will be, at the usage site).
// A dangling entry handle is an internal fault, not a diagnostic.
func (in *Interner) ResolveDeferred(id TypeID, lookup EntryLookup) (TypeID, error) {
	return in.resolveDeferred(id, lookup, make(map[EntryRef]bool))
}

func (in *Interner) resolveDeferred(id TypeID, lookup EntryLookup, seen map[EntryRef]bool) (TypeID, error) {
	tt, ok := in.Lookup(id)
	if !ok {
		return NoTypeID, fmt.Errorf("resolve deferred: invalid type id %d", id)
	}
	if tt.Kind != KindDeferred {
		return id, nil
	}
	info, ok := in.DeferredOf(id)
	if !ok {
		return NoTypeID, fmt.Errorf("resolve deferred: corrupt payload for type id %d", id)
	}

	switch info.Kind {
	case DeferredEntry:
		if seen[info.Entry] {
			// Self-referential binding; nothing to learn.
			return in.builtins.Unknown, nil
		}
		seen[info.Entry] = true
		resolved, ok := lookup(info.Entry)
		if !ok {
			return NoTypeID, fmt.Errorf("resolve deferred: dangling entry handle %d", info.Entry)
		}
		if resolved == NoTypeID {
			return in.builtins.Unknown, nil
		}
		return in.resolveDeferred(resolved, lookup, seen)

	case DeferredKnown:
		return in.resolveDeferred(info.Known, lookup, seen)

	case DeferredUnary:
		value, err := in.resolveDeferred(info.Lhs, lookup, seen)
		if err != nil {
			return NoTypeID, err
		}
		out, ok := in.UnaryOutcome(info.UnOp, value)
		if !ok {
			return in.builtins.Unknown, nil
		}
		return out, nil

	case DeferredBinary:
		lhs, err := in.resolveDeferred(info.Lhs, lookup, seen)
		if err != nil {
			return NoTypeID, err
		}
		rhs, err := in.resolveDeferred(info.Rhs, lookup, seen)
		if err != nil {
			return NoTypeID, err
		}
		out, ok := in.BinaryOutcome(info.BinOp, lhs, rhs)
		if !ok {
			return in.builtins.Unknown, nil
		}
		return out, nil
	}
	return NoTypeID, fmt.Errorf("resolve deferred: unknown deferred kind %d", info.Kind)
}
