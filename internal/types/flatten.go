package types

// Flatten normalizes a type bottom-up: operands of unions and
// intersections are flattened first, then a combinator whose two sides
// come out structurally equal collapses to one side. Flatten is
// idempotent, so callers may normalize at any point without tracking
// whether it already happened.
func (in *Interner) Flatten(id TypeID) TypeID {
	tt, ok := in.Lookup(id)
	if !ok {
		return NoTypeID
	}

	switch tt.Kind {
	case KindUnion:
		lhs := in.Flatten(tt.Lhs)
		rhs := in.Flatten(tt.Rhs)
		if in.Equal(lhs, rhs) {
			return lhs
		}
		return in.Union(lhs, rhs)

	case KindAnd:
		lhs := in.Flatten(tt.Lhs)
		rhs := in.Flatten(tt.Rhs)
		if in.Equal(lhs, rhs) {
			return lhs
		}
		return in.And(lhs, rhs)

	case KindArray:
		return in.Array(in.Flatten(tt.Elem), tt.Count)

	case KindTuple:
		elems := in.TupleElems(id)
		flat := make([]TypeID, len(elems))
		changed := false
		for i, e := range elems {
			flat[i] = in.Flatten(e)
			if flat[i] != e {
				changed = true
			}
		}
		if !changed {
			return id
		}
		return in.Tuple(flat)

	case KindFunc:
		info, ok := in.FuncInfo(id)
		if !ok {
			return id
		}
		params := make([]TypeID, len(info.Params))
		changed := false
		for i, p := range info.Params {
			params[i] = in.Flatten(p)
			if params[i] != p {
				changed = true
			}
		}
		ret := in.Flatten(info.Ret)
		if !changed && ret == info.Ret {
			return id
		}
		return in.Func(params, ret)
	}

	return id
}

// Equal reports structural equality. Interned kinds compare by ID;
// tuple, function and deferred types go through their side tables since
// each construction mints a fresh ID.
func (in *Interner) Equal(a, b TypeID) bool {
	if a == b {
		return true
	}
	at, okA := in.Lookup(a)
	bt, okB := in.Lookup(b)
	if !okA || !okB || at.Kind != bt.Kind {
		return false
	}

	switch at.Kind {
	case KindUnion, KindAnd:
		return in.Equal(at.Lhs, bt.Lhs) && in.Equal(at.Rhs, bt.Rhs)

	case KindArray:
		return at.Count == bt.Count && in.Equal(at.Elem, bt.Elem)

	case KindTuple:
		ae := in.TupleElems(a)
		be := in.TupleElems(b)
		if len(ae) != len(be) {
			return false
		}
		for i := range ae {
			if !in.Equal(ae[i], be[i]) {
				return false
			}
		}
		return true

	case KindFunc:
		ai, okA := in.FuncInfo(a)
		bi, okB := in.FuncInfo(b)
		if !okA || !okB || len(ai.Params) != len(bi.Params) {
			return false
		}
		for i := range ai.Params {
			if !in.Equal(ai.Params[i], bi.Params[i]) {
				return false
			}
		}
		return in.Equal(ai.Ret, bi.Ret)

	case KindDeferred:
		ad, okA := in.DeferredOf(a)
		bd, okB := in.DeferredOf(b)
		if !okA || !okB || ad.Kind != bd.Kind {
			return false
		}
		switch ad.Kind {
		case DeferredEntry:
			return ad.Entry == bd.Entry
		case DeferredKnown:
			return in.Equal(ad.Known, bd.Known)
		case DeferredUnary:
			return ad.UnOp == bd.UnOp && in.Equal(ad.Lhs, bd.Lhs)
		case DeferredBinary:
			return ad.BinOp == bd.BinOp && in.Equal(ad.Lhs, bd.Lhs) && in.Equal(ad.Rhs, bd.Rhs)
		}
		return false
	}

	// Leaf kinds of the same Kind are interned to the same ID, so a != b
	// here means distinct types.
	return false
}
