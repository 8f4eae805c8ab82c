package types

// UnaryOp enumerates unary operators the type model understands.
type UnaryOp uint8

const (
	// UnaryNeg is arithmetic negation.
	UnaryNeg UnaryOp = iota
	// UnaryPlus is the identity plus.
	UnaryPlus
	// UnaryNot is logical negation.
	UnaryNot
	// UnaryBitNot is bitwise negation.
	UnaryBitNot
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNeg:
		return "-"
	case UnaryPlus:
		return "+"
	case UnaryNot:
		return "!"
	case UnaryBitNot:
		return "~"
	}
	return "?"
}

// BinaryOp enumerates binary operators the type model understands.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinPow
	BinMod
	BinBitAnd
	BinBitOr
	BinBitXor
	BinShl
	BinShr
	BinLt
	BinLe
	BinGt
	BinGe
	BinEq
	BinNe
	BinLogicalAnd
	BinLogicalOr
)

func (op BinaryOp) String() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinPow:
		return "**"
	case BinMod:
		return "%"
	case BinBitAnd:
		return "&"
	case BinBitOr:
		return "|"
	case BinBitXor:
		return "^"
	case BinShl:
		return "<<"
	case BinShr:
		return ">>"
	case BinLt:
		return "<"
	case BinLe:
		return "<="
	case BinGt:
		return ">"
	case BinGe:
		return ">="
	case BinEq:
		return "=="
	case BinNe:
		return "!="
	case BinLogicalAnd:
		return "&&"
	case BinLogicalOr:
		return "||"
	}
	return "?"
}

func (op BinaryOp) isArith() bool {
	switch op {
	case BinAdd, BinSub, BinMul, BinDiv, BinPow, BinMod:
		return true
	default:
		return false
	}
}

func (op BinaryOp) isCompare() bool {
	switch op {
	case BinLt, BinLe, BinGt, BinGe, BinEq, BinNe:
		return true
	default:
		return false
	}
}

func (op BinaryOp) isIntOnly() bool {
	switch op {
	case BinBitAnd, BinBitOr, BinBitXor, BinShl, BinShr:
		return true
	default:
		return false
	}
}

// UnaryOutcome returns the type produced by applying op to the operand, or
// false when the combination is unsupported. Deferred operands always
// succeed by producing a new deferred application. A union supports the
// operator only when both sides do (the conservative reading); an
// intersection when either side does, since the value is guaranteed to
// satisfy at least one facet. That asymmetry is a design choice carried
// over from the original rules, not an accident.
func (in *Interner) UnaryOutcome(op UnaryOp, id TypeID) (TypeID, bool) {
	tt, ok := in.Lookup(id)
	if !ok {
		return NoTypeID, false
	}

	switch tt.Kind {
	case KindDeferred:
		return in.deferUnary(op, id), true

	case KindInt, KindFloat, KindString, KindBool:
		return in.primitiveUnary(op, tt.Kind)

	case KindUnion:
		_, okL := in.UnaryOutcome(op, tt.Lhs)
		outR, okR := in.UnaryOutcome(op, tt.Rhs)
		if okL && okR {
			return outR, true
		}
		return NoTypeID, false

	case KindAnd:
		if out, ok := in.UnaryOutcome(op, tt.Lhs); ok {
			return out, true
		}
		return in.UnaryOutcome(op, tt.Rhs)
	}

	// Logical not produces bool whatever the operand is.
	if op == UnaryNot {
		return in.builtins.Bool, true
	}
	if tt.Kind == KindAny || tt.Kind == KindUnknown {
		return id, true
	}
	return NoTypeID, false
}

func (in *Interner) primitiveUnary(op UnaryOp, kind Kind) (TypeID, bool) {
	switch {
	case op == UnaryNot:
		return in.builtins.Bool, true
	case (op == UnaryNeg || op == UnaryPlus) && kind == KindInt:
		return in.builtins.Int, true
	case (op == UnaryNeg || op == UnaryPlus) && kind == KindFloat:
		return in.builtins.Float, true
	case op == UnaryBitNot && kind == KindInt:
		return in.builtins.Int, true
	default:
		return NoTypeID, false
	}
}

// BinaryOutcome returns the type produced by op over lhs and rhs, or false
// when the combination is unsupported. Any and Unknown short-circuit to
// themselves from either side (Any wins when both appear); a deferred
// operand on either side produces a deferred binary application.
func (in *Interner) BinaryOutcome(op BinaryOp, lhs, rhs TypeID) (TypeID, bool) {
	lt, okL := in.Lookup(lhs)
	rt, okR := in.Lookup(rhs)
	if !okL || !okR {
		return NoTypeID, false
	}

	if lt.Kind == KindDeferred || rt.Kind == KindDeferred {
		return in.deferBinary(op, lhs, rhs), true
	}
	if lt.Kind == KindAny || rt.Kind == KindAny {
		return in.builtins.Any, true
	}
	if lt.Kind == KindUnknown || rt.Kind == KindUnknown {
		return in.builtins.Unknown, true
	}

	// Unions distribute conservatively: both alternatives must support op.
	if lt.Kind == KindUnion {
		_, okA := in.BinaryOutcome(op, lt.Lhs, rhs)
		outB, okB := in.BinaryOutcome(op, lt.Rhs, rhs)
		if okA && okB {
			return outB, true
		}
		return NoTypeID, false
	}
	if rt.Kind == KindUnion {
		_, okA := in.BinaryOutcome(op, lhs, rt.Lhs)
		outB, okB := in.BinaryOutcome(op, lhs, rt.Rhs)
		if okA && okB {
			return outB, true
		}
		return NoTypeID, false
	}

	// Intersections are permissive: the first supported facet decides.
	if lt.Kind == KindAnd {
		if out, ok := in.BinaryOutcome(op, lt.Lhs, rhs); ok {
			return out, true
		}
		return in.BinaryOutcome(op, lt.Rhs, rhs)
	}
	if rt.Kind == KindAnd {
		if out, ok := in.BinaryOutcome(op, lhs, rt.Lhs); ok {
			return out, true
		}
		return in.BinaryOutcome(op, lhs, rt.Rhs)
	}

	if lt.Kind.IsPrimitive() && rt.Kind.IsPrimitive() {
		return in.primitiveBinary(lt.Kind, op, rt.Kind)
	}

	if op == BinAdd && lt.Kind == KindArray && rt.Kind == KindArray {
		elem := in.Union(lt.Elem, rt.Elem)
		count := ArrayUnbounded
		if lt.Count != ArrayUnbounded && rt.Count != ArrayUnbounded {
			count = lt.Count + rt.Count
		}
		return in.Array(elem, count), true
	}

	if op == BinAdd && lt.Kind == KindTuple && rt.Kind == KindTuple {
		left := in.TupleElems(lhs)
		right := in.TupleElems(rhs)
		elems := make([]TypeID, 0, len(left)+len(right))
		elems = append(elems, left...)
		elems = append(elems, right...)
		return in.Tuple(elems), true
	}

	return NoTypeID, false
}

func (in *Interner) primitiveBinary(lhs Kind, op BinaryOp, rhs Kind) (TypeID, bool) {
	numericL := lhs == KindInt || lhs == KindFloat
	numericR := rhs == KindInt || rhs == KindFloat

	switch {
	case lhs == KindInt && rhs == KindInt && (op.isArith() || op.isIntOnly()):
		return in.builtins.Int, true
	case numericL && numericR && op.isArith():
		// At least one side is float here; int/int was handled above.
		return in.builtins.Float, true
	case numericL && numericR && op.isCompare():
		return in.builtins.Bool, true
	case lhs == KindString && rhs == KindString && (op == BinAdd || op == BinMul):
		return in.builtins.String, true
	default:
		return NoTypeID, false
	}
}
