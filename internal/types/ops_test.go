package types

import (
	"testing"
)

func mustOutcome(t *testing.T, in *Interner, op BinaryOp, lhs, rhs TypeID) TypeID {
	t.Helper()
	out, ok := in.BinaryOutcome(op, lhs, rhs)
	if !ok {
		t.Fatalf("%s %s %s: expected a supported outcome", in.Display(lhs), op, in.Display(rhs))
	}
	return out
}

func TestBinaryOutcomePrimitives(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	tests := []struct {
		name string
		op   BinaryOp
		lhs  TypeID
		rhs  TypeID
		want TypeID
		ok   bool
	}{
		{"int plus int", BinAdd, b.Int, b.Int, b.Int, true},
		{"int pow int", BinPow, b.Int, b.Int, b.Int, true},
		{"int shl int", BinShl, b.Int, b.Int, b.Int, true},
		{"int plus float", BinAdd, b.Int, b.Float, b.Float, true},
		{"float plus int", BinAdd, b.Float, b.Int, b.Float, true},
		{"float div float", BinDiv, b.Float, b.Float, b.Float, true},
		{"int less than float", BinLt, b.Int, b.Float, b.Bool, true},
		{"float equals float", BinEq, b.Float, b.Float, b.Bool, true},
		{"string concat", BinAdd, b.String, b.String, b.String, true},
		{"string repeat", BinMul, b.String, b.String, b.String, true},
		{"string minus string", BinSub, b.String, b.String, NoTypeID, false},
		{"bool equals bool", BinEq, b.Bool, b.Bool, NoTypeID, false},
		{"bool and bool", BinLogicalAnd, b.Bool, b.Bool, NoTypeID, false},
		{"bool or bool", BinLogicalOr, b.Bool, b.Bool, NoTypeID, false},
		{"float bitand float", BinBitAnd, b.Float, b.Float, NoTypeID, false},
		{"int plus string", BinAdd, b.Int, b.String, NoTypeID, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := in.BinaryOutcome(tt.op, tt.lhs, tt.rhs)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && out != tt.want {
				t.Errorf("outcome = %s, want %s", in.Display(out), in.Display(tt.want))
			}
		})
	}
}

func TestBinaryOutcomeAnyAndUnknown(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	// Any wins over Unknown from either side.
	if out := mustOutcome(t, in, BinAdd, b.Any, b.Unknown); out != b.Any {
		t.Errorf("any + unknown = %s, want any", in.Display(out))
	}
	if out := mustOutcome(t, in, BinAdd, b.Unknown, b.Any); out != b.Any {
		t.Errorf("unknown + any = %s, want any", in.Display(out))
	}
	if out := mustOutcome(t, in, BinSub, b.Unknown, b.Int); out != b.Unknown {
		t.Errorf("unknown - int = %s, want unknown", in.Display(out))
	}
	if out := mustOutcome(t, in, BinMul, b.String, b.Any); out != b.Any {
		t.Errorf("string * any = %s, want any", in.Display(out))
	}
}

func TestBinaryOutcomeUnionRequiresBothSides(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	numeric := in.Union(b.Int, b.Float)
	out := mustOutcome(t, in, BinAdd, numeric, b.Int)
	// The second alternative decides the result.
	if out != b.Float {
		t.Errorf("(int | float) + int = %s, want float", in.Display(out))
	}

	mixed := in.Union(b.Int, b.String)
	if _, ok := in.BinaryOutcome(BinSub, mixed, b.Int); ok {
		t.Error("(int | string) - int should be unsupported")
	}
}

func TestBinaryOutcomeIntersectionFirstFacetWins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	both := in.And(b.Int, b.String)
	out := mustOutcome(t, in, BinSub, both, b.Int)
	if out != b.Int {
		t.Errorf("(int & string) - int = %s, want int", in.Display(out))
	}
	out = mustOutcome(t, in, BinAdd, both, b.String)
	if out != b.String {
		t.Errorf("(int & string) + string = %s, want string", in.Display(out))
	}
	if _, ok := in.BinaryOutcome(BinSub, in.And(b.Bool, b.Null), b.Int); ok {
		t.Error("(bool & null) - int should be unsupported")
	}
}

func TestBinaryOutcomeArrayConcat(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	lhs := in.Array(b.Int, 2)
	rhs := in.Array(b.Float, 3)
	out := mustOutcome(t, in, BinAdd, lhs, rhs)
	tt := in.MustLookup(out)
	if tt.Kind != KindArray || tt.Count != 5 {
		t.Fatalf("got %s, want a 5-element array", in.Display(out))
	}
	if !in.Equal(tt.Elem, in.Union(b.Int, b.Float)) {
		t.Errorf("element type = %s, want int | float", in.Display(tt.Elem))
	}

	// One unbounded side makes the sum unbounded.
	out = mustOutcome(t, in, BinAdd, lhs, in.Array(b.Int, ArrayUnbounded))
	if in.MustLookup(out).Count != ArrayUnbounded {
		t.Errorf("got %s, want an unbounded array", in.Display(out))
	}
	out = mustOutcome(t, in, BinAdd, in.Array(b.Int, ArrayUnbounded), rhs)
	if in.MustLookup(out).Count != ArrayUnbounded {
		t.Errorf("got %s, want an unbounded array", in.Display(out))
	}

	if _, ok := in.BinaryOutcome(BinSub, lhs, rhs); ok {
		t.Error("array subtraction should be unsupported")
	}
}

func TestBinaryOutcomeTupleConcat(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	lhs := in.Tuple([]TypeID{b.Int, b.String})
	rhs := in.Tuple([]TypeID{b.Bool})
	out := mustOutcome(t, in, BinAdd, lhs, rhs)
	want := in.Tuple([]TypeID{b.Int, b.String, b.Bool})
	if !in.Equal(out, want) {
		t.Errorf("got %s, want %s", in.Display(out), in.Display(want))
	}

	if _, ok := in.BinaryOutcome(BinMul, lhs, rhs); ok {
		t.Error("tuple multiplication should be unsupported")
	}
}

func TestUnaryOutcome(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	tests := []struct {
		name string
		op   UnaryOp
		id   TypeID
		want TypeID
		ok   bool
	}{
		{"negate int", UnaryNeg, b.Int, b.Int, true},
		{"plus float", UnaryPlus, b.Float, b.Float, true},
		{"bitnot int", UnaryBitNot, b.Int, b.Int, true},
		{"bitnot float", UnaryBitNot, b.Float, NoTypeID, false},
		{"negate string", UnaryNeg, b.String, NoTypeID, false},
		{"not string", UnaryNot, b.String, b.Bool, true},
		{"not null", UnaryNot, b.Null, b.Bool, true},
		{"not any", UnaryNot, b.Any, b.Bool, true},
		{"negate any", UnaryNeg, b.Any, b.Any, true},
		{"negate unknown", UnaryNeg, b.Unknown, b.Unknown, true},
		{"negate null", UnaryNeg, b.Null, NoTypeID, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := in.UnaryOutcome(tt.op, tt.id)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && out != tt.want {
				t.Errorf("outcome = %s, want %s", in.Display(out), in.Display(tt.want))
			}
		})
	}
}

func TestUnaryOutcomeUnion(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	numeric := in.Union(b.Int, b.Float)
	out, ok := in.UnaryOutcome(UnaryNeg, numeric)
	if !ok || out != b.Float {
		t.Errorf("-(int | float) = %s, %v; want float", in.Display(out), ok)
	}
	if _, ok := in.UnaryOutcome(UnaryNeg, in.Union(b.Int, b.String)); ok {
		t.Error("-(int | string) should be unsupported")
	}
	// Intersections take the first facet that works.
	out, ok = in.UnaryOutcome(UnaryNeg, in.And(b.String, b.Int))
	if !ok || out != b.Int {
		t.Errorf("-(string & int) = %s, %v; want int", in.Display(out), ok)
	}
}
