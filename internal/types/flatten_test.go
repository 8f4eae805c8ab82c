package types

import "testing"

func TestFlattenCollapsesEqualSides(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	if got := in.Flatten(in.Union(b.Int, b.Int)); got != b.Int {
		t.Errorf("int | int flattened to %s, want int", in.Display(got))
	}
	if got := in.Flatten(in.And(b.String, b.String)); got != b.String {
		t.Errorf("string & string flattened to %s, want string", in.Display(got))
	}

	// Collapse happens bottom-up: (int | int) | int is int all the way.
	nested := in.Union(in.Union(b.Int, b.Int), b.Int)
	if got := in.Flatten(nested); got != b.Int {
		t.Errorf("nested union flattened to %s, want int", in.Display(got))
	}
}

func TestFlattenKeepsDistinctSides(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	mixed := in.Union(b.Int, b.String)
	got := in.Flatten(mixed)
	if !in.Equal(got, mixed) {
		t.Errorf("int | string flattened to %s", in.Display(got))
	}
}

func TestFlattenRecursesIntoContainers(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	arr := in.Array(in.Union(b.Int, b.Int), 4)
	if got := in.Flatten(arr); !in.Equal(got, in.Array(b.Int, 4)) {
		t.Errorf("array flattened to %s, want int[4]", in.Display(got))
	}

	tup := in.Tuple([]TypeID{in.And(b.Bool, b.Bool), b.String})
	want := in.Tuple([]TypeID{b.Bool, b.String})
	if got := in.Flatten(tup); !in.Equal(got, want) {
		t.Errorf("tuple flattened to %s, want %s", in.Display(got), in.Display(want))
	}

	fn := in.Func([]TypeID{in.Union(b.Float, b.Float)}, in.Union(b.Int, b.Int))
	wantFn := in.Func([]TypeID{b.Float}, b.Int)
	if got := in.Flatten(fn); !in.Equal(got, wantFn) {
		t.Errorf("func flattened to %s, want %s", in.Display(got), in.Display(wantFn))
	}
}

func TestFlattenIdempotent(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	samples := []TypeID{
		b.Int,
		in.Union(b.Int, b.Int),
		in.Union(b.Int, b.String),
		in.And(in.Union(b.Int, b.Int), b.String),
		in.Array(in.Union(b.Bool, b.Bool), ArrayUnbounded),
		in.Tuple([]TypeID{in.Union(b.Int, b.Float), in.And(b.Null, b.Null)}),
		in.Func([]TypeID{b.Any}, in.Union(b.String, b.String)),
	}
	for _, id := range samples {
		once := in.Flatten(id)
		twice := in.Flatten(once)
		if !in.Equal(once, twice) {
			t.Errorf("flatten not idempotent for %s: %s then %s",
				in.Display(id), in.Display(once), in.Display(twice))
		}
	}
}

func TestEqualStructural(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	// Tuples and funcs mint fresh IDs per construction but compare equal
	// structurally.
	t1 := in.Tuple([]TypeID{b.Int, b.String})
	t2 := in.Tuple([]TypeID{b.Int, b.String})
	if t1 == t2 {
		t.Fatal("expected distinct tuple IDs per construction")
	}
	if !in.Equal(t1, t2) {
		t.Error("structurally identical tuples should compare equal")
	}
	if in.Equal(t1, in.Tuple([]TypeID{b.Int})) {
		t.Error("tuples of different arity should differ")
	}

	f1 := in.Func([]TypeID{b.Int}, b.Bool)
	f2 := in.Func([]TypeID{b.Int}, b.Bool)
	if !in.Equal(f1, f2) {
		t.Error("structurally identical funcs should compare equal")
	}
	if in.Equal(f1, in.Func([]TypeID{b.Int}, b.Int)) {
		t.Error("funcs with different returns should differ")
	}

	if in.Equal(b.Int, b.Float) {
		t.Error("int and float should differ")
	}
	if !in.Equal(in.Union(b.Int, b.Null), in.Union(b.Int, b.Null)) {
		t.Error("identical unions should compare equal")
	}
}
