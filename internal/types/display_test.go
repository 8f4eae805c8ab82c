package types

import "testing"

func TestDisplay(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	tests := []struct {
		name string
		id   TypeID
		want string
	}{
		{"int", b.Int, "int"},
		{"null", b.Null, "null"},
		{"unknown", b.Unknown, "<unknown>"},
		{"optional", in.Union(b.Int, b.Null), "?int"},
		{"optional null first", in.Union(b.Null, b.Int), "?int"},
		{"optional compound", in.Union(b.Null, in.Array(b.Int, ArrayUnbounded)), "?int[]"},
		{"union", in.Union(b.Int, b.String), "int | string"},
		{"and", in.And(b.Int, b.Bool), "int & bool"},
		{"sized array", in.Array(b.Float, 3), "float[3]"},
		{"unsized array", in.Array(b.Float, ArrayUnbounded), "float[]"},
		{"tuple", in.Tuple([]TypeID{b.Int, b.String}), "[int, string]"},
		{"func", in.Func([]TypeID{b.Int, b.Float}, b.Bool), "(int, float) -> bool"},
		{"thunk", in.Func(nil, b.Null), "() -> null"},
		{"deferred", in.DeferEntry(1), "<deferred>"},
		{"invalid", NoTypeID, "<invalid>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := in.Display(tt.id); got != tt.want {
				t.Errorf("Display = %q, want %q", got, tt.want)
			}
		})
	}
}
