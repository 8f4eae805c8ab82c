package types

import (
	"strconv"
	"strings"
)

// Display renders a type the way it appears in diagnostics. Unions and
// intersections print infix without extra parentheses; an optional type
// (T | null) prints as ?T.
func (in *Interner) Display(id TypeID) string {
	tt, ok := in.Lookup(id)
	if !ok {
		return "<invalid>"
	}

	switch tt.Kind {
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
		return "<unknown>"

	case KindUnion:
		if rt, ok := in.Lookup(tt.Rhs); ok && rt.Kind == KindNull {
			return "?" + in.Display(tt.Lhs)
		}
		if lt, ok := in.Lookup(tt.Lhs); ok && lt.Kind == KindNull {
			return "?" + in.Display(tt.Rhs)
		}
		return in.Display(tt.Lhs) + " | " + in.Display(tt.Rhs)

	case KindAnd:
		return in.Display(tt.Lhs) + " & " + in.Display(tt.Rhs)

	case KindArray:
		if tt.Count == ArrayUnbounded {
			return in.Display(tt.Elem) + "[]"
		}
		return in.Display(tt.Elem) + "[" + strconv.FormatUint(uint64(tt.Count), 10) + "]"

	case KindTuple:
		elems := in.TupleElems(id)
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = in.Display(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"

	case KindFunc:
		info, ok := in.FuncInfo(id)
		if !ok {
			return "<invalid>"
		}
		params := make([]string, len(info.Params))
		for i, p := range info.Params {
			params[i] = in.Display(p)
		}
		return "(" + strings.Join(params, ", ") + ") -> " + in.Display(info.Ret)

	case KindDeferred:
		return "<deferred>"
	}
	return "<invalid>"
}
