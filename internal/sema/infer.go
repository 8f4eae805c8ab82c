package sema

import (
	"terbium/internal/ast"
	"terbium/internal/diag"
	"terbium/internal/types"
)

// InferType infers the type of one expression, appending operator
// diagnostics to the bag. Expression kinds outside inference coverage
// return a fault error.
func InferType(ctx *Context, opts Options, bag *diag.Bag, expr ast.ExprID) (types.TypeID, error) {
	w := &walker{ctx: ctx, opts: opts, bag: bag}
	return w.inferExpr(expr)
}

// inferable reports whether every node reachable from the expression is
// a kind inference covers. The walker checks this before inferring so a
// partially supported tree analyzes instead of faulting; direct InferType
// callers skip the check and get the fault.
func (w *walker) inferable(id ast.ExprID) bool {
	expr := w.ctx.Arenas.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprLit, ast.ExprIdent:
		return true
	case ast.ExprGroup:
		data, _ := w.ctx.Arenas.Exprs.Group(id)
		return w.inferable(data.Inner)
	case ast.ExprUnary:
		data, _ := w.ctx.Arenas.Exprs.Unary(id)
		return w.inferable(data.Value)
	case ast.ExprBinary:
		data, _ := w.ctx.Arenas.Exprs.Binary(id)
		return w.inferable(data.Left) && w.inferable(data.Right)
	case ast.ExprIf:
		data, _ := w.ctx.Arenas.Exprs.If(id)
		branches := append([]ast.IfBranch{data.Then}, data.ElseIfs...)
		for _, br := range branches {
			if !w.bodyInferable(br.Body) {
				return false
			}
		}
		if data.Else != ast.NoBodyID {
			return w.bodyInferable(data.Else)
		}
		return true
	case ast.ExprWhile:
		return true // loops always resolve to null
	}
	return false
}

func (w *walker) bodyInferable(id ast.BodyID) bool {
	body := w.ctx.Arenas.Bodies.Get(id)
	if !body.ReturnsLast {
		return true
	}
	last := body.Stmts[len(body.Stmts)-1]
	data, ok := w.ctx.Arenas.Stmts.ExprStmt(last)
	if !ok {
		return true
	}
	return w.inferable(data.Expr)
}

func (w *walker) inferExpr(id ast.ExprID) (types.TypeID, error) {
	expr := w.ctx.Arenas.Exprs.Get(id)
	builtins := w.ctx.Types.Builtins()

	switch expr.Kind {
	case ast.ExprLit:
		data, _ := w.ctx.Arenas.Exprs.Lit(id)
		switch data.Kind {
		case ast.LitInt:
			return builtins.Int, nil
		case ast.LitFloat:
			return builtins.Float, nil
		case ast.LitString:
			return builtins.String, nil
		case ast.LitBool:
			return builtins.Bool, nil
		case ast.LitNull:
			return builtins.Null, nil
		}
		return types.NoTypeID, faultf("literal kind %d", data.Kind)

	case ast.ExprIdent:
		data, _ := w.ctx.Arenas.Exprs.Ident(id)
		entryID, ok := w.ctx.Scopes.Lookup(data.Name)
		if !ok {
			// The walk already reported the unresolved identifier.
			return builtins.Unknown, nil
		}
		entry := w.ctx.Scopes.Get(entryID)
		if entry.Type == types.NoTypeID {
			return w.ctx.Types.DeferEntry(types.EntryRef(entryID)), nil
		}
		return entry.Type, nil

	case ast.ExprGroup:
		data, _ := w.ctx.Arenas.Exprs.Group(id)
		return w.inferExpr(data.Inner)

	case ast.ExprUnary:
		data, _ := w.ctx.Arenas.Exprs.Unary(id)
		valueTy, err := w.inferExpr(data.Value)
		if err != nil {
			return types.NoTypeID, err
		}
		out, ok := w.ctx.Types.UnaryOutcome(unaryOp(data.Op), valueTy)
		if !ok {
			valueSpan := w.ctx.Arenas.Exprs.Get(data.Value).Span
			w.emit(UnsupportedOperators, unsupportedUnaryOperator(
				expr.Span,
				w.ctx.Types.Display(valueTy), valueSpan,
				data.Op.String(), data.OpSpan,
			))
			return builtins.Unknown, nil
		}
		return out, nil

	case ast.ExprBinary:
		data, _ := w.ctx.Arenas.Exprs.Binary(id)
		lhsTy, err := w.inferExpr(data.Left)
		if err != nil {
			return types.NoTypeID, err
		}
		rhsTy, err := w.inferExpr(data.Right)
		if err != nil {
			return types.NoTypeID, err
		}
		out, ok := w.ctx.Types.BinaryOutcome(binaryOp(data.Op), lhsTy, rhsTy)
		if !ok {
			lhsSpan := w.ctx.Arenas.Exprs.Get(data.Left).Span
			rhsSpan := w.ctx.Arenas.Exprs.Get(data.Right).Span
			w.emit(UnsupportedOperators, unsupportedBinaryOperator(
				expr.Span,
				w.ctx.Types.Display(lhsTy), lhsSpan,
				w.ctx.Types.Display(rhsTy), rhsSpan,
				data.Op.String(), data.OpSpan,
			))
			return builtins.Unknown, nil
		}
		return out, nil

	case ast.ExprIf:
		return w.inferIf(id)

	case ast.ExprWhile:
		return builtins.Null, nil
	}
	return types.NoTypeID, faultf("inference for expression kind %d", expr.Kind)
}

// inferIf reconciles the branch types of an if expression. Each later
// branch must agree structurally with the running type; the first
// disagreement emits unbalanced-if and settles the whole expression at
// Unknown. A missing else leaves the null arm possible.
func (w *walker) inferIf(id ast.ExprID) (types.TypeID, error) {
	expr := w.ctx.Arenas.Exprs.Get(id)
	data, _ := w.ctx.Arenas.Exprs.If(id)
	builtins := w.ctx.Types.Builtins()

	type branchType struct {
		ty   types.TypeID
		span ast.BodyID
	}
	branches := append([]ast.IfBranch{data.Then}, data.ElseIfs...)

	bodies := make([]ast.BodyID, 0, len(branches)+1)
	for _, br := range branches {
		bodies = append(bodies, br.Body)
	}
	if data.Else != ast.NoBodyID {
		bodies = append(bodies, data.Else)
	}

	var acc []branchType
	for _, body := range bodies {
		t, err := w.bodyType(body)
		if err != nil {
			return types.NoTypeID, err
		}
		acc = append(acc, branchType{ty: w.ctx.Types.Flatten(t), span: body})
	}

	running := acc[0]
	for _, br := range acc[1:] {
		if w.ctx.Types.Equal(running.ty, br.ty) {
			continue
		}
		firstSpan := w.ctx.Arenas.Bodies.Get(running.span).Span
		secondSpan := w.ctx.Arenas.Bodies.Get(br.span).Span
		w.emit(UnbalancedIfStatements, unbalancedIfStatement(
			expr.Span,
			firstSpan, w.ctx.Types.Display(running.ty),
			secondSpan, w.ctx.Types.Display(br.ty),
		))
		return builtins.Unknown, nil
	}

	if data.Else == ast.NoBodyID && !w.ctx.Types.Equal(running.ty, builtins.Null) {
		firstSpan := w.ctx.Arenas.Bodies.Get(running.span).Span
		w.emit(UnbalancedIfStatements, unbalancedIfStatementNoElse(
			expr.Span, firstSpan, w.ctx.Types.Display(running.ty),
		))
		return w.ctx.Types.Flatten(w.ctx.Types.Union(running.ty, builtins.Null)), nil
	}
	return running.ty, nil
}

// bodyType is the type a block yields: its trailing unterminated
// expression, or null.
func (w *walker) bodyType(id ast.BodyID) (types.TypeID, error) {
	body := w.ctx.Arenas.Bodies.Get(id)
	if !body.ReturnsLast {
		return w.ctx.Types.Builtins().Null, nil
	}
	last := body.Stmts[len(body.Stmts)-1]
	data, ok := w.ctx.Arenas.Stmts.ExprStmt(last)
	if !ok {
		return w.ctx.Types.Builtins().Null, nil
	}
	return w.inferExpr(data.Expr)
}

// compatible reports whether a value of type val satisfies the
// annotation. Unions admit a value matching either arm; any admits
// everything; an unknown value never contradicts the annotation.
func (w *walker) compatible(annot, val types.TypeID) bool {
	if w.ctx.Types.Equal(annot, val) {
		return true
	}
	at, okA := w.ctx.Types.Lookup(annot)
	vt, okV := w.ctx.Types.Lookup(val)
	if !okA || !okV {
		return true
	}
	if at.Kind == types.KindAny || vt.Kind == types.KindUnknown || vt.Kind == types.KindDeferred {
		return true
	}
	if at.Kind == types.KindUnion {
		return w.compatible(at.Lhs, val) || w.compatible(at.Rhs, val)
	}
	return false
}

// resolveTypeExpr lowers a syntactic annotation into the type model.
// Unrecognized names resolve to Unknown rather than failing: annotation
// vocabulary beyond the builtin names is out of scope here.
func (w *walker) resolveTypeExpr(id ast.TypeExprID) types.TypeID {
	node := w.ctx.Arenas.TypeExprs.Get(id)
	builtins := w.ctx.Types.Builtins()

	switch node.Kind {
	case ast.TypeExprName:
		data, _ := w.ctx.Arenas.TypeExprs.Name(id)
		switch w.ctx.Arenas.StringOf(data.Name) {
		case "int":
			return builtins.Int
		case "float":
			return builtins.Float
		case "string":
			return builtins.String
		case "bool":
			return builtins.Bool
		case "null":
			return builtins.Null
		case "any":
			return builtins.Any
		default:
			return builtins.Unknown
		}

	case ast.TypeExprOptional:
		data, _ := w.ctx.Arenas.TypeExprs.Optional(id)
		return w.ctx.Types.Union(w.resolveTypeExpr(data.Inner), builtins.Null)

	case ast.TypeExprUnion:
		data, _ := w.ctx.Arenas.TypeExprs.Pair(id)
		return w.ctx.Types.Union(w.resolveTypeExpr(data.Left), w.resolveTypeExpr(data.Right))

	case ast.TypeExprAnd:
		data, _ := w.ctx.Arenas.TypeExprs.Pair(id)
		return w.ctx.Types.And(w.resolveTypeExpr(data.Left), w.resolveTypeExpr(data.Right))

	case ast.TypeExprArray:
		data, _ := w.ctx.Arenas.TypeExprs.Array(id)
		count := data.Len
		if count == ast.ArrayUnsized {
			count = types.ArrayUnbounded
		}
		return w.ctx.Types.Array(w.resolveTypeExpr(data.Elem), count)

	case ast.TypeExprTuple:
		data, _ := w.ctx.Arenas.TypeExprs.Tuple(id)
		elems := make([]types.TypeID, len(data.Elems))
		for i, e := range data.Elems {
			elems[i] = w.resolveTypeExpr(e)
		}
		return w.ctx.Types.Tuple(elems)

	case ast.TypeExprFunc:
		data, _ := w.ctx.Arenas.TypeExprs.Func(id)
		params := make([]types.TypeID, len(data.Params))
		for i, p := range data.Params {
			params[i] = w.resolveTypeExpr(p)
		}
		return w.ctx.Types.Func(params, w.resolveTypeExpr(data.Ret))
	}
	return builtins.Unknown
}

func unaryOp(op ast.ExprUnaryOp) types.UnaryOp {
	switch op {
	case ast.ExprUnaryNeg:
		return types.UnaryNeg
	case ast.ExprUnaryPlus:
		return types.UnaryPlus
	case ast.ExprUnaryNot:
		return types.UnaryNot
	default:
		return types.UnaryBitNot
	}
}

func binaryOp(op ast.ExprBinaryOp) types.BinaryOp {
	switch op {
	case ast.ExprBinaryAdd:
		return types.BinAdd
	case ast.ExprBinarySub:
		return types.BinSub
	case ast.ExprBinaryMul:
		return types.BinMul
	case ast.ExprBinaryDiv:
		return types.BinDiv
	case ast.ExprBinaryPow:
		return types.BinPow
	case ast.ExprBinaryMod:
		return types.BinMod
	case ast.ExprBinaryBitAnd:
		return types.BinBitAnd
	case ast.ExprBinaryBitOr:
		return types.BinBitOr
	case ast.ExprBinaryBitXor:
		return types.BinBitXor
	case ast.ExprBinaryShl:
		return types.BinShl
	case ast.ExprBinaryShr:
		return types.BinShr
	case ast.ExprBinaryLogicalAnd:
		return types.BinLogicalAnd
	case ast.ExprBinaryLogicalOr:
		return types.BinLogicalOr
	case ast.ExprBinaryEq:
		return types.BinEq
	case ast.ExprBinaryNotEq:
		return types.BinNe
	case ast.ExprBinaryLess:
		return types.BinLt
	case ast.ExprBinaryLessEq:
		return types.BinLe
	case ast.ExprBinaryGreater:
		return types.BinGt
	default:
		return types.BinGe
	}
}
