package sema

import (
	"strings"

	"terbium/internal/ast"
	"terbium/internal/diag"
	"terbium/internal/source"
	"terbium/internal/symbols"
	"terbium/internal/types"
)

type walker struct {
	ctx  *Context
	opts Options
	bag  *diag.Bag
}

// emit appends a diagnostic when its kind is enabled and, for warnings,
// its tier clears the threshold. Errors always pass the threshold.
func (w *walker) emit(k Kind, d diag.Diagnostic) {
	if !w.opts.Analyzers.Contains(k) {
		return
	}
	if k.IsWarning() && w.opts.MinWarnLevel > 0 && d.Severity < w.opts.MinWarnLevel {
		return
	}
	w.bag.Add(d)
}

func (w *walker) walkStmt(id ast.StmtID) error {
	stmt := w.ctx.Arenas.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtDeclare:
		data, _ := w.ctx.Arenas.Stmts.Declare(id)
		return w.walkDeclare(stmt.Span, data)
	case ast.StmtAssign:
		data, _ := w.ctx.Arenas.Stmts.Assign(id)
		return w.walkAssign(stmt.Span, data)
	case ast.StmtExpr:
		data, _ := w.ctx.Arenas.Stmts.ExprStmt(id)
		return w.walkExprStmt(data)
	}
	return faultf("statement kind %d", stmt.Kind)
}

func (w *walker) walkDeclare(span source.Span, data *ast.StmtDeclareData) error {
	if data.IsMut && data.IsConst {
		return faultf("declaration is both mut and const")
	}
	if len(data.Targets) != 1 {
		return faultf("multiple declaration targets unsupported")
	}

	modifier := symbols.ModifierNone
	switch {
	case data.IsMut:
		modifier = symbols.ModifierMut
	case data.IsConst:
		modifier = symbols.ModifierConst
	}

	if w.ctx.Scopes.IsTopLevel() && modifier == symbols.ModifierMut {
		w.emit(GlobalMutableVariables, globalMutableVariable(span))
	}

	// The value is visited and inferred against the environment before
	// the new bindings land, so `let x = x;` refers to the outer x.
	valueTy := types.NoTypeID
	if data.Value != ast.NoExprID {
		before := w.bag.Len()
		if err := w.walkExpr(data.Value); err != nil {
			return err
		}
		if w.inferable(data.Value) {
			t, err := w.inferExpr(data.Value)
			if err != nil {
				return err
			}
			valueTy = w.ctx.Types.Flatten(t)
			if w.isUnknown(valueTy) && w.bag.Len() == before {
				valueSpan := w.ctx.Arenas.Exprs.Get(data.Value).Span
				w.emit(UninferableTypes, uninferableType(valueSpan))
			}
		}
	}

	annotTy := types.NoTypeID
	if data.Type != ast.NoTypeExprID {
		annotTy = w.ctx.Types.Flatten(w.resolveTypeExpr(data.Type))
		// A deferred value is resolved through the scope entries before
		// the annotation check, so bindings typed by a later assignment
		// still get compared. Still-pending entries come back Unknown
		// and pass.
		checkTy := valueTy
		if w.isDeferred(checkTy) {
			resolved, err := w.ctx.Types.ResolveDeferred(checkTy, w.ctx.Scopes.EntryType)
			if err != nil {
				return err
			}
			checkTy = w.ctx.Types.Flatten(resolved)
		}
		if checkTy != types.NoTypeID && !w.compatible(annotTy, checkTy) {
			annotSpan := w.ctx.Arenas.TypeExprs.Get(data.Type).Span
			valueSpan := w.ctx.Arenas.Exprs.Get(data.Value).Span
			w.emit(IncompatibleTypes, incompatibleTypes(
				w.ctx.Types.Display(annotTy), annotSpan,
				w.ctx.Types.Display(checkTy), valueSpan,
			))
		}
	}

	entryTy := valueTy
	if annotTy != types.NoTypeID {
		entryTy = annotTy
	}
	return w.declareTarget(data.Targets[0], span, modifier, entryTy)
}

// declareTarget recurses through a binding pattern, checking const
// shadowing and naming per identifier, then inserting the entry. Nested
// destructured bindings carry no inferred type.
func (w *walker) declareTarget(id ast.TargetID, span source.Span, modifier symbols.Modifier, entryTy types.TypeID) error {
	target := w.ctx.Arenas.Targets.Get(id)
	switch target.Kind {
	case ast.TargetIdent:
		data, _ := w.ctx.Arenas.Targets.Ident(id)
		name := w.ctx.Arenas.StringOf(data.Name)

		// LookupConst sees through non-const shadows, so a const binding
		// stays protected even when an inner `let` of the same name is
		// the closest match.
		if prev, ok := w.ctx.Scopes.LookupConst(data.Name); ok {
			entry := w.ctx.Scopes.Get(prev)
			w.emit(RedeclaredConstVariables, redeclaredConstVariable(name, entry.Span, span))
		}

		if snake := toSnakeCase(name); name != snake {
			w.emit(NonSnakeCase, nonSnakeCase(name, snake, target.Span))
		}
		if !isASCII(name) {
			w.emit(NonASCII, nonASCII(name, target.Span))
		}

		w.ctx.Scopes.Insert(symbols.Entry{
			Name:     data.Name,
			Type:     entryTy,
			Modifier: modifier,
			Span:     target.Span,
		})
		return nil

	case ast.TargetArray:
		data, _ := w.ctx.Arenas.Targets.Array(id)
		for _, elem := range data.Elems {
			if err := w.declareTarget(elem, span, modifier, types.NoTypeID); err != nil {
				return err
			}
		}
		return nil
	}
	return faultf("target kind %d", target.Kind)
}

func (w *walker) walkAssign(span source.Span, data *ast.StmtAssignData) error {
	if len(data.Targets) != 1 {
		return faultf("multiple assignment targets unsupported")
	}
	target := w.ctx.Arenas.Targets.Get(data.Targets[0])
	if target.Kind != ast.TargetIdent {
		return faultf("array assignments unsupported")
	}

	if err := w.walkExpr(data.Value); err != nil {
		return err
	}

	ident, _ := w.ctx.Arenas.Targets.Ident(data.Targets[0])
	name := w.ctx.Arenas.StringOf(ident.Name)

	entryID, ok := w.ctx.Scopes.Lookup(ident.Name)
	if !ok {
		closeName, closeSpan, hasClose := w.closeMatch(name)
		w.emit(UnresolvedIdentifiers, unresolvedIdentifier(name, closeName, closeSpan, hasClose, target.Span))
		return nil
	}

	entry := w.ctx.Scopes.Get(entryID)
	entry.Mutated = true
	// A binding declared without a value learns its type from the first
	// assignment; deferred back-references resolve against it from then on.
	if entry.Type == types.NoTypeID && w.inferable(data.Value) {
		t, err := w.inferExpr(data.Value)
		if err != nil {
			return err
		}
		entry.Type = w.ctx.Types.Flatten(t)
	}
	if entry.Modifier != symbols.ModifierMut {
		wasConst := entry.Modifier == symbols.ModifierConst
		w.emit(ReassignedImmutableVariables, reassignedImmutableVariable(name, entry.Span, span, wasConst))
	}
	return nil
}

func (w *walker) walkExprStmt(data *ast.StmtExprData) error {
	if err := w.walkExpr(data.Expr); err != nil {
		return err
	}

	// Operator applications in statement position still get their
	// outcome checked even though the result value is discarded.
	kind := w.ctx.Arenas.Exprs.Get(data.Expr).Kind
	if (kind == ast.ExprUnary || kind == ast.ExprBinary) && w.inferable(data.Expr) {
		if _, err := w.inferExpr(data.Expr); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walkExpr(id ast.ExprID) error {
	expr := w.ctx.Arenas.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprLit:
		return nil

	case ast.ExprIdent:
		data, _ := w.ctx.Arenas.Exprs.Ident(id)
		entryID, ok := w.ctx.Scopes.Lookup(data.Name)
		if !ok {
			name := w.ctx.Arenas.StringOf(data.Name)
			closeName, closeSpan, hasClose := w.closeMatch(name)
			w.emit(UnresolvedIdentifiers, unresolvedIdentifier(name, closeName, closeSpan, hasClose, expr.Span))
			return nil
		}
		w.ctx.Scopes.Get(entryID).Used = true
		return nil

	case ast.ExprGroup:
		data, _ := w.ctx.Arenas.Exprs.Group(id)
		return w.walkExpr(data.Inner)

	case ast.ExprUnary:
		data, _ := w.ctx.Arenas.Exprs.Unary(id)
		return w.walkExpr(data.Value)

	case ast.ExprBinary:
		data, _ := w.ctx.Arenas.Exprs.Binary(id)
		if err := w.walkExpr(data.Left); err != nil {
			return err
		}
		return w.walkExpr(data.Right)

	case ast.ExprIf:
		data, _ := w.ctx.Arenas.Exprs.If(id)
		branches := append([]ast.IfBranch{data.Then}, data.ElseIfs...)
		for _, br := range branches {
			if err := w.walkExpr(br.Cond); err != nil {
				return err
			}
			if err := w.walkBody(br.Body); err != nil {
				return err
			}
		}
		if data.Else != ast.NoBodyID {
			return w.walkBody(data.Else)
		}
		return nil

	case ast.ExprWhile:
		data, _ := w.ctx.Arenas.Exprs.While(id)
		if err := w.walkExpr(data.Cond); err != nil {
			return err
		}
		return w.walkBody(data.Body)
	}
	return faultf("expression kind %d", expr.Kind)
}

// walkBody runs a nested block in its own scope and fires the
// scope-exit lints on the way out.
func (w *walker) walkBody(id ast.BodyID) error {
	body := w.ctx.Arenas.Bodies.Get(id)
	w.ctx.Scopes.Push()
	for _, stmt := range body.Stmts {
		if err := w.walkStmt(stmt); err != nil {
			w.ctx.Scopes.Pop()
			return err
		}
	}
	w.exitScope()
	return nil
}

// exitScope pops the innermost scope and lints its retained entries in
// declaration order.
func (w *walker) exitScope() {
	for _, entryID := range w.ctx.Scopes.Pop() {
		e := w.ctx.Scopes.Get(entryID)
		name := w.ctx.Arenas.Strings.MustLookup(e.Name)

		if e.Modifier == symbols.ModifierMut && !e.Mutated {
			w.emit(UnnecessaryMutVariables, unnecessaryMutVariable(name, e.Span))
		}
		if !e.Used && !strings.HasPrefix(name, "_") {
			w.emit(UnusedVariables, unusedVariable(name, e.Span))
		}
	}
}

func (w *walker) closeMatch(name string) (string, source.Span, bool) {
	match, ok := w.ctx.Scopes.CloseMatch(name, w.ctx.Arenas.Strings)
	if !ok {
		return "", source.Span{}, false
	}
	if id, found := w.ctx.Scopes.Lookup(w.ctx.Arenas.Strings.Intern(match)); found {
		return match, w.ctx.Scopes.Get(id).Span, true
	}
	return "", source.Span{}, false
}

func (w *walker) isUnknown(id types.TypeID) bool {
	tt, ok := w.ctx.Types.Lookup(id)
	return ok && tt.Kind == types.KindUnknown
}

func (w *walker) isDeferred(id types.TypeID) bool {
	tt, ok := w.ctx.Types.Lookup(id)
	return ok && tt.Kind == types.KindDeferred
}
