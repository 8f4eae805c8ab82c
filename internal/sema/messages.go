package sema

import (
	"fmt"

	"terbium/internal/diag"
	"terbium/internal/source"
)

// Diagnostic constructors. The message and label wording is part of the
// tool's contract with the error index, so changes here need a matching
// documentation update.

func newDiag(k Kind, primary source.Span, msg string) diag.Diagnostic {
	return diag.New(k.Severity(), k.Code(), primary, msg)
}

func nonSnakeCase(name, counterpart string, span source.Span) diag.Diagnostic {
	return newDiag(NonSnakeCase, span, "non-type identifier names should be snake_case").
		WithEmphasis(span, fmt.Sprintf("%q is not snake_case", name)).
		WithHelp(fmt.Sprintf("rename to %q", counterpart))
}

func nonASCII(name string, span source.Span) diag.Diagnostic {
	return newDiag(NonASCII, span, "identifier names should contain only ASCII characters").
		WithEmphasis(span, fmt.Sprintf("%q contains non-ASCII characters", name)).
		WithHelp("rename using only ASCII letters, digits and underscores")
}

func unnecessaryMutVariable(name string, span source.Span) diag.Diagnostic {
	return newDiag(UnnecessaryMutVariables, span, "variable was unneedingly declared as mutable").
		WithEmphasis(span, fmt.Sprintf("variable %q declared mutable here, but it is never mutated", name)).
		WithHelp("make variable immutable by declaring with `let` instead")
}

func unusedVariable(name string, span source.Span) diag.Diagnostic {
	return newDiag(UnusedVariables, span, "variable is declared but never used").
		WithEmphasis(span, fmt.Sprintf("variable %q is declared here, but it is never used", name)).
		WithHelp(fmt.Sprintf("remove the declaration, or prefix with an underscore: %q", "_"+name))
}

func globalMutableVariable(span source.Span) diag.Diagnostic {
	return newDiag(GlobalMutableVariables, span, "mutable declaration found in the global scope").
		WithEmphasis(span, "variables declared here are accessible to the entire program").
		WithHelp("declare as immutable instead, or move the declaration into a " +
			"non-global context such as inside of a function")
}

func unresolvedIdentifier(name string, closeName string, closeSpan source.Span, hasClose bool, span source.Span) diag.Diagnostic {
	d := newDiag(UnresolvedIdentifiers, span, "identifier could not be resolved").
		WithEmphasis(span, fmt.Sprintf("variable %q not found in this scope", name))
	if hasClose {
		d = d.WithLabel(closeSpan, fmt.Sprintf("perhaps you meant %q, which was declared here", closeName))
	}
	return d
}

func redeclaredConstVariable(name string, declSpan, span source.Span) diag.Diagnostic {
	return newDiag(RedeclaredConstVariables, span, "cannot redeclare variable declared as `const`").
		WithEmphasis(declSpan, fmt.Sprintf("variable %q declared as `const` here", name)).
		WithEmphasis(span, fmt.Sprintf("attempted to redeclare %q here", name)).
		WithHelp("declare with `let` instead")
}

func reassignedImmutableVariable(name string, declSpan, span source.Span, wasConst bool) diag.Diagnostic {
	what := "immutable variable"
	how := "immutable"
	if wasConst {
		what = "variable declared as `const`"
		how = "`const`"
	}
	return newDiag(ReassignedImmutableVariables, span, "cannot reassign to "+what).
		WithLabel(declSpan, fmt.Sprintf("variable %q declared as %s here", name, how)).
		WithEmphasis(span, fmt.Sprintf("attempted to reassign to variable %q here", name)).
		WithHelp("make variable mutable by declaring with `let mut` instead")
}

func unsupportedUnaryOperator(span source.Span, valTy string, valSpan source.Span, op string, opSpan source.Span) diag.Diagnostic {
	return newDiag(UnsupportedOperators, span, fmt.Sprintf("type does not support unary %q operator", op)).
		WithLabel(valSpan, fmt.Sprintf("this is of type %s", valTy)).
		WithEmphasis(opSpan, fmt.Sprintf("cannot use operator %q on %s", op, valTy)).
		WithHelp("try casting to a supported type")
}

func unsupportedBinaryOperator(span source.Span, lhsTy string, lhsSpan source.Span, rhsTy string, rhsSpan source.Span, op string, opSpan source.Span) diag.Diagnostic {
	return newDiag(UnsupportedOperators, span, fmt.Sprintf("these types do not support %q operator", op)).
		WithLabel(lhsSpan, fmt.Sprintf("this is of type %s", lhsTy)).
		WithLabel(rhsSpan, fmt.Sprintf("this is of type %s", rhsTy)).
		WithEmphasis(opSpan, fmt.Sprintf("cannot use operator %q on %s and %s", op, lhsTy, rhsTy)).
		WithHelp("try casting to supported types")
}

func unbalancedIfStatement(span, firstSpan source.Span, firstTy string, secondSpan source.Span, secondTy string) diag.Diagnostic {
	return newDiag(UnbalancedIfStatements, span, "return types of if-statement are unbalanced").
		WithLabel(firstSpan, fmt.Sprintf("this resolves to %s", firstTy)).
		WithEmphasis(secondSpan, fmt.Sprintf("this resolves to %s, which is incompatible with %s", secondTy, firstTy)).
		WithHelp("try adding semicolons or balancing the types")
}

func unbalancedIfStatementNoElse(span, firstSpan source.Span, firstTy string) diag.Diagnostic {
	return newDiag(UnbalancedIfStatements, span, "return types of if-statement are unbalanced").
		WithEmphasis(firstSpan, fmt.Sprintf("this resolves to %s, which is not null", firstTy)).
		WithEmphasis(span, "note that the lack of an `else` causes the possibility of null").
		WithHelp("try adding semicolons")
}

func incompatibleTypes(expectedTy string, annotSpan source.Span, actualTy string, valueSpan source.Span) diag.Diagnostic {
	return newDiag(IncompatibleTypes, valueSpan, "received a type that was incompatible with what was expected").
		WithLabel(annotSpan, fmt.Sprintf("expected %s because of this annotation", expectedTy)).
		WithEmphasis(valueSpan, fmt.Sprintf("this is of type %s", actualTy)).
		WithHelp("change the value or loosen the annotation")
}

func uninferableType(span source.Span) diag.Diagnostic {
	return newDiag(UninferableTypes, span, "the type of this expression could not be inferred").
		WithEmphasis(span, "no concrete type could be determined here").
		WithHelp("add a type annotation to the declaration")
}
