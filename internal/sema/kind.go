// Package sema walks parsed modules, maintains the scope store, infers
// expression types and collects diagnostics.
package sema

import (
	"fmt"

	"terbium/internal/diag"
)

// Kind enumerates the diagnostic categories the walker can emit. Each
// kind carries a fixed severity tier and a stable code referencing the
// error index.
type Kind uint8

const (
	// NonSnakeCase [W000]: non-type identifier names should be snake_case.
	NonSnakeCase Kind = iota
	// NonPascalCase [W001]: type identifier names should be PascalCase.
	NonPascalCase
	// NonASCII [W002]: identifier names should contain only ASCII characters.
	NonASCII
	// UnusedVariables [W003]: a variable was declared but never used.
	UnusedVariables
	// UnnecessaryMutVariables [W004]: a variable was declared mutable but never mutated.
	UnnecessaryMutVariables
	// GlobalMutableVariables [W005]: global mutable variables are discouraged.
	GlobalMutableVariables
	// UnbalancedIfStatements [W006]: value of an if statement has unbalanced types.
	UnbalancedIfStatements
	// UnresolvedIdentifiers [E001]: an identifier could not be found in scope.
	UnresolvedIdentifiers
	// RedeclaredConstVariables [E002]: a const variable was redeclared.
	RedeclaredConstVariables
	// ReassignedImmutableVariables [E003]: an immutable variable was reassigned.
	ReassignedImmutableVariables
	// UnsupportedOperators [E004]: the operator is not supported for the type.
	UnsupportedOperators
	// IncompatibleTypes [E005]: a type was incompatible with what was expected.
	IncompatibleTypes
	// UninferableTypes [E006]: the type could not be inferred.
	UninferableTypes

	numKinds
)

// Severity returns the warning tier 1 to 5, or 0 for errors. A higher
// number means a more severe warning.
func (k Kind) Severity() diag.Severity {
	switch k {
	case NonSnakeCase, NonPascalCase, NonASCII:
		return 1
	case UnusedVariables, UnnecessaryMutVariables:
		return 2
	case UnbalancedIfStatements:
		return 3
	case GlobalMutableVariables:
		return 4
	default:
		return diag.SevError
	}
}

// Code returns the stable error-index code. Warnings and errors number
// independently.
func (k Kind) Code() diag.Code {
	var num uint8
	switch k {
	case NonSnakeCase:
		num = 0
	case NonPascalCase, UnresolvedIdentifiers:
		num = 1
	case NonASCII, RedeclaredConstVariables:
		num = 2
	case UnusedVariables, ReassignedImmutableVariables:
		num = 3
	case UnnecessaryMutVariables, UnsupportedOperators:
		num = 4
	case GlobalMutableVariables, IncompatibleTypes:
		num = 5
	case UnbalancedIfStatements, UninferableTypes:
		num = 6
	}
	if k.IsError() {
		return diag.ErrCode(num)
	}
	return diag.WarnCode(num)
}

// IsWarning reports whether k is a warning-tier kind.
func (k Kind) IsWarning() bool {
	return k.Severity() != diag.SevError
}

// IsError reports whether k is an error-tier kind.
func (k Kind) IsError() bool {
	return k.Severity() == diag.SevError
}

func (k Kind) String() string {
	switch k {
	case NonSnakeCase:
		return "non-snake-case"
	case NonPascalCase:
		return "non-pascal-case"
	case NonASCII:
		return "non-ascii"
	case UnusedVariables:
		return "unused-variables"
	case UnnecessaryMutVariables:
		return "unnecessary-mut-variables"
	case GlobalMutableVariables:
		return "global-mutable-variables"
	case UnbalancedIfStatements:
		return "unbalanced-if-statements"
	case UnresolvedIdentifiers:
		return "unresolved-identifiers"
	case RedeclaredConstVariables:
		return "redeclared-const-variables"
	case ReassignedImmutableVariables:
		return "reassigned-immutable-variables"
	case UnsupportedOperators:
		return "unsupported-operators"
	case IncompatibleTypes:
		return "incompatible-types"
	case UninferableTypes:
		return "uninferable-types"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind resolves the string form used in config files and CLI flags.
func ParseKind(s string) (Kind, error) {
	for k := Kind(0); k < numKinds; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("invalid analyzer %q", s)
}
