package ast

import (
	"terbium/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent represents an identifier expression.
	ExprIdent ExprKind = iota
	// ExprLit represents a literal expression.
	ExprLit
	// ExprUnary represents a unary expression.
	ExprUnary
	// ExprBinary represents a binary expression.
	ExprBinary
	// ExprGroup represents a parenthesized expression.
	ExprGroup
	// ExprIf represents an if/else-if/else expression.
	ExprIf
	// ExprWhile represents a while loop expression.
	ExprWhile
)

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// LitKind enumerates literal categories.
type LitKind uint8

const (
	// LitInt represents an integer literal.
	LitInt LitKind = iota
	// LitFloat represents a floating-point literal.
	LitFloat
	// LitString represents a string literal.
	LitString
	// LitBool represents a boolean literal.
	LitBool
	// LitNull represents the null literal.
	LitNull
)

// ExprIdentData carries the interned name of an identifier expression.
type ExprIdentData struct {
	Name source.StringID
}

// ExprLiteralData carries a literal's decoded value.
type ExprLiteralData struct {
	Kind     LitKind
	IntVal   int64
	FloatVal float64
	StrVal   source.StringID
	BoolVal  bool
}

// ExprUnaryData carries a unary application.
type ExprUnaryData struct {
	Op     ExprUnaryOp
	OpSpan source.Span
	Value  ExprID
}

// ExprBinaryData carries a binary application.
type ExprBinaryData struct {
	Op     ExprBinaryOp
	OpSpan source.Span
	Left   ExprID
	Right  ExprID
}

// ExprGroupData carries a parenthesized inner expression.
type ExprGroupData struct {
	Inner ExprID
}

// IfBranch is one condition/body pair of an if expression.
type IfBranch struct {
	Cond ExprID
	Body BodyID
}

// ExprIfData carries an if expression. Else is NoBodyID when absent.
type ExprIfData struct {
	Then    IfBranch
	ElseIfs []IfBranch
	Else    BodyID
}

// ExprWhileData carries a while loop.
type ExprWhileData struct {
	Cond ExprID
	Body BodyID
}
