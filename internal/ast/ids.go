package ast

type (
	// ModuleID identifies a parsed module (compilation unit).
	ModuleID uint32
	// StmtID identifies a statement node.
	StmtID uint32
	// ExprID identifies an expression node.
	ExprID uint32
	// TargetID identifies a declaration/assignment target pattern.
	TargetID uint32
	// TypeExprID identifies a type annotation node.
	TypeExprID uint32
	// BodyID identifies a braced statement body.
	BodyID uint32
	// PayloadID indexes a per-kind payload arena.
	PayloadID uint32
)

const (
	NoModuleID   ModuleID   = 0
	NoStmtID     StmtID     = 0
	NoExprID     ExprID     = 0
	NoTargetID   TargetID   = 0
	NoTypeExprID TypeExprID = 0
	NoBodyID     BodyID     = 0
	NoPayloadID  PayloadID  = 0
)
