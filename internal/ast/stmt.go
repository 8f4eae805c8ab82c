package ast

import (
	"terbium/internal/source"
)

// StmtKind enumerates statement categories.
type StmtKind uint8

const (
	// StmtDeclare represents a let/const declaration.
	StmtDeclare StmtKind = iota
	// StmtAssign represents an assignment to existing bindings.
	StmtAssign
	// StmtExpr represents a bare expression statement.
	StmtExpr
)

// Stmt represents a statement node in the AST.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtDeclareData carries a declaration. The parser accepts several
// comma-separated targets; the analyzer only supports one and faults on
// more (a coverage gap, not an input diagnostic).
type StmtDeclareData struct {
	Targets []TargetID
	Type    TypeExprID // NoTypeExprID when the declaration is unannotated
	Value   ExprID     // NoExprID when there is no initializer
	IsMut   bool
	IsConst bool
}

// StmtAssignData carries an assignment.
type StmtAssignData struct {
	Targets []TargetID
	Value   ExprID
}

// StmtExprData carries an expression statement. Terminated reports whether
// a trailing semicolon was present; the final unterminated expression of a
// body is the body's value.
type StmtExprData struct {
	Expr       ExprID
	Terminated bool
}

// Stmts manages allocation of statement nodes and their payloads.
type Stmts struct {
	Arena     *Arena[Stmt]
	Declares  *Arena[StmtDeclareData]
	Assigns   *Arena[StmtAssignData]
	ExprStmts *Arena[StmtExprData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:     NewArena[Stmt](capHint),
		Declares:  NewArena[StmtDeclareData](capHint / 2),
		Assigns:   NewArena[StmtAssignData](capHint / 2),
		ExprStmts: NewArena[StmtExprData](capHint / 2),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload uint32) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

// Get returns the statement node for id, or nil for NoStmtID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewDeclare allocates a declaration statement.
func (s *Stmts) NewDeclare(span source.Span, data StmtDeclareData) StmtID {
	return s.new(StmtDeclare, span, s.Declares.Allocate(data))
}

// NewAssign allocates an assignment statement.
func (s *Stmts) NewAssign(span source.Span, data StmtAssignData) StmtID {
	return s.new(StmtAssign, span, s.Assigns.Allocate(data))
}

// NewExprStmt allocates an expression statement.
func (s *Stmts) NewExprStmt(span source.Span, data StmtExprData) StmtID {
	return s.new(StmtExpr, span, s.ExprStmts.Allocate(data))
}

// Declare returns the declaration payload for id.
func (s *Stmts) Declare(id StmtID) (*StmtDeclareData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDeclare {
		return nil, false
	}
	return s.Declares.Get(uint32(stmt.Payload)), true
}

// Assign returns the assignment payload for id.
func (s *Stmts) Assign(id StmtID) (*StmtAssignData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(stmt.Payload)), true
}

// ExprStmt returns the expression statement payload for id.
func (s *Stmts) ExprStmt(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.ExprStmts.Get(uint32(stmt.Payload)), true
}
