package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating-point literal.
	FloatLit
	// StringLit represents a string literal.
	StringLit

	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false
	// KwNull represents the 'null' literal keyword.
	KwNull // null

	// Plus represents '+'.
	Plus
	// Minus represents '-'.
	Minus
	// Star represents '*'.
	Star
	// StarStar represents '**'.
	StarStar
	// Slash represents '/'.
	Slash
	// Percent represents '%'.
	Percent
	// Amp represents '&'.
	Amp
	// Pipe represents '|'.
	Pipe
	// Caret represents '^'.
	Caret
	// Shl represents '<<'.
	Shl
	// Shr represents '>>'.
	Shr
	// AndAnd represents '&&'.
	AndAnd
	// OrOr represents '||'.
	OrOr
	// Bang represents '!'.
	Bang
	// Tilde represents '~'.
	Tilde
	// Assign represents '='.
	Assign
	// EqEq represents '=='.
	EqEq
	// BangEq represents '!='.
	BangEq
	// Lt represents '<'.
	Lt
	// LtEq represents '<='.
	LtEq
	// Gt represents '>'.
	Gt
	// GtEq represents '>='.
	GtEq
	// Question represents '?'.
	Question
	// Arrow represents '->'.
	Arrow
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// Comma represents ','.
	Comma
	// Colon represents ':'.
	Colon
	// Semicolon represents ';'.
	Semicolon
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case EOF:
		return "eof"
	case Ident:
		return "ident"
	case IntLit:
		return "int"
	case FloatLit:
		return "float"
	case StringLit:
		return "string"
	case KwLet:
		return "let"
	case KwConst:
		return "const"
	case KwMut:
		return "mut"
	case KwIf:
		return "if"
	case KwElse:
		return "else"
	case KwWhile:
		return "while"
	case KwTrue:
		return "true"
	case KwFalse:
		return "false"
	case KwNull:
		return "null"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case StarStar:
		return "**"
	case Slash:
		return "/"
	case Percent:
		return "%"
	case Amp:
		return "&"
	case Pipe:
		return "|"
	case Caret:
		return "^"
	case Shl:
		return "<<"
	case Shr:
		return ">>"
	case AndAnd:
		return "&&"
	case OrOr:
		return "||"
	case Bang:
		return "!"
	case Tilde:
		return "~"
	case Assign:
		return "="
	case EqEq:
		return "=="
	case BangEq:
		return "!="
	case Lt:
		return "<"
	case LtEq:
		return "<="
	case Gt:
		return ">"
	case GtEq:
		return ">="
	case Question:
		return "?"
	case Arrow:
		return "->"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Comma:
		return ","
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	}
	return "unknown"
}
