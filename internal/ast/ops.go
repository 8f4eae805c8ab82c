package ast

// ExprUnaryOp enumerates unary operator kinds.
type ExprUnaryOp uint8

const (
	// ExprUnaryNeg represents arithmetic negation (-).
	ExprUnaryNeg ExprUnaryOp = iota
	// ExprUnaryPlus represents the unary plus (+).
	ExprUnaryPlus
	// ExprUnaryNot represents logical negation (!).
	ExprUnaryNot
	// ExprUnaryBitNot represents bitwise negation (~).
	ExprUnaryBitNot
)

func (op ExprUnaryOp) String() string {
	switch op {
	case ExprUnaryNeg:
		return "-"
	case ExprUnaryPlus:
		return "+"
	case ExprUnaryNot:
		return "!"
	case ExprUnaryBitNot:
		return "~"
	}
	return "?"
}

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// ExprBinaryAdd represents the addition operator (+).
	ExprBinaryAdd ExprBinaryOp = iota
	// ExprBinarySub represents the subtraction operator (-).
	ExprBinarySub
	// ExprBinaryMul represents the multiplication operator (*).
	ExprBinaryMul
	// ExprBinaryDiv represents the division operator (/).
	ExprBinaryDiv
	// ExprBinaryPow represents the power operator (**).
	ExprBinaryPow
	// ExprBinaryMod represents the modulo operator (%).
	ExprBinaryMod

	// ExprBinaryBitAnd represents the bitwise AND operator (&).
	ExprBinaryBitAnd
	// ExprBinaryBitOr represents the bitwise OR operator (|).
	ExprBinaryBitOr
	// ExprBinaryBitXor represents the bitwise XOR operator (^).
	ExprBinaryBitXor
	// ExprBinaryShl represents the left shift operator (<<).
	ExprBinaryShl
	// ExprBinaryShr represents the right shift operator (>>).
	ExprBinaryShr

	// ExprBinaryLogicalAnd represents the logical AND operator (&&).
	ExprBinaryLogicalAnd
	// ExprBinaryLogicalOr represents the logical OR operator (||).
	ExprBinaryLogicalOr

	// ExprBinaryEq represents the equality operator (==).
	ExprBinaryEq
	// ExprBinaryNotEq represents the inequality operator (!=).
	ExprBinaryNotEq
	// ExprBinaryLess represents the less-than operator (<).
	ExprBinaryLess
	// ExprBinaryLessEq represents the less-or-equal operator (<=).
	ExprBinaryLessEq
	// ExprBinaryGreater represents the greater-than operator (>).
	ExprBinaryGreater
	// ExprBinaryGreaterEq represents the greater-or-equal operator (>=).
	ExprBinaryGreaterEq
)

func (op ExprBinaryOp) String() string {
	switch op {
	case ExprBinaryAdd:
		return "+"
	case ExprBinarySub:
		return "-"
	case ExprBinaryMul:
		return "*"
	case ExprBinaryDiv:
		return "/"
	case ExprBinaryPow:
		return "**"
	case ExprBinaryMod:
		return "%"
	case ExprBinaryBitAnd:
		return "&"
	case ExprBinaryBitOr:
		return "|"
	case ExprBinaryBitXor:
		return "^"
	case ExprBinaryShl:
		return "<<"
	case ExprBinaryShr:
		return ">>"
	case ExprBinaryLogicalAnd:
		return "&&"
	case ExprBinaryLogicalOr:
		return "||"
	case ExprBinaryEq:
		return "=="
	case ExprBinaryNotEq:
		return "!="
	case ExprBinaryLess:
		return "<"
	case ExprBinaryLessEq:
		return "<="
	case ExprBinaryGreater:
		return ">"
	case ExprBinaryGreaterEq:
		return ">="
	}
	return "?"
}
