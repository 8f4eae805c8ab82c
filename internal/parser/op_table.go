package parser

import (
	"terbium/internal/ast"
	"terbium/internal/token"
)

// binInfo describes one infix operator for the precedence climber.
type binInfo struct {
	op         ast.ExprBinaryOp
	power      uint8
	rightAssoc bool
}

// binOps maps infix tokens to binding powers. Exponentiation binds the
// tightest and associates right; logical or the loosest.
var binOps = map[token.Kind]binInfo{
	token.StarStar: {op: ast.ExprBinaryPow, power: 90, rightAssoc: true},

	token.Star:    {op: ast.ExprBinaryMul, power: 70},
	token.Slash:   {op: ast.ExprBinaryDiv, power: 70},
	token.Percent: {op: ast.ExprBinaryMod, power: 70},

	token.Plus:  {op: ast.ExprBinaryAdd, power: 60},
	token.Minus: {op: ast.ExprBinarySub, power: 60},

	token.Shl: {op: ast.ExprBinaryShl, power: 55},
	token.Shr: {op: ast.ExprBinaryShr, power: 55},

	token.Amp:   {op: ast.ExprBinaryBitAnd, power: 50},
	token.Caret: {op: ast.ExprBinaryBitXor, power: 45},
	token.Pipe:  {op: ast.ExprBinaryBitOr, power: 40},

	token.Lt:   {op: ast.ExprBinaryLess, power: 35},
	token.LtEq: {op: ast.ExprBinaryLessEq, power: 35},
	token.Gt:   {op: ast.ExprBinaryGreater, power: 35},
	token.GtEq: {op: ast.ExprBinaryGreaterEq, power: 35},

	token.EqEq:   {op: ast.ExprBinaryEq, power: 30},
	token.BangEq: {op: ast.ExprBinaryNotEq, power: 30},

	token.AndAnd: {op: ast.ExprBinaryLogicalAnd, power: 20},
	token.OrOr:   {op: ast.ExprBinaryLogicalOr, power: 15},
}

// unaryOps maps prefix tokens to unary operators.
var unaryOps = map[token.Kind]ast.ExprUnaryOp{
	token.Minus: ast.ExprUnaryNeg,
	token.Plus:  ast.ExprUnaryPlus,
	token.Bang:  ast.ExprUnaryNot,
	token.Tilde: ast.ExprUnaryBitNot,
}

// unaryPower is the binding power of prefix operators: tighter than any
// infix operator except exponentiation.
const unaryPower uint8 = 80
