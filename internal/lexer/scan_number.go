package lexer

import (
	"terbium/internal/token"
)

// scanNumber handles 0, 123, 0b..., 0o..., 0x..., 1.0, 1e-3, .5 and
// underscores between digits. Token.Text is the exact source slice.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// leading dot means ".digits"
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			return lx.fail(lx.cursor.SpanFrom(start), "expected digit after '.'")
		}
		kind = token.FloatLit
		lx.eatDecDigits()
		return lx.finishExponent(start, kind)
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			if !lx.eatBaseDigits(func(b byte) bool { return b == '0' || b == '1' }) {
				return lx.fail(lx.cursor.SpanFrom(start), "expected binary digits")
			}
			return lx.emitNumber(start, kind)
		case 'o', 'O':
			lx.cursor.Bump()
			if !lx.eatBaseDigits(func(b byte) bool { return b >= '0' && b <= '7' }) {
				return lx.fail(lx.cursor.SpanFrom(start), "expected octal digits")
			}
			return lx.emitNumber(start, kind)
		case 'x', 'X':
			lx.cursor.Bump()
			if !lx.eatBaseDigits(isHex) {
				return lx.fail(lx.cursor.SpanFrom(start), "expected hex digits")
			}
			return lx.emitNumber(start, kind)
		}
	}

	lx.eatDecDigits()

	if lx.cursor.Peek() == '.' {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '.' && isDec(b1) {
			kind = token.FloatLit
			lx.cursor.Bump()
			lx.eatDecDigits()
		}
	}

	return lx.finishExponent(start, kind)
}

func (lx *Lexer) finishExponent(start Mark, kind token.Kind) token.Token {
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		_, b1, ok := lx.cursor.Peek2()
		if ok && (isDec(b1) || b1 == '+' || b1 == '-') {
			lx.cursor.Bump() // e
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			if !isDec(lx.cursor.Peek()) {
				return lx.fail(lx.cursor.SpanFrom(start), "expected digits in exponent")
			}
			kind = token.FloatLit
			lx.eatDecDigits()
		}
	}
	return lx.emitNumber(start, kind)
}

func (lx *Lexer) emitNumber(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) eatDecDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

// eatBaseDigits eats digits of a prefixed literal; at least one real
// digit is required.
func (lx *Lexer) eatBaseDigits(valid func(byte) bool) bool {
	digits := 0
	for {
		b := lx.cursor.Peek()
		if valid(b) {
			digits++
			lx.cursor.Bump()
			continue
		}
		if b == '_' {
			lx.cursor.Bump()
			continue
		}
		break
	}
	return digits > 0
}
