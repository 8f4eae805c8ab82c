package lexer

import (
	"strings"

	"terbium/internal/token"
)

// scanString handles double-quoted strings with the usual escapes.
// Token.Text carries the decoded value, not the source slice.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	var sb strings.Builder
	for {
		if lx.cursor.EOF() {
			return lx.fail(lx.cursor.SpanFrom(start), "unterminated string literal")
		}
		b := lx.cursor.Bump()
		switch b {
		case '"':
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: sb.String()}
		case '\n':
			return lx.fail(lx.cursor.SpanFrom(start), "unterminated string literal")
		case '\\':
			if lx.cursor.EOF() {
				return lx.fail(lx.cursor.SpanFrom(start), "unterminated string literal")
			}
			esc := lx.cursor.Bump()
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '0':
				sb.WriteByte(0)
			case '\\', '"', '\'':
				sb.WriteByte(esc)
			default:
				return lx.fail(lx.cursor.SpanFrom(start), "unknown escape sequence")
			}
		default:
			sb.WriteByte(b)
		}
	}
}
