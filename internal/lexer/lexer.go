// Package lexer turns file content into a token stream. Malformed input
// is a plain error on the lexer, not a diagnostic: a file that does not
// tokenize never reaches analysis.
package lexer

import (
	"fmt"

	"terbium/internal/source"
	"terbium/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	look   *token.Token // 1-element lookahead buffer
	err    error        // first malformed-input error
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Err returns the first malformed-input error encountered, if any.
func (lx *Lexer) Err() error {
	return lx.err
}

// Next returns the next significant token. After EOF it keeps returning
// EOF tokens.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokenize drains the lexer. The EOF token is included.
func Tokenize(file *source.File) ([]token.Token, error) {
	lx := New(file)
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			break
		}
	}
	if lx.err != nil {
		return nil, lx.err
	}
	return out, nil
}

// skipTrivia eats whitespace, line comments and nested block comments.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\n':
			lx.cursor.Bump()
		case '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			case '*':
				lx.skipBlockComment()
			default:
				return
			}
		default:
			return
		}
		if lx.err != nil {
			return
		}
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	depth := 1
	for depth > 0 {
		if lx.cursor.EOF() {
			lx.fail(lx.cursor.SpanFrom(start), "unterminated block comment")
			return
		}
		if lx.try2('/', '*') {
			depth++
			continue
		}
		if lx.try2('*', '/') {
			depth--
			continue
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// fail records the first error and produces the Invalid token.
func (lx *Lexer) fail(sp source.Span, msg string) token.Token {
	if lx.err == nil {
		lx.err = fmt.Errorf("%s: %s", sp, msg)
	}
	return token.Token{
		Kind: token.Invalid,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
