// Package parser builds arena ASTs from token streams. Syntax failures
// are plain errors: a file that does not parse never reaches analysis.
package parser

import (
	"fmt"

	"terbium/internal/ast"
	"terbium/internal/lexer"
	"terbium/internal/source"
	"terbium/internal/token"
)

// Parser is the per-file parse state. The whole token stream is lexed up
// front, which keeps backtracking trivial for the statement-head
// disambiguation.
type Parser struct {
	toks   []token.Token
	pos    int
	file   *source.File
	arenas *ast.Builder
}

// ParseFile lexes and parses one file into the shared builder.
func ParseFile(file *source.File, arenas *ast.Builder) (ast.ModuleID, error) {
	toks, err := lexer.Tokenize(file)
	if err != nil {
		return ast.NoModuleID, err
	}
	p := Parser{toks: toks, file: file, arenas: arenas}

	module := arenas.Modules.New(p.peek().Span, file.ID)
	for !p.at(token.EOF) {
		stmt, err := p.parseStmt(true)
		if err != nil {
			return ast.NoModuleID, err
		}
		arenas.PushStmt(module, stmt)
	}
	return module, nil
}

// ParseSource is a convenience wrapper for virtual files.
func ParseSource(fs *source.FileSet, path, content string, arenas *ast.Builder) (ast.ModuleID, error) {
	id := fs.AddVirtual(path, []byte(content))
	return ParseFile(fs.Get(id), arenas)
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos+n]
}

func (p *Parser) next() token.Token {
	tok := p.toks[p.pos]
	if p.pos+1 < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	tok := p.peek()
	if tok.Kind != k {
		return tok, p.errorf(tok, "expected %s, found %s", k, tok.Kind)
	}
	return p.next(), nil
}

func (p *Parser) errorf(tok token.Token, format string, args ...any) error {
	return fmt.Errorf("%s: %s", tok.Span, fmt.Sprintf(format, args...))
}

func (p *Parser) intern(text string) source.StringID {
	return p.arenas.Strings.Intern(text)
}
