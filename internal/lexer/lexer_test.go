package lexer

import (
	"testing"

	"terbium/internal/source"
	"terbium/internal/token"
)

func tokenize(t *testing.T, content string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.trb", []byte(content))
	toks, err := Tokenize(fs.Get(id))
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", content, err)
	}
	return toks
}

func tokenizeErr(t *testing.T, content string) error {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.trb", []byte(content))
	_, err := Tokenize(fs.Get(id))
	if err == nil {
		t.Fatalf("Tokenize(%q): expected an error", content)
	}
	return err
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, content string, want ...token.Kind) {
	t.Helper()
	want = append(want, token.EOF)
	got := kinds(tokenize(t, content))
	if len(got) != len(want) {
		t.Fatalf("tokenize(%q) = %v, want %v", content, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tokenize(%q)[%d] = %s, want %s", content, i, got[i], want[i])
		}
	}
}

func TestTokenizeStatements(t *testing.T) {
	expectKinds(t, "let mut x = 5;",
		token.KwLet, token.KwMut, token.Ident, token.Assign, token.IntLit, token.Semicolon)
	expectKinds(t, "const y: int = 0;",
		token.KwConst, token.Ident, token.Colon, token.Ident, token.Assign, token.IntLit, token.Semicolon)
	expectKinds(t, "if a { b; } else { c; }",
		token.KwIf, token.Ident, token.LBrace, token.Ident, token.Semicolon, token.RBrace,
		token.KwElse, token.LBrace, token.Ident, token.Semicolon, token.RBrace)
	expectKinds(t, "[a, b] = t;",
		token.LBracket, token.Ident, token.Comma, token.Ident, token.RBracket,
		token.Assign, token.Ident, token.Semicolon)
}

func TestTokenizeOperators(t *testing.T) {
	expectKinds(t, "a ** b << c && d <= e != f -> g",
		token.Ident, token.StarStar, token.Ident, token.Shl, token.Ident,
		token.AndAnd, token.Ident, token.LtEq, token.Ident,
		token.BangEq, token.Ident, token.Arrow, token.Ident)
	// Greedy two-byte match: ">>" is one token, "> >" is two.
	expectKinds(t, "a >> b", token.Ident, token.Shr, token.Ident)
	expectKinds(t, "a > > b", token.Ident, token.Gt, token.Gt, token.Ident)
	expectKinds(t, "!~x", token.Bang, token.Tilde, token.Ident)
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
		text string
	}{
		{"0", token.IntLit, "0"},
		{"1_000_000", token.IntLit, "1_000_000"},
		{"0b1010", token.IntLit, "0b1010"},
		{"0o777", token.IntLit, "0o777"},
		{"0xDEAD_beef", token.IntLit, "0xDEAD_beef"},
		{"3.25", token.FloatLit, "3.25"},
		{".5", token.FloatLit, ".5"},
		{"1e9", token.FloatLit, "1e9"},
		{"2.5e-3", token.FloatLit, "2.5e-3"},
		{"1E+2", token.FloatLit, "1E+2"},
	}
	for _, tt := range tests {
		toks := tokenize(t, tt.src)
		if len(toks) != 2 {
			t.Errorf("tokenize(%q) produced %d tokens, want literal + EOF", tt.src, len(toks))
			continue
		}
		if toks[0].Kind != tt.kind || toks[0].Text != tt.text {
			t.Errorf("tokenize(%q) = %s %q, want %s %q", tt.src, toks[0].Kind, toks[0].Text, tt.kind, tt.text)
		}
	}
}

func TestTokenizeNumberEdges(t *testing.T) {
	// A trailing "e" with nothing after it is not an exponent; the
	// literal ends before it.
	toks := tokenize(t, "1e")
	if toks[0].Kind != token.IntLit || toks[0].Text != "1" {
		t.Errorf("tokenize(1e)[0] = %s %q, want int 1", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.Ident || toks[1].Text != "e" {
		t.Errorf("tokenize(1e)[1] = %s %q, want ident e", toks[1].Kind, toks[1].Text)
	}

	tokenizeErr(t, "0b")
	tokenizeErr(t, "0x_")
	tokenizeErr(t, "1e+")
}

func TestTokenizeStrings(t *testing.T) {
	toks := tokenize(t, `"hello\n\t\"quoted\""`)
	if toks[0].Kind != token.StringLit {
		t.Fatalf("kind = %s, want string", toks[0].Kind)
	}
	if want := "hello\n\t\"quoted\""; toks[0].Text != want {
		t.Errorf("decoded = %q, want %q", toks[0].Text, want)
	}

	tokenizeErr(t, `"no closing quote`)
	tokenizeErr(t, "\"newline\nbreaks\"")
	tokenizeErr(t, `"\q"`)
}

func TestTokenizeComments(t *testing.T) {
	expectKinds(t, "a // comment\nb", token.Ident, token.Ident)
	expectKinds(t, "a /* one /* nested */ still */ b", token.Ident, token.Ident)
	tokenizeErr(t, "/* never closed")
}

func TestTokenizeIdentifiers(t *testing.T) {
	toks := tokenize(t, "snake_case camelCase _hidden x1")
	wantTexts := []string{"snake_case", "camelCase", "_hidden", "x1"}
	for i, want := range wantTexts {
		if toks[i].Kind != token.Ident || toks[i].Text != want {
			t.Errorf("token %d = %s %q, want ident %q", i, toks[i].Kind, toks[i].Text, want)
		}
	}

	// Unicode identifiers survive with NFC-normalized text.
	toks = tokenize(t, "число")
	if toks[0].Kind != token.Ident || toks[0].Text != "число" {
		t.Errorf("unicode ident = %s %q", toks[0].Kind, toks[0].Text)
	}
}

func TestTokenizeKeywords(t *testing.T) {
	expectKinds(t, "let const mut if else while true false null",
		token.KwLet, token.KwConst, token.KwMut, token.KwIf, token.KwElse,
		token.KwWhile, token.KwTrue, token.KwFalse, token.KwNull)
	// Prefixes of keywords are ordinary identifiers.
	toks := tokenize(t, "letter nullable")
	if toks[0].Kind != token.Ident || toks[1].Kind != token.Ident {
		t.Errorf("keyword prefixes misclassified: %s %s", toks[0].Kind, toks[1].Kind)
	}
}

func TestTokenizeSpans(t *testing.T) {
	toks := tokenize(t, "let x")
	if toks[0].Span.Start != 0 || toks[0].Span.End != 3 {
		t.Errorf("let span = [%d, %d), want [0, 3)", toks[0].Span.Start, toks[0].Span.End)
	}
	if toks[1].Span.Start != 4 || toks[1].Span.End != 5 {
		t.Errorf("x span = [%d, %d), want [4, 5)", toks[1].Span.Start, toks[1].Span.End)
	}
}

func TestTokenizeInvalidByte(t *testing.T) {
	tokenizeErr(t, "let @ = 1;")
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.trb", []byte("a b"))
	lx := New(fs.Get(id))

	first := lx.Peek()
	if first.Kind != token.Ident || first.Text != "a" {
		t.Fatalf("Peek = %s %q", first.Kind, first.Text)
	}
	if got := lx.Next(); got != first {
		t.Errorf("Next after Peek = %+v, want %+v", got, first)
	}
	if got := lx.Next(); got.Text != "b" {
		t.Errorf("second Next = %q, want b", got.Text)
	}
}
