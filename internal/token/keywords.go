package token

var keywords = map[string]Kind{
	"let":   KwLet,
	"const": KwConst,
	"mut":   KwMut,
	"if":    KwIf,
	"else":  KwElse,
	"while": KwWhile,
	"true":  KwTrue,
	"false": KwFalse,
	"null":  KwNull,
}

// LookupKeyword returns the keyword kind for s, or Ident when s is a plain
// identifier.
func LookupKeyword(s string) Kind {
	if k, ok := keywords[s]; ok {
		return k
	}
	return Ident
}
