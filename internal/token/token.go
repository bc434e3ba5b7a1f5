package token

import (
	"sift/internal/source"
)

// Token is one significant lexeme with its span and raw text.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

var keywords = map[string]Kind{
	"let":    KwLet,
	"fn":     KwFn,
	"return": KwReturn,
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword returns the keyword kind for text, or Ident.
func LookupKeyword(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return Ident
}
