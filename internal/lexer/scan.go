package lexer

import (
	"fmt"

	"sift/internal/diag"
	"sift/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.cursor.TextFrom(m)
	return token.Token{
		Kind: token.LookupKeyword(text),
		Span: lx.cursor.SpanFrom(m),
		Text: text,
	}
}

func (lx *Lexer) scanNumber() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			diag.ReportError(lx.reporter, diag.LexBadNumber,
				lx.cursor.SpanFrom(m), "missing digits after decimal point")
		}
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	// A number glued to identifier characters is one malformed token,
	// not two valid ones.
	if isIdentStart(lx.cursor.Peek()) {
		for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		span := lx.cursor.SpanFrom(m)
		diag.ReportError(lx.reporter, diag.LexBadNumber,
			span, fmt.Sprintf("malformed number %q", lx.cursor.TextFrom(m)))
		return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.TextFrom(m)}
	}
	return token.Token{
		Kind: token.Number,
		Span: lx.cursor.SpanFrom(m),
		Text: lx.cursor.TextFrom(m),
	}
}

func (lx *Lexer) scanString() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\n' {
			break
		}
		lx.cursor.Bump()
		if ch == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump() // escaped char, including \"
			continue
		}
		if ch == '"' {
			return token.Token{
				Kind: token.String,
				Span: lx.cursor.SpanFrom(m),
				Text: lx.cursor.TextFrom(m),
			}
		}
	}
	span := lx.cursor.SpanFrom(m)
	diag.ReportError(lx.reporter, diag.LexUnterminatedString, span, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.TextFrom(m)}
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	m := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	kind := token.Invalid
	switch ch {
	case '=':
		kind = token.Assign
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.EqEq
		}
	case '!':
		kind = token.Bang
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.NotEq
		}
	case '<':
		kind = token.Lt
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.Le
		}
	case '>':
		kind = token.Gt
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.Ge
		}
	case '&':
		if lx.cursor.Peek() == '&' {
			lx.cursor.Bump()
			kind = token.AndAnd
		}
	case '|':
		if lx.cursor.Peek() == '|' {
			lx.cursor.Bump()
			kind = token.OrOr
		}
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semi
	}

	span := lx.cursor.SpanFrom(m)
	text := lx.cursor.TextFrom(m)
	if kind == token.Invalid {
		diag.ReportError(lx.reporter, diag.LexUnknownChar,
			span, fmt.Sprintf("unknown character %q", text))
	}
	return token.Token{Kind: kind, Span: span, Text: text}
}
