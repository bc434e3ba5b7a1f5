package parser

import (
	"fmt"

	"sift/internal/diag"
	"sift/internal/token"
)

// Binding powers for the Pratt loop, loosest first.
func infixPower(k token.Kind) int {
	switch k {
	case token.OrOr:
		return 1
	case token.AndAnd:
		return 2
	case token.EqEq, token.NotEq:
		return 3
	case token.Lt, token.Gt, token.Le, token.Ge:
		return 4
	case token.Plus, token.Minus:
		return 5
	case token.Star, token.Slash, token.Percent:
		return 6
	default:
		return 0
	}
}

// parseExpr parses one expression. It returns false when the current
// token cannot start an expression; in that case the token is left for
// the caller's recovery and SynExpectExpression has been reported.
func (p *Parser) parseExpr() bool {
	return p.parseBinary(1)
}

func (p *Parser) parseBinary(minPower int) bool {
	if !p.parseUnary() {
		return false
	}
	for {
		power := infixPower(p.tok.Kind)
		if power == 0 || power < minPower {
			return true
		}
		p.advance() // operator
		if !p.parseBinary(power + 1) {
			return true // rhs missing, already reported
		}
	}
}

func (p *Parser) parseUnary() bool {
	if p.at(token.Minus) || p.at(token.Bang) {
		p.advance()
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() bool {
	switch p.tok.Kind {
	case token.Ident:
		p.advance()
		p.parseCallSuffix()
		return true

	case token.Number, token.String, token.KwTrue, token.KwFalse:
		p.advance()
		return true

	case token.LParen:
		lparen := p.tok.Span
		p.advance()
		p.parseExpr()
		if !p.eat(token.RParen) {
			diag.ReportError(p.reporter, diag.SynUnclosedParen, lparen,
				"unclosed parenthesized expression")
		}
		return true

	case token.Invalid:
		// The lexer already reported this token.
		p.advance()
		return true

	default:
		diag.ReportError(p.reporter, diag.SynExpectExpression, p.tok.Span,
			fmt.Sprintf("expected expression, found %s", p.describe()))
		return false
	}
}

// parseCallSuffix parses zero or more call argument lists after a name.
func (p *Parser) parseCallSuffix() {
	for p.at(token.LParen) {
		lparen := p.tok.Span
		p.advance()
		if !p.at(token.RParen) {
			for {
				if !p.parseExpr() {
					break
				}
				if !p.eat(token.Comma) {
					break
				}
			}
		}
		if !p.eat(token.RParen) {
			diag.ReportError(p.reporter, diag.SynUnclosedParen, lparen,
				"unclosed argument list")
			return
		}
	}
}
