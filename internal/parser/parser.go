package parser

import (
	"fmt"

	"sift/internal/diag"
	"sift/internal/lexer"
	"sift/internal/token"
)

// Parser checks one file of the fixture language: a small statement
// language with let bindings, functions, control flow and expressions.
// It builds no tree; its output is the diagnostics it reports.
type Parser struct {
	lx       *lexer.Lexer
	reporter diag.Reporter
	tok      token.Token
	scopes   *scopeStack
}

func New(lx *lexer.Lexer, reporter diag.Reporter) *Parser {
	p := &Parser{
		lx:       lx,
		reporter: reporter,
		scopes:   newScopeStack(),
	}
	p.advance()
	return p
}

// ParseFile consumes the whole token stream, reporting diagnostics.
func (p *Parser) ParseFile() {
	for p.tok.Kind != token.EOF {
		p.parseStmt()
	}
}

func (p *Parser) advance() {
	p.tok = p.lx.Next()
}

func (p *Parser) at(k token.Kind) bool {
	return p.tok.Kind == k
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expectSemi consumes a ';' or reports SynExpectSemicolon at the current
// token without consuming it, so the caller's recovery sees it.
func (p *Parser) expectSemi() {
	if p.eat(token.Semi) {
		return
	}
	diag.ReportError(p.reporter, diag.SynExpectSemicolon, p.tok.Span,
		fmt.Sprintf("expected ';', found %s", p.describe()))
	p.syncStmt()
}

// describe renders the current token for messages.
func (p *Parser) describe() string {
	switch p.tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident, token.Number, token.String, token.Invalid:
		return fmt.Sprintf("%q", p.tok.Text)
	default:
		return p.tok.Kind.String()
	}
}

// syncStmt skips ahead to a statement boundary: past the next ';', or
// up to a '}' / EOF.
func (p *Parser) syncStmt() {
	for {
		switch p.tok.Kind {
		case token.Semi:
			p.advance()
			return
		case token.RBrace, token.EOF:
			return
		default:
			p.advance()
		}
	}
}

func (p *Parser) parseStmt() {
	switch p.tok.Kind {
	case token.KwLet:
		p.parseLet()
	case token.KwFn:
		p.parseFn()
	case token.KwReturn:
		p.parseReturn()
	case token.KwIf:
		p.parseIf()
	case token.KwWhile:
		p.parseWhile()
	case token.LBrace:
		p.parseBlock()
	case token.Semi:
		p.advance() // empty statement
	case token.Invalid:
		// Already reported by the lexer.
		p.advance()
	default:
		p.parseExprStmt()
	}
}

func (p *Parser) parseLet() {
	p.advance() // 'let'
	if !p.at(token.Ident) {
		diag.ReportError(p.reporter, diag.SynExpectIdentifier, p.tok.Span,
			fmt.Sprintf("expected identifier after 'let', found %s", p.describe()))
		p.syncStmt()
		return
	}
	p.scopes.declare(p.reporter, p.tok.Text, p.tok.Span)
	p.advance()
	if p.eat(token.Assign) {
		p.parseExpr()
	}
	p.expectSemi()
}

func (p *Parser) parseFn() {
	p.advance() // 'fn'
	if !p.at(token.Ident) {
		diag.ReportError(p.reporter, diag.SynExpectIdentifier, p.tok.Span,
			fmt.Sprintf("expected function name, found %s", p.describe()))
		p.syncStmt()
		return
	}
	p.scopes.declare(p.reporter, p.tok.Text, p.tok.Span)
	p.advance()

	lparen := p.tok.Span
	if !p.eat(token.LParen) {
		diag.ReportError(p.reporter, diag.SynUnexpectedToken, p.tok.Span,
			fmt.Sprintf("expected '(' after function name, found %s", p.describe()))
		p.syncStmt()
		return
	}

	p.scopes.push()
	defer p.scopes.pop()

	if !p.at(token.RParen) {
		for {
			if !p.at(token.Ident) {
				diag.ReportError(p.reporter, diag.SynExpectParamName, p.tok.Span,
					fmt.Sprintf("expected parameter name, found %s", p.describe()))
				break
			}
			p.scopes.declare(p.reporter, p.tok.Text, p.tok.Span)
			p.advance()
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	if !p.eat(token.RParen) {
		diag.ReportError(p.reporter, diag.SynUnclosedParen, lparen, "unclosed parameter list")
		p.syncStmt()
		return
	}

	if !p.at(token.LBrace) {
		diag.ReportError(p.reporter, diag.SynUnexpectedToken, p.tok.Span,
			fmt.Sprintf("expected function body, found %s", p.describe()))
		p.syncStmt()
		return
	}
	p.parseBlockInCurrentScope()
}

func (p *Parser) parseReturn() {
	p.advance() // 'return'
	if !p.at(token.Semi) && !p.at(token.RBrace) && !p.at(token.EOF) {
		p.parseExpr()
	}
	p.expectSemi()
}

func (p *Parser) parseIf() {
	p.advance() // 'if'
	p.parseExpr()
	if p.at(token.LBrace) {
		p.parseBlock()
	} else {
		diag.ReportError(p.reporter, diag.SynUnexpectedToken, p.tok.Span,
			fmt.Sprintf("expected block after 'if' condition, found %s", p.describe()))
		p.syncStmt()
		return
	}
	if p.eat(token.KwElse) {
		switch {
		case p.at(token.KwIf):
			p.parseIf()
		case p.at(token.LBrace):
			p.parseBlock()
		default:
			diag.ReportError(p.reporter, diag.SynUnexpectedToken, p.tok.Span,
				fmt.Sprintf("expected block after 'else', found %s", p.describe()))
			p.syncStmt()
		}
	}
}

func (p *Parser) parseWhile() {
	p.advance() // 'while'
	p.parseExpr()
	if !p.at(token.LBrace) {
		diag.ReportError(p.reporter, diag.SynUnexpectedToken, p.tok.Span,
			fmt.Sprintf("expected block after 'while' condition, found %s", p.describe()))
		p.syncStmt()
		return
	}
	p.parseBlock()
}

func (p *Parser) parseBlock() {
	p.scopes.push()
	defer p.scopes.pop()
	p.parseBlockInCurrentScope()
}

func (p *Parser) parseBlockInCurrentScope() {
	lbrace := p.tok.Span
	p.advance() // '{'
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			diag.ReportError(p.reporter, diag.SynUnclosedBrace, lbrace, "unclosed block")
			return
		}
		p.parseStmt()
	}
	p.advance() // '}'
}

func (p *Parser) parseExprStmt() {
	if !p.parseExpr() {
		// Nothing that can start an expression; consume the offender so
		// the statement loop makes progress.
		p.advance()
		return
	}
	p.expectSemi()
}
