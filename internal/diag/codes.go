package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Syntactic
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectExpression   Code = 2004
	SynUnclosedParen      Code = 2005
	SynUnclosedBrace      Code = 2006
	SynUnexpectedTopLevel Code = 2007
	SynExpectParamName    Code = 2008

	// Semantic (the one-pass binding check)
	SemaInfo            Code = 3000
	SemaDuplicateSymbol Code = 3001
)

// ID returns the stable textual form (e.g. "SYN2001") used in rendered
// diagnostics and fixture expectation blocks.
func (c Code) ID() string {
	switch {
	case c >= 3000:
		return fmt.Sprintf("SEM%04d", uint16(c))
	case c >= 2000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	case c >= 1000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	default:
		return fmt.Sprintf("UNK%04d", uint16(c))
	}
}

func (c Code) String() string {
	return c.ID()
}
