package token

// Kind identifies the lexical class of a token.
type Kind uint8

const (
	EOF Kind = iota
	Invalid

	Ident
	Number
	String

	// Keywords
	KwLet
	KwFn
	KwReturn
	KwIf
	KwElse
	KwWhile
	KwTrue
	KwFalse

	// Operators and punctuation
	Assign  // =
	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %
	EqEq    // ==
	NotEq   // !=
	Lt      // <
	Gt      // >
	Le      // <=
	Ge      // >=
	Bang    // !
	AndAnd  // &&
	OrOr    // ||
	LParen  // (
	RParen  // )
	LBrace  // {
	RBrace  // }
	Comma   // ,
	Semi    // ;
)

var kindNames = map[Kind]string{
	EOF:      "EOF",
	Invalid:  "invalid",
	Ident:    "identifier",
	Number:   "number",
	String:   "string",
	KwLet:    "'let'",
	KwFn:     "'fn'",
	KwReturn: "'return'",
	KwIf:     "'if'",
	KwElse:   "'else'",
	KwWhile:  "'while'",
	KwTrue:   "'true'",
	KwFalse:  "'false'",
	Assign:   "'='",
	Plus:     "'+'",
	Minus:    "'-'",
	Star:     "'*'",
	Slash:    "'/'",
	Percent:  "'%'",
	EqEq:     "'=='",
	NotEq:    "'!='",
	Lt:       "'<'",
	Gt:       "'>'",
	Le:       "'<='",
	Ge:       "'>='",
	Bang:     "'!'",
	AndAnd:   "'&&'",
	OrOr:     "'||'",
	LParen:   "'('",
	RParen:   "')'",
	LBrace:   "'{'",
	RBrace:   "'}'",
	Comma:    "','",
	Semi:     "';'",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsKeyword reports whether the kind is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwLet && k <= KwFalse
}
