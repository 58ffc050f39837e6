package filter

import "github.com/qri-io/lexer"

// Token is a recognized token from the filter lexicon
type Token struct {
	Type TokenType
	Pos  lexer.Position
	Text string
}

// String implements the stringer interface for token
func (t Token) String() string {
	return t.Text
}

// TokenType enumerates the filter lexicon's token types. Codes double as
// the lexer's token type codes
type TokenType int

// token types. the *Begin and *End markers bracket literal and keyword
// ranges and are never emitted
const (
	Illegal TokenType = iota
	EOF

	literalBegin
	Text
	Number
	Dot
	Comma
	Colon
	Pipe
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace
	LeftParen
	RightParen
	Plus
	Minus
	Star
	ForwardSlash
	literalEnd

	keywordBegin
	Length
	keywordEnd
)

// names holds each token type's name in the lexer's token type table.
// punctuation is named by its character
var names = [...]string{
	EOF:          "EOF",
	Text:         "Text",
	Number:       "Number",
	Dot:          ".",
	Comma:        ",",
	Colon:        ":",
	Pipe:         "|",
	LeftBracket:  "[",
	RightBracket: "]",
	LeftBrace:    "{",
	RightBrace:   "}",
	LeftParen:    "(",
	RightParen:   ")",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	ForwardSlash: "/",
	Length:       "length",
}

// IsLiteral reports whether tt is a literal or punctuation token
func (tt TokenType) IsLiteral() bool {
	return tt > literalBegin && tt < literalEnd
}

// IsKeyword reports whether tt is a keyword token
func (tt TokenType) IsKeyword() bool {
	return tt > keywordBegin && tt < keywordEnd
}

// String returns the token type's name
func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(names) || names[tt] == "" {
		return "<unknown>"
	}
	return names[tt]
}

// tokenTypes builds the lexer token type table from the enumeration
func tokenTypes() map[string]int {
	types := map[string]int{EOF.String(): int(EOF)}
	for tt := literalBegin + 1; tt < keywordEnd; tt++ {
		if tt.IsLiteral() || tt.IsKeyword() {
			types[tt.String()] = int(tt)
		}
	}
	return types
}
