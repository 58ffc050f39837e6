package lexer

import "fmt"

// Sentinel is the value of every end-of-input token. It is logically
// appended to the input and never appears in a match. Input may contain
// the same byte, so end-of-input is a lexer state, see Lexer.HasMoreTokens
const Sentinel = "\x00"

// Position of a token within the input
type Position struct {
	// Offset is the byte offset of the first byte of the token
	Offset int
	// Line and Col are 1-based. Col counts runes
	Line, Col int
}

// String implements the stringer interface for Position
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a typed unit produced by scanning a prefix of the input
type Token struct {
	// Type is the numeric code from the grammar's token type table
	Type  int
	Value string
	Pos   Position
}

// String implements the stringer interface for Token
func (t Token) String() string {
	return fmt.Sprintf("%d %q", t.Type, t.Value)
}
