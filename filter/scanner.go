package filter

import (
	"github.com/qri-io/lexer"
)

// Scanner tokenizes a filter string
type Scanner struct {
	lx *lexer.Lexer
}

// NewScanner allocates a scanner for src
func NewScanner(src string) *Scanner {
	return &Scanner{lx: lexer.New(Grammar, src)}
}

// Lexer exposes the underlying lexer, for tracing
func (s *Scanner) Lexer() *lexer.Lexer {
	return s.lx
}

// Scan reads one token from the input. Once input is exhausted every call
// returns an EOF token
func (s *Scanner) Scan() (Token, error) {
	t, err := s.lx.NextToken()
	if err != nil {
		return Token{Type: Illegal}, err
	}
	if !s.lx.HasMoreTokens() {
		return Token{Type: EOF, Pos: t.Pos}, nil
	}
	return Token{Type: TokenType(t.Type), Pos: t.Pos, Text: t.Value}, nil
}

// Tokens scans all of src, returning its tokens up to and including EOF
func Tokens(src string) (toks []Token, err error) {
	s := NewScanner(src)
	for {
		t, err := s.Scan()
		if err != nil {
			return toks, err
		}
		toks = append(toks, t)
		if t.Type == EOF {
			return toks, nil
		}
	}
}
