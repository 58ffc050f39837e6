package filter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/qri-io/lexer"
)

// tk for "token", makes for cleaner test writing
func tk(tt TokenType, text string) Token {
	return Token{Type: tt, Text: text}
}

type goodCase struct {
	filter string
	tokens []Token
}

func runGoodCases(t *testing.T, cases []goodCase) {
	for _, c := range cases {
		t.Run(fmt.Sprintf("%s", c.filter), func(t *testing.T) {
			got, err := Tokens(c.filter)
			if err != nil {
				t.Fatalf("error: %s", err)
			}
			expect := append(c.tokens, tk(EOF, ""))
			if diff := cmp.Diff(expect, got, cmpopts.IgnoreFields(Token{}, "Pos")); diff != "" {
				t.Errorf("\n%s\ntoken mismatch (-want +got):\n%s", c.filter, diff)
			}
		})
	}
}

func TestSelectors(t *testing.T) {
	cases := []goodCase{
		{".", []Token{tk(Dot, ".")}},
		{".apples", []Token{tk(Dot, "."), tk(Text, "apples")}},
		{".a.bar", []Token{tk(Dot, "."), tk(Text, "a"), tk(Dot, "."), tk(Text, "bar")}},
		{".[1]", []Token{tk(Dot, "."), tk(LeftBracket, "["), tk(Number, "1"), tk(RightBracket, "]")}},
		{".[0:2]", []Token{
			tk(Dot, "."), tk(LeftBracket, "["), tk(Number, "0"), tk(Colon, ":"), tk(Number, "2"), tk(RightBracket, "]"),
		}},
		{".[:]", []Token{tk(Dot, "."), tk(LeftBracket, "["), tk(Colon, ":"), tk(RightBracket, "]")}},
		{"foo-bar", []Token{tk(Text, "foo-bar")}},
	}

	runGoodCases(t, cases)
}

func TestNumbers(t *testing.T) {
	cases := []goodCase{
		{".bar * 5", []Token{tk(Dot, "."), tk(Text, "bar"), tk(Star, "*"), tk(Number, "5")}},
		{".5", []Token{tk(Number, ".5")}},
		{"2.25", []Token{tk(Number, "2.25")}},
		{"-3", []Token{tk(Number, "-3")}},
		{"4 - 3", []Token{tk(Number, "4"), tk(Minus, "-"), tk(Number, "3")}},
		{"1+2/3", []Token{tk(Number, "1"), tk(Plus, "+"), tk(Number, "2"), tk(ForwardSlash, "/"), tk(Number, "3")}},
	}

	runGoodCases(t, cases)
}

func TestKeywords(t *testing.T) {
	cases := []goodCase{
		{"length", []Token{tk(Length, "length")}},
		{".a | length", []Token{tk(Dot, "."), tk(Text, "a"), tk(Pipe, "|"), tk(Length, "length")}},
		{"lengths", []Token{tk(Text, "lengths")}},
		{`"length"`, []Token{tk(Text, "length")}},
	}

	runGoodCases(t, cases)
}

func TestQuotedText(t *testing.T) {
	cases := []goodCase{
		{`"swoosh"`, []Token{tk(Text, "swoosh")}},
		{`""`, []Token{tk(Text, "")}},
		{`"a b" | "c"`, []Token{tk(Text, "a b"), tk(Pipe, "|"), tk(Text, "c")}},
		{`"say \"hi\""`, []Token{tk(Text, `say "hi"`)}},
		{`"back\\slash"`, []Token{tk(Text, `back\slash`)}},
		{`"unterminated`, []Token{tk(Text, "unterminated")}},
		{`"`, nil},
		// a NUL byte is ordinary input, not end of input
		{"\"\x00\" | length", []Token{tk(Text, "\x00"), tk(Pipe, "|"), tk(Length, "length")}},
	}

	runGoodCases(t, cases)
}

func TestMappings(t *testing.T) {
	cases := []goodCase{
		{"[ .foo, .bar ]", []Token{
			tk(LeftBracket, "["), tk(Dot, "."), tk(Text, "foo"), tk(Comma, ","),
			tk(Dot, "."), tk(Text, "bar"), tk(RightBracket, "]"),
		}},
		{`{ foo: .[0] }`, []Token{
			tk(LeftBrace, "{"), tk(Text, "foo"), tk(Colon, ":"), tk(Dot, "."),
			tk(LeftBracket, "["), tk(Number, "0"), tk(RightBracket, "]"), tk(RightBrace, "}"),
		}},
		{"( .bar )", []Token{tk(LeftParen, "("), tk(Dot, "."), tk(Text, "bar"), tk(RightParen, ")")}},
	}

	runGoodCases(t, cases)
}

func TestPositions(t *testing.T) {
	got, err := Tokens(".a |\n  \"b\"")
	if err != nil {
		t.Fatal(err)
	}
	expect := []Token{
		{Type: Dot, Text: ".", Pos: lexer.Position{Offset: 0, Line: 1, Col: 1}},
		{Type: Text, Text: "a", Pos: lexer.Position{Offset: 1, Line: 1, Col: 2}},
		{Type: Pipe, Text: "|", Pos: lexer.Position{Offset: 3, Line: 1, Col: 4}},
		{Type: Text, Text: "b", Pos: lexer.Position{Offset: 8, Line: 2, Col: 4}},
		{Type: EOF, Pos: lexer.Position{Offset: 10, Line: 2, Col: 6}},
	}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestScanEOF(t *testing.T) {
	s := NewScanner("a")
	for i, expect := range []TokenType{Text, EOF, EOF, EOF} {
		tok, err := s.Scan()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Type != expect {
			t.Errorf("scan %d: expected %s, got %s", i, expect, tok.Type)
		}
	}
	if s.Lexer().HasMoreTokens() {
		t.Errorf("expected lexer to be exhausted")
	}
}

func TestUnmatched(t *testing.T) {
	toks, err := Tokens(".a & b")
	var uerr *lexer.UnmatchedInputError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *lexer.UnmatchedInputError, got: %v", err)
	}
	if uerr.Char != '&' || uerr.Pos.Offset != 3 {
		t.Errorf("unexpected error: %s", uerr)
	}
	if len(toks) != 2 {
		t.Errorf("expected 2 tokens before the error, got %d", len(toks))
	}
}

func TestTokenTypes(t *testing.T) {
	for name, code := range tokenTypes() {
		if got := Grammar.TypeName(code); got != name {
			t.Errorf("code %d: expected name %q, got %q", code, name, got)
		}
		if TokenType(code).String() != name {
			t.Errorf("code %d: enumeration name mismatch. want %q, got %q", code, name, TokenType(code).String())
		}
	}
	for _, tt := range []TokenType{Illegal, literalBegin, keywordEnd, TokenType(-1)} {
		if tt.String() != "<unknown>" {
			t.Errorf("expected %d to be unnamed, got %q", tt, tt.String())
		}
	}
	if Grammar.EOF() != int(EOF) {
		t.Errorf("expected EOF code %d, got %d", EOF, Grammar.EOF())
	}
}
