package filter

import (
	"strings"

	"github.com/qri-io/lexer"
)

// quoted is the lexer state inside a double-quoted string
const quoted = "QUOTED"

// definition is the filter lexicon. rule order is precedence: numbers come
// before "." and "-", the length keyword before plain text
var definition = lexer.Definition{
	TokenTypes: tokenTypes(),
	Rules: []lexer.Rule{
		{Pattern: `[ \t\r\n]+`, Handler: "skip"},
		{Pattern: `"`, Handler: "openQuote"},
		{Pattern: `-?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)`, Handler: "number"},
		{Pattern: `length\b`, Handler: "keyword"},
		{Pattern: `\w[\w\-]*`, Handler: "text"},
		{Pattern: `[.,:|\[\]{}()+\-*/]`, Handler: "punct"},

		// quoted
		{Pattern: `(?s)(?:[^"\\]|\\.)*"`, Handler: "closeQuote"},
		{Pattern: `(?s)(?:[^"\\]|\\.)+`, Handler: "unterminated"},
	},
	States: map[string][]int{
		lexer.Initial: {0, 1, 2, 3, 4, 5},
		quoted:        {6, 7},
	},
}

var handlers = map[string]lexer.Handler{
	"skip": func(l *lexer.Lexer) string {
		return ""
	},
	"openQuote": func(l *lexer.Lexer) string {
		l.Begin(quoted)
		return ""
	},
	"number": func(l *lexer.Lexer) string {
		return Number.String()
	},
	"keyword": func(l *lexer.Lexer) string {
		return l.Text()
	},
	"text": func(l *lexer.Lexer) string {
		return Text.String()
	},
	// punctuation token types are named by their character
	"punct": func(l *lexer.Lexer) string {
		return l.Text()
	},
	"closeQuote": func(l *lexer.Lexer) string {
		s := l.Text()
		l.SetText(unescape(s[:len(s)-1]))
		l.PopState()
		return Text.String()
	},
	// an unterminated string runs to the end of input
	"unterminated": func(l *lexer.Lexer) string {
		l.SetText(unescape(l.Text()))
		l.PopState()
		return Text.String()
	},
}

var unescaper = strings.NewReplacer(`\"`, `"`, `\\`, `\`)

func unescape(s string) string {
	return unescaper.Replace(s)
}

// Grammar is the compiled filter lexicon
var Grammar = lexer.MustCompile(definition, handlers)
