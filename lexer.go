// Package lexer is the runtime of a table-driven lexical analyzer.
//
// A Grammar holds the tables a lexer generator produces: token type codes,
// an ordered list of rules (pattern + handler), and the rules active in
// each lexer state. A Lexer scans one input string against a Grammar,
// producing tokens on demand for a parser.
//
// Matching is first-match in declared order, not longest-match. Rules are
// anchored at the cursor. Lexer states form a stack whose bottom is always
// INITIAL; handlers change state with PushState, Begin and PopState.
//
// The input is scanned as if a single end-of-input sentinel were appended
// to it. Reaching the sentinel yields an end-of-input token, consuming it.
// Every call after that yields the end-of-input token again.
package lexer

import (
	"fmt"
	"log"
	"unicode/utf8"
)

// Lexer scans one input string. A Lexer is not safe for concurrent use
type Lexer struct {
	g     *Grammar
	input string
	// cursor indexes the logical buffer input+Sentinel
	cursor int
	pos    Position
	stack  stateStack

	// text and leng hold the current match while its handler runs
	text string
	leng int

	// Trace, when non-nil, logs every match, skip, state change and
	// end-of-input event
	Trace *log.Logger
}

// New creates a Lexer for input
func New(g *Grammar, input string) *Lexer {
	l := &Lexer{g: g}
	l.Init(input)
	return l
}

// Init resets the lexer to scan input from the start in the INITIAL state,
// regardless of prior scan progress
func (l *Lexer) Init(input string) {
	l.input = input
	l.cursor = 0
	l.pos = Position{Line: 1, Col: 1}
	l.stack = l.stack.reset()
	l.text = ""
	l.leng = 0
}

// Grammar returns the grammar l scans with
func (l *Lexer) Grammar() *Grammar {
	return l.g
}

// HasMoreTokens is true while the end-of-input sentinel has not been
// consumed
func (l *Lexer) HasMoreTokens() bool {
	return l.cursor < len(l.input)+1
}

// AtEnd is true when the cursor rests on the end-of-input sentinel
func (l *Lexer) AtEnd() bool {
	return l.cursor == len(l.input)
}

// Offset returns the cursor position in bytes
func (l *Lexer) Offset() int {
	return l.cursor
}

// State returns the state on top of the stack
func (l *Lexer) State() string {
	return l.stack.top()
}

// PushState makes name the current state
func (l *Lexer) PushState(name string) {
	l.stack.push(name)
	l.tracef("push %s %v", name, []string(l.stack))
}

// Begin is a synonym for PushState
func (l *Lexer) Begin(name string) {
	l.PushState(name)
}

// PopState returns to the previous state, returning the state that was on
// top. INITIAL is never popped: on a single element stack PopState returns
// it and changes nothing
func (l *Lexer) PopState() string {
	name := l.stack.pop()
	l.tracef("pop %s %v", name, []string(l.stack))
	return name
}

// Depth returns the number of states on the stack
func (l *Lexer) Depth() int {
	return len(l.stack)
}

// Stack returns a copy of the state stack, bottom first
func (l *Lexer) Stack() []string {
	return append([]string(nil), l.stack...)
}

// Text returns the text of the current match
func (l *Lexer) Text() string {
	return l.text
}

// Leng returns the length in bytes of the current match text
func (l *Lexer) Leng() int {
	return l.leng
}

// SetText replaces the current match text. The replacement becomes the
// emitted token's value. The cursor is unaffected
func (l *Lexer) SetText(s string) {
	l.text = s
	l.leng = len(s)
}

// NextToken scans the next token. Matches whose handler emits nothing are
// skipped. Once input is exhausted NextToken returns the end-of-input token
// on every call. If no active rule matches the input at the cursor,
// NextToken returns an *UnmatchedInputError and the cursor stays put
func (l *Lexer) NextToken() (Token, error) {
	for {
		if !l.HasMoreTokens() {
			return l.eofToken(), nil
		}
		if l.AtEnd() {
			l.cursor++
			l.tracef("end of input at %s", l.pos)
			return l.eofToken(), nil
		}

		state := l.stack.top()
		rules, ok := l.g.states[state]
		if !ok {
			return Token{}, fmt.Errorf("%w: %q", ErrUnknownState, state)
		}

		rest := l.input[l.cursor:]
		r, n := match(rules, rest)
		if r == nil {
			ch, _ := utf8.DecodeRuneInString(rest)
			return Token{}, &UnmatchedInputError{Char: ch, Pos: l.pos, State: state}
		}

		start := l.pos
		l.advance(rest[:n])
		l.text, l.leng = rest[:n], n

		name := r.handler(l)
		if name == "" {
			l.tracef("%s %s skip %q", start, r.name, l.text)
			continue
		}

		code, ok := l.g.types[name]
		if !ok {
			return Token{}, fmt.Errorf("%w: %q returned by handler %s", ErrUnknownTokenType, name, r.name)
		}
		l.tracef("%s %s %s %q", start, r.name, name, l.text)
		return Token{Type: code, Value: l.text, Pos: start}, nil
	}
}

// match returns the first rule that matches a non-empty prefix of s, and
// the length of that prefix
func match(rules []*rule, s string) (*rule, int) {
	for _, r := range rules {
		if loc := r.re.FindStringIndex(s); loc != nil && loc[1] > 0 {
			return r, loc[1]
		}
	}
	return nil, 0
}

// advance moves the cursor past text, tracking line and column
func (l *Lexer) advance(text string) {
	l.cursor += len(text)
	l.pos.Offset += len(text)
	for _, ch := range text {
		if ch == '\n' {
			l.pos.Line++
			l.pos.Col = 1
		} else {
			l.pos.Col++
		}
	}
}

func (l *Lexer) eofToken() Token {
	return Token{Type: l.g.eof, Value: Sentinel, Pos: l.pos}
}

func (l *Lexer) tracef(format string, args ...interface{}) {
	if l.Trace != nil {
		l.Trace.Printf(format, args...)
	}
}
