package lexer

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultEOF is the token type name used for end-of-input when a Definition
// doesn't name one
const DefaultEOF = "EOF"

// Handler runs after its rule matches. It reads the matched text with
// l.Text, may replace it with l.SetText and may change lexer state.
// It returns the name of the token type to emit, or the empty string to
// skip the match and keep scanning
type Handler func(l *Lexer) string

// Rule pairs a pattern with the name of the handler bound to it
type Rule struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Handler string `json:"handler" yaml:"handler"`
}

// Definition is the set of tables a lexer generator produces
type Definition struct {
	// TokenTypes maps token type names to unique, non-negative codes
	TokenTypes map[string]int `json:"tokenTypes" yaml:"tokenTypes"`
	// Rules are tried in order. Order is precedence
	Rules []Rule `json:"rules" yaml:"rules"`
	// States maps each state name to the ordered indices of the Rules active
	// while that state is on top of the stack
	States map[string][]int `json:"states" yaml:"states"`
	// EOF names the end-of-input token type. defaults to DefaultEOF
	EOF string `json:"eof,omitempty" yaml:"eof,omitempty"`
}

type rule struct {
	re      *regexp.Regexp
	name    string
	handler Handler
}

// Grammar is a compiled, read-only Definition. A Grammar may be shared by
// any number of lexers
type Grammar struct {
	types  map[string]int
	names  map[int]string
	states map[string][]*rule
	eof    int
}

// MustCompile is like Compile but panics if the definition is invalid
func MustCompile(def Definition, handlers map[string]Handler) *Grammar {
	g, err := Compile(def, handlers)
	if err != nil {
		panic(err)
	}
	return g
}

// Compile validates def, compiles its patterns and binds each rule to its
// handler
func Compile(def Definition, handlers map[string]Handler) (*Grammar, error) {
	eofName := def.EOF
	if eofName == "" {
		eofName = DefaultEOF
	}

	g := &Grammar{
		types:  make(map[string]int, len(def.TokenTypes)),
		names:  make(map[int]string, len(def.TokenTypes)),
		states: make(map[string][]*rule, len(def.States)),
	}

	for name, code := range def.TokenTypes {
		if code < 0 {
			return nil, fmt.Errorf("%w: token type %q has negative code %d", ErrInvalidGrammar, name, code)
		}
		if other, ok := g.names[code]; ok {
			return nil, fmt.Errorf("%w: token types %q and %q share code %d", ErrInvalidGrammar, other, name, code)
		}
		g.types[name] = code
		g.names[code] = name
	}

	eof, ok := g.types[eofName]
	if !ok {
		return nil, fmt.Errorf("%w: missing end-of-input token type %q", ErrInvalidGrammar, eofName)
	}
	g.eof = eof

	rules := make([]*rule, len(def.Rules))
	for i, r := range def.Rules {
		re, err := regexp.Compile(`^(?:` + r.Pattern + `)`)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d: %s", ErrInvalidGrammar, i, err)
		}
		h, ok := handlers[r.Handler]
		if !ok || h == nil {
			return nil, fmt.Errorf("%w: rule %d: unknown handler %q%s", ErrInvalidGrammar, i, r.Handler, suggest(r.Handler, handlerNames(handlers)))
		}
		rules[i] = &rule{re: re, name: r.Handler, handler: h}
	}

	if _, ok := def.States[Initial]; !ok {
		return nil, fmt.Errorf("%w: missing %s state", ErrInvalidGrammar, Initial)
	}
	for state, idxs := range def.States {
		active := make([]*rule, len(idxs))
		for i, idx := range idxs {
			if idx < 0 || idx >= len(rules) {
				return nil, fmt.Errorf("%w: state %s: rule index %d out of range [0,%d)", ErrInvalidGrammar, state, idx, len(rules))
			}
			active[i] = rules[idx]
		}
		g.states[state] = active
	}

	return g, nil
}

// TypeCode returns the code for a token type name
func (g *Grammar) TypeCode(name string) (code int, ok bool) {
	code, ok = g.types[name]
	return code, ok
}

// TypeName returns the name of a token type code, or the empty string if
// the code is unknown
func (g *Grammar) TypeName(code int) string {
	return g.names[code]
}

// EOF returns the code of the end-of-input token type
func (g *Grammar) EOF() int {
	return g.eof
}

// States lists the grammar's state names in sorted order
func (g *Grammar) States() []string {
	names := make([]string, 0, len(g.states))
	for name := range g.states {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func handlerNames(handlers map[string]Handler) []string {
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// suggest returns a "did you mean" hint naming the closest candidate to
// name, or the empty string when nothing is close
func suggest(name string, candidates []string) string {
	if name == "" {
		return ""
	}
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Stable(ranks)
	return fmt.Sprintf(" (did you mean %q?)", ranks[0].Target)
}
