package lexer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrammar is wrapped by every error Compile returns
	ErrInvalidGrammar = errors.New("lexer: invalid grammar")
	// ErrUnknownState is returned by NextToken when the state on top of the
	// stack has no rule list
	ErrUnknownState = errors.New("lexer: unknown state")
	// ErrUnknownTokenType is returned by NextToken when a handler emits a
	// token type name missing from the token type table
	ErrUnknownTokenType = errors.New("lexer: unknown token type")
)

// UnmatchedInputError is returned when no rule active in the current state
// matches the input at the cursor. Scanning can't continue past it
type UnmatchedInputError struct {
	// Char is the first rune of the unmatched input
	Char  rune
	Pos   Position
	State string
}

// Error implements the error interface
func (e *UnmatchedInputError) Error() string {
	return fmt.Sprintf("lexer: unmatched input %q at %s (state %s)", e.Char, e.Pos, e.State)
}
