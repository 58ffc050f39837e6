package lexer

import "fmt"

// Iterator provides a lexer's token sequence to the caller
// Use Next to advance the sequence cursor. The final token is the
// end-of-input token, after which Next returns false. Next also returns
// false on a scan error, which Err reports.
// The caller should call Close when the iterator is no longer needed
type Iterator struct {
	l    *Lexer
	i    int
	tok  Token
	err  error
	done bool
}

// Iterate returns an iterator over the remaining tokens of l
func (l *Lexer) Iterate() *Iterator {
	return &Iterator{l: l, i: -1}
}

// Next advances the iterator, returning false when the sequence is over
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	tok, err := it.l.NextToken()
	if err != nil {
		it.err = err
		it.done = true
		return false
	}
	it.tok = tok
	it.i++
	if !it.l.HasMoreTokens() {
		// the end-of-input token is still delivered, the next call stops
		it.done = true
	}
	return true
}

// Scan copies the current token into dest, which must be a *Token or a
// *interface{}
func (it *Iterator) Scan(dest interface{}) error {
	if it.i < 0 {
		return fmt.Errorf("lexer: Scan called before Next")
	}
	switch d := dest.(type) {
	case *Token:
		*d = it.tok
	case *interface{}:
		*d = it.tok
	default:
		return fmt.Errorf("lexer: cannot scan token into %T", dest)
	}
	return nil
}

// Key returns the index of the current token
func (it *Iterator) Key() interface{} {
	return it.i
}

// Err returns the error that ended iteration, if any
func (it *Iterator) Err() error {
	return it.err
}

// Close ends iteration
func (it *Iterator) Close() error {
	it.done = true
	return nil
}

// IsOrdered returns true, tokens are always produced in input order
func (it *Iterator) IsOrdered() bool {
	return true
}

// Tokenize scans all of input, returning every token up to and including
// the end-of-input token
func Tokenize(g *Grammar, input string) (toks []Token, err error) {
	it := New(g, input).Iterate()
	defer it.Close()

	var tok Token
	for it.Next() {
		if err = it.Scan(&tok); err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, it.Err()
}
