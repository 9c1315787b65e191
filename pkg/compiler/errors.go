package compiler

import "fmt"

// LexError reports a character outside the token alphabet. It aborts
// tokenization; no partial token list is produced.
type LexError struct {
	Pos  int // zero-based rune offset of the offending character
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Pos)
}

// SyntaxError reports a token stream that does not match the grammar.
// Found is "end of input" when the parser ran out of tokens; Pos is then
// one past the last consumed character.
type SyntaxError struct {
	Pos      int
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expected %s, found %s at position %d", e.Expected, e.Found, e.Pos)
}
