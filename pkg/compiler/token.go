package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	NUMBER // decimal integer literal

	// Arithmetic operators
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /

	// Paired delimiters
	LPAREN // (
	RPAREN // )
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:    "EOF",
	NUMBER: "NUMBER",
	PLUS:   "PLUS",
	MINUS:  "MINUS",
	STAR:   "STAR",
	SLASH:  "SLASH",
	LPAREN: "LPAREN",
	RPAREN: "RPAREN",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// operatorGlyphs maps each operator TokenType to its source text.
var operatorGlyphs = map[TokenType]string{
	PLUS:  "+",
	MINUS: "-",
	STAR:  "*",
	SLASH: "/",
}

// Glyph returns the source text of an operator token type, or "" for
// token types that are not arithmetic operators.
func (tt TokenType) Glyph() string {
	return operatorGlyphs[tt]
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Pos    int    // zero-based rune offset of the first character
}

func (t Token) String() string {
	return fmt.Sprintf("%-7s %-6q  pos %d", t.Type, t.Lexeme, t.Pos)
}
