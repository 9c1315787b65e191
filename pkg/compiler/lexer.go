package compiler

import "unicode"

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src []rune
	pos int // index of the next rune to consume
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// scanNumber collects a maximal run of decimal digits as one NUMBER token.
// Leading zeros are kept as written. The first digit must still be at
// l.peek().
func (l *Lexer) scanNumber() Token {
	start := l.pos
	for l.pos < len(l.src) && unicode.IsDigit(l.peek()) {
		l.advance()
	}
	return Token{Type: NUMBER, Lexeme: string(l.src[start:l.pos]), Pos: start}
}

// nextToken skips whitespace and returns the next Token.
func (l *Lexer) nextToken() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Lexeme: "", Pos: l.pos}, nil
	}

	ch := l.peek()
	pos := l.pos

	if unicode.IsDigit(ch) {
		return l.scanNumber(), nil
	}

	l.advance() // consume the character before the switch
	switch ch {
	case '+':
		return Token{PLUS, "+", pos}, nil
	case '-':
		return Token{MINUS, "-", pos}, nil
	case '*':
		return Token{STAR, "*", pos}, nil
	case '/':
		return Token{SLASH, "/", pos}, nil
	case '(':
		return Token{LPAREN, "(", pos}, nil
	case ')':
		return Token{RPAREN, ")", pos}, nil
	default:
		return Token{}, &LexError{Pos: pos, Char: ch}
	}
}

// Lex tokenises src and returns all tokens including the final EOF token,
// whose Pos is one past the last rune of src. It returns a non-nil
// *LexError on the first illegal character, with no partial token list.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
