package compiler

import "strconv"

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar (precedence low → high):
//
//	expression = term (("+" | "-") term)*
//	term       = factor (("*" | "/") factor)*
//	factor     = NUMBER | "(" expression ")"
//
// Both operator tiers are left-associative; the folding loops below wrap
// the accumulated node as the left child of each new BinaryExpr.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches tt, otherwise returns a
// *SyntaxError naming what was required.
func (p *Parser) expect(tt TokenType, expected string) (Token, error) {
	tok := p.peek()
	if tok.Type != tt {
		return tok, &SyntaxError{Pos: tok.Pos, Expected: expected, Found: describe(tok)}
	}
	p.advance()
	return tok, nil
}

// describe names a token for a SyntaxError's Found field.
func describe(tok Token) string {
	if tok.Type == EOF {
		return "end of input"
	}
	return "'" + tok.Lexeme + "'"
}

// Parse builds the AST for one complete expression. The token slice must
// end with the EOF token produced by Lex; anything left over after the
// top-level expression is a syntax error.
func Parse(tokens []Token) (Expr, error) {
	return NewParser(tokens).Parse()
}

func (p *Parser) Parse() (Expr, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != EOF {
		return nil, &SyntaxError{Pos: tok.Pos, Expected: "end of input", Found: describe(tok)}
	}
	return expr, nil
}

// parseExpression handles + and -.
func (p *Parser) parseExpression() (Expr, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == PLUS || p.peek().Type == MINUS {
		op := p.advance().Type
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

// parseTerm handles * and /.
func (p *Parser) parseTerm() (Expr, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == STAR || p.peek().Type == SLASH {
		op := p.advance().Type
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

// parseFactor handles literals and parenthesised expressions.
func (p *Parser) parseFactor() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case NUMBER:
		p.advance()
		value, err := strconv.Atoi(tok.Lexeme)
		if err != nil {
			return nil, &SyntaxError{Pos: tok.Pos, Expected: "an integer literal", Found: describe(tok)}
		}
		return &NumberLit{Value: value, Pos: tok.Pos}, nil
	case LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, &SyntaxError{Pos: tok.Pos, Expected: "a number or '('", Found: describe(tok)}
	}
}
