package compiler

import "fmt"

// Expr is implemented by every node of the expression tree. The parser
// builds the tree; every later stage reads it without modification.
type Expr interface {
	exprNode()
	String() string
}

// NumberLit is an integer literal.
//
//	3 + 4
//	^      NumberLit{Value: 3, Pos: 0}
type NumberLit struct {
	Value int
	Pos   int // rune offset of the first digit
}

func (*NumberLit) exprNode()        {}
func (n *NumberLit) String() string { return fmt.Sprintf("%d", n.Value) }

// BinaryExpr represents a binary operation: Left Op Right.
//
//	3 + 4
//	^ ^ ^
//	| | |
//	| | Right
//	| Op
//	Left
type BinaryExpr struct {
	Op    TokenType // PLUS, MINUS, STAR or SLASH
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op.Glyph(), b.Right)
}
