package compiler

import "fmt"

// Instruction is one line of three-address code: Dest = Left Op Right.
// Left and Right are symbol-table addresses or earlier destinations.
type Instruction struct {
	Dest  string // temporary receiving the result
	Left  string
	Op    string // +, -, * or /
	Right string
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s = %s %s %s", i.Dest, i.Left, i.Op, i.Right)
}

// CodeGen walks an AST and emits three-address instructions in post-order.
type CodeGen struct {
	syms     *SymbolTable
	code     []Instruction
	nextTemp int
}

func newCodeGen(syms *SymbolTable) *CodeGen {
	return &CodeGen{syms: syms, nextTemp: 1}
}

// newTemp returns the next sequentially numbered temporary name. The
// counter is global to the traversal, independent of nesting depth.
func (cg *CodeGen) newTemp() string {
	t := fmt.Sprintf("t%d", cg.nextTemp)
	cg.nextTemp++
	return t
}

// genExpr evaluates e and returns the reference holding its value: the
// literal's address for a leaf, or the temporary of a freshly emitted
// instruction for a binary node. Children are evaluated left first.
func (cg *CodeGen) genExpr(e Expr) string {
	switch n := e.(type) {
	case *NumberLit:
		addr, ok := cg.syms.Lookup(n.Value)
		if !ok {
			panic(fmt.Sprintf("literal %d missing from symbol table", n.Value))
		}
		return addr
	case *BinaryExpr:
		left := cg.genExpr(n.Left)
		right := cg.genExpr(n.Right)
		dest := cg.newTemp()
		cg.code = append(cg.code, Instruction{Dest: dest, Left: left, Op: n.Op.Glyph(), Right: right})
		return dest
	default:
		panic(fmt.Sprintf("unknown expression node %T", e))
	}
}

// Generate emits the three-address code for root and returns it together
// with the reference holding the final result. A bare literal emits no
// instructions; its address is the final reference. syms must be the
// table built from the same tree.
func Generate(root Expr, syms *SymbolTable) ([]Instruction, string) {
	cg := newCodeGen(syms)
	ref := cg.genExpr(root)
	return cg.code, ref
}
