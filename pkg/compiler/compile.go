package compiler

// Result collects everything the pipeline produced for one expression.
// It is read-only for the caller.
type Result struct {
	Tokens  []Token
	AST     Expr
	Symbols *SymbolTable
	Types   *TypeTable
	Code    []Instruction
	Ref     string // final reference: last temporary, or the bare literal's address
}

// Compile runs the whole front end over one expression: lex, parse, build
// the semantic tables, generate three-address code. The first stage error
// (*LexError or *SyntaxError) is returned as-is and no later stage runs.
// Compile keeps no state between calls and is safe for concurrent use.
func Compile(src string) (*Result, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}

	ast, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	syms, types := BuildTables(ast)
	code, ref := Generate(ast, syms)

	return &Result{
		Tokens:  tokens,
		AST:     ast,
		Symbols: syms,
		Types:   types,
		Code:    code,
		Ref:     ref,
	}, nil
}
