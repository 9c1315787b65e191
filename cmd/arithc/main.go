package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"arithc/pkg/compiler"
)

func main() {
	var src string
	if len(os.Args) > 1 {
		src = strings.Join(os.Args[1:], " ")
	} else {
		fmt.Print("expression> ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = strings.TrimRight(line, "\r\n")
	}

	res, err := compiler.Compile(src)
	if err != nil {
		reportError(src, err)
		os.Exit(1)
	}

	fmt.Printf("Tokens (%d)\n", len(res.Tokens))
	for _, tok := range res.Tokens {
		fmt.Println(" ", tok)
	}
	fmt.Println()

	fmt.Println("AST")
	printTree(res.AST, 1)
	fmt.Println()

	fmt.Println("Symbol table")
	fmt.Print(res.Symbols)
	fmt.Println()

	fmt.Println("Type table")
	fmt.Print(res.Types)
	fmt.Println()

	fmt.Println("Three-address code")
	for _, ins := range res.Code {
		fmt.Println(" ", ins)
	}
	fmt.Println("Result in", res.Ref)
}

// reportError prints the diagnostic followed by the source line with a
// caret under the reported position.
func reportError(src string, err error) {
	var lexErr *compiler.LexError
	var synErr *compiler.SyntaxError

	pos := -1
	switch {
	case errors.As(err, &lexErr):
		fmt.Fprintln(os.Stderr, "lex error:", err)
		pos = lexErr.Pos
	case errors.As(err, &synErr):
		fmt.Fprintln(os.Stderr, "parse error:", err)
		pos = synErr.Pos
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
	}

	if pos >= 0 {
		fmt.Fprintln(os.Stderr, "  |>", src)
		fmt.Fprintln(os.Stderr, "  |>", strings.Repeat(" ", pos)+"^")
	}
}

// printTree dumps the AST one node per line, children indented under
// their operator.
func printTree(e compiler.Expr, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := e.(type) {
	case *compiler.NumberLit:
		fmt.Printf("%sNumber(%d)\n", indent, n.Value)
	case *compiler.BinaryExpr:
		fmt.Printf("%sOperator(%q)\n", indent, n.Op.Glyph())
		printTree(n.Left, depth+1)
		printTree(n.Right, depth+1)
	}
}
